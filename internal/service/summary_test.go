package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/slimmom/backend/internal/dateutil"
	"github.com/slimmom/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSummaryService(t *testing.T) (*SummaryService, *DiaryService) {
	t.Helper()
	diary, db := newDiaryService(t)
	return NewSummaryService(db, diary), diary
}

func TestGetDailySummaryArithmetic(t *testing.T) {
	svc, diary := newSummaryService(t)
	ctx := context.Background()
	userID := uuid.New()

	// 404 kcal consumed: 202 kcal/100g at 200g
	product := seedProduct(t, diary.db, "Pasta", 202)
	_, _, err := diary.RecordConsumption(ctx, userID, product.ID, 200)
	require.NoError(t, err)

	record, err := svc.GetDailySummary(ctx, userID, today())
	require.NoError(t, err)

	assert.InDelta(t, 404, record.DailyConsumed, 1e-9)
	assert.InDelta(t, 2800, record.DailyRate, 1e-9)
	assert.InDelta(t, 2396, record.DailyLeft, 1e-9)
	assert.Equal(t, "14.43", fmt.Sprintf("%.2f", record.Percentage))
}

func TestGetDailySummaryConservation(t *testing.T) {
	svc, diary := newSummaryService(t)
	ctx := context.Background()
	userID := uuid.New()

	a := seedProduct(t, diary.db, "Oatmeal", 366)
	b := seedProduct(t, diary.db, "Yogurt", 59)
	_, _, err := diary.RecordConsumption(ctx, userID, a.ID, 80)
	require.NoError(t, err)
	_, _, err = diary.RecordConsumption(ctx, userID, b.ID, 150)
	require.NoError(t, err)

	consumed, err := diary.ListConsumption(ctx, userID, today())
	require.NoError(t, err)
	var total float64
	for _, c := range consumed {
		total += c.Calories
	}

	record, err := svc.GetDailySummary(ctx, userID, today())
	require.NoError(t, err)
	assert.InDelta(t, total, record.DailyConsumed, 1e-9)
	assert.InDelta(t, DailyRate-total, record.DailyLeft, 1e-9)
}

func TestGetDailySummaryNoEntries(t *testing.T) {
	svc, diary := newSummaryService(t)
	ctx := context.Background()
	userID := uuid.New()

	// no diary at all
	_, err := svc.GetDailySummary(ctx, userID, "2024-09-12")
	assert.ErrorIs(t, err, ErrNoEntriesForDate)

	// diary exists, day is empty: still an error, never a zero summary
	product := seedProduct(t, diary.db, "Cheese", 402)
	_, _, err = diary.RecordConsumption(ctx, userID, product.ID, 50)
	require.NoError(t, err)

	_, err = svc.GetDailySummary(ctx, userID, "2000-01-01")
	assert.ErrorIs(t, err, ErrNoEntriesForDate)

	_, err = svc.GetDailySummary(ctx, userID, "bogus")
	assert.ErrorIs(t, err, dateutil.ErrInvalidDate)
}

func TestGetDailySummaryUpsertsSingleRecord(t *testing.T) {
	svc, diary := newSummaryService(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, diary.db, "Chicken", 165)

	_, _, err := diary.RecordConsumption(ctx, userID, product.ID, 100)
	require.NoError(t, err)

	first, err := svc.GetDailySummary(ctx, userID, today())
	require.NoError(t, err)

	// entries change, summary is recomputed for the same day
	_, _, err = diary.RecordConsumption(ctx, userID, product.ID, 300)
	require.NoError(t, err)

	second, err := svc.GetDailySummary(ctx, userID, today())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "recomputation must replace, not append")
	assert.InDelta(t, 495, second.DailyConsumed, 1e-9)

	var count int64
	require.NoError(t, svc.db.Model(&models.SummaryRecord{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetDailySummaryIdempotentNumbers(t *testing.T) {
	svc, diary := newSummaryService(t)
	ctx := context.Background()
	userID := uuid.New()
	product := seedProduct(t, diary.db, "Salmon", 208)

	_, _, err := diary.RecordConsumption(ctx, userID, product.ID, 120)
	require.NoError(t, err)

	first, err := svc.GetDailySummary(ctx, userID, today())
	require.NoError(t, err)
	second, err := svc.GetDailySummary(ctx, userID, today())
	require.NoError(t, err)

	assert.Equal(t, first.DailyConsumed, second.DailyConsumed)
	assert.Equal(t, first.DailyLeft, second.DailyLeft)
	assert.Equal(t, first.Percentage, second.Percentage)
}
