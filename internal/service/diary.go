package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/slimmom/backend/internal/dateutil"
	"github.com/slimmom/backend/internal/models"
	"github.com/slimmom/backend/internal/types"
	"gorm.io/gorm"
)

const unknownProductTitle = "Unknown product"

// DiaryService owns the per-user consumption diary. All mutations run under
// a per-user lock so two concurrent requests cannot both read the diary,
// both miss the existing entry and append twice.
type DiaryService struct {
	db       *gorm.DB
	products IProductService
	locks    *userLocks
}

var _ IDiaryService = (*DiaryService)(nil)

// NewDiaryService creates a new DiaryService instance
func NewDiaryService(db *gorm.DB, products IProductService) *DiaryService {
	return &DiaryService{
		db:       db,
		products: products,
		locks:    newUserLocks(),
	}
}

// RecordConsumption logs a consumed product for today. If the user already
// logged the same product today the existing entry is overwritten (new
// weight, calories and timestamp, same entry identity); otherwise a new
// entry is appended. The user's diary is created on first use.
func (s *DiaryService) RecordConsumption(ctx context.Context, userID, productID uuid.UUID, weight float64) (*models.DiaryEntry, *models.Diary, error) {
	if weight <= 0 {
		return nil, nil, ErrInvalidWeight
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	calories := product.Calories * weight / 100

	unlock := s.locks.Lock(userID)
	defer unlock()

	now := time.Now().UTC()
	dayStart, dayEnd := dateutil.DayWindow(now)

	var entry *models.DiaryEntry
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		diary, err := findOrCreateDiary(tx, userID)
		if err != nil {
			return err
		}

		var existing models.DiaryEntry
		err = tx.Where("diary_id = ? AND product_id = ? AND date >= ? AND date < ?",
			diary.ID, productID, dayStart, dayEnd).
			First(&existing).Error
		switch {
		case err == nil:
			existing.ProductWeight = weight
			existing.Calories = calories
			existing.Date = now
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			entry = &existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := models.DiaryEntry{
				DiaryID:       diary.ID,
				ProductID:     productID,
				ProductWeight: weight,
				Calories:      calories,
				Date:          now,
			}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			entry = &created
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("recording consumption: %w", err)
	}

	diary, err := s.loadDiary(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return entry, diary, nil
}

// RemoveConsumption deletes the entry with the given identity, provided it
// falls inside the given date's UTC day window. Removing an already removed
// entry fails with ErrEntryNotFound.
func (s *DiaryService) RemoveConsumption(ctx context.Context, userID uuid.UUID, date string, entryID uuid.UUID) error {
	dayStart, dayEnd, err := dateutil.ParseDay(date)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var diary models.Diary
		if err := tx.Where("user_id = ?", userID).First(&diary).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDiaryNotFound
			}
			return err
		}

		res := tx.Where("id = ? AND diary_id = ? AND date >= ? AND date < ?",
			entryID, diary.ID, dayStart, dayEnd).
			Delete(&models.DiaryEntry{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEntryNotFound
		}
		return nil
	})
}

// ListConsumption returns the day's entries enriched with product titles.
// An absent diary or an empty day is an empty result, not an error. A failed
// title lookup degrades that entry's title instead of failing the call.
func (s *DiaryService) ListConsumption(ctx context.Context, userID uuid.UUID, date string) ([]types.ConsumedProduct, error) {
	dayStart, dayEnd, err := dateutil.ParseDay(date)
	if err != nil {
		return nil, err
	}

	_, entries, err := s.EntriesInWindow(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	titles := s.productTitles(ctx, entries)

	consumed := make([]types.ConsumedProduct, 0, len(entries))
	for _, e := range entries {
		title, ok := titles[e.ProductID]
		if !ok {
			title = unknownProductTitle
		}
		consumed = append(consumed, types.ConsumedProduct{
			ID:            e.ID,
			ProductID:     e.ProductID,
			ProductTitle:  title,
			ProductWeight: e.ProductWeight,
			Calories:      e.Calories,
			Date:          e.Date,
		})
	}
	return consumed, nil
}

// EntriesInWindow returns the user's diary and its entries within [from, to).
// A missing diary yields a nil diary and no entries.
func (s *DiaryService) EntriesInWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*models.Diary, []models.DiaryEntry, error) {
	var diary models.Diary
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&diary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var entries []models.DiaryEntry
	if err := s.db.WithContext(ctx).
		Where("diary_id = ? AND date >= ? AND date < ?", diary.ID, from, to).
		Order("date").
		Find(&entries).Error; err != nil {
		return nil, nil, err
	}
	return &diary, entries, nil
}

// productTitles looks up titles for the entries' products in one query.
// Lookup failures leave products out of the map and are not fatal.
func (s *DiaryService) productTitles(ctx context.Context, entries []models.DiaryEntry) map[uuid.UUID]string {
	titles := make(map[uuid.UUID]string)
	if len(entries) == 0 {
		return titles
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID)
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return titles
	}
	for _, p := range products {
		titles[p.ID] = p.Title
	}
	return titles
}

func (s *DiaryService) loadDiary(ctx context.Context, userID uuid.UUID) (*models.Diary, error) {
	var diary models.Diary
	if err := s.db.WithContext(ctx).
		Preload("Entries").
		Where("user_id = ?", userID).
		First(&diary).Error; err != nil {
		return nil, err
	}
	return &diary, nil
}

func findOrCreateDiary(tx *gorm.DB, userID uuid.UUID) (*models.Diary, error) {
	var diary models.Diary
	err := tx.Where("user_id = ?", userID).First(&diary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		diary = models.Diary{UserID: userID}
		err = tx.Create(&diary).Error
	}
	if err != nil {
		return nil, err
	}
	return &diary, nil
}
