package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductGetByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(db, nil)
	ctx := context.Background()

	seeded := seedProduct(t, db, "Omelet with cheese", 342)

	product, err := svc.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Omelet with cheese", product.Title)
	assert.InDelta(t, 342, product.Calories, 1e-9)

	_, err = svc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(db, nil)
	ctx := context.Background()

	seedProduct(t, db, "Omelet with cheese", 342)
	seedProduct(t, db, "Cheese pancake", 220)
	seedProduct(t, db, "Buckwheat", 340)

	results, err := svc.Search(ctx, "CHEESE")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Cheese pancake", results[0].Title)
	assert.Equal(t, "Omelet with cheese", results[1].Title)

	results, err = svc.Search(ctx, "borscht")
	require.NoError(t, err)
	assert.Empty(t, results)
}
