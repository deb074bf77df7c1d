package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/slimmom/backend/internal/models"
	"gorm.io/gorm"
)

const (
	searchResultLimit = 50
	searchCacheTTL    = 5 * time.Minute
)

// ProductService exposes the read-only product catalog. Search results are
// cached in Redis; the cache is best-effort and every cache failure falls
// back to the database.
type ProductService struct {
	db    *gorm.DB
	cache *redis.Client
}

var _ IProductService = (*ProductService)(nil)

// NewProductService creates a new ProductService instance. cache may be nil,
// in which case every search hits the database.
func NewProductService(db *gorm.DB, cache *redis.Client) *ProductService {
	return &ProductService{db: db, cache: cache}
}

// GetByID resolves a product id to its catalog entry
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Search returns products whose title contains the query, case-insensitively
func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if cached, ok := s.fromCache(ctx, normalized); ok {
		return cached, nil
	}

	var products []models.Product
	like := "%" + normalized + "%"
	if err := s.db.WithContext(ctx).
		Where("LOWER(title) LIKE ?", like).
		Order("title").
		Limit(searchResultLimit).
		Find(&products).Error; err != nil {
		return nil, err
	}

	s.toCache(ctx, normalized, products)
	return products, nil
}

func (s *ProductService) fromCache(ctx context.Context, query string) ([]models.Product, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, searchCacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (s *ProductService) toCache(ctx context.Context, query string, products []models.Product) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, searchCacheKey(query), data, searchCacheTTL).Err(); err != nil {
		log.Printf("product search cache write failed: %v", err)
	}
}

func searchCacheKey(query string) string {
	return "products:search:" + query
}
