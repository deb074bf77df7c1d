package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/slimmom/backend/internal/models"
	"github.com/slimmom/backend/internal/service"
)

const testJWTSecret = "test-secret"

// testEnv bundles the router and services the handler tests run against
type testEnv struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Tokens  *service.TokenService
	Diary   *service.DiaryService
	Summary *service.SummaryService
}

// setupTestEnv wires the full handler stack over an in-memory database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Diary{},
		&models.DiaryEntry{},
		&models.Summary{},
		&models.SummaryRecord{},
	))

	tokens := service.NewTokenService(testJWTSecret)
	products := service.NewProductService(db, nil)
	diary := service.NewDiaryService(db, products)
	summary := service.NewSummaryService(db, diary)

	router := gin.New()
	router.Use(gin.Recovery())
	v1 := router.Group("/api")
	NewDiaryHandler(diary, tokens).RegisterRoutes(v1)
	NewSummaryHandler(summary, tokens).RegisterRoutes(v1)
	NewProductHandler(products, tokens).RegisterRoutes(v1)

	return &testEnv{DB: db, Router: router, Tokens: tokens, Diary: diary, Summary: summary}
}

// newTestUser returns a fresh user id and a valid token for it
func (e *testEnv) newTestUser(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	token, err := e.Tokens.GenerateToken(userID)
	require.NoError(t, err)
	return userID, token
}

func (e *testEnv) seedProduct(t *testing.T, title string, caloriesPer100g float64) *models.Product {
	t.Helper()
	p := &models.Product{Title: title, Calories: caloriesPer100g}
	require.NoError(t, e.DB.Create(p).Error)
	return p
}

// performRequest performs an HTTP request with an optional JSON body and
// bearer token
func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
