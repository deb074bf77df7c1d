package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/slimmom/backend/config"
	"github.com/slimmom/backend/internal/api"
	"github.com/slimmom/backend/internal/middleware"
	"github.com/slimmom/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New wires services and handlers into a server instance. cache may be nil
// when Redis is unavailable; the product service degrades to plain database
// reads.
func New(cfg *config.Config, db *gorm.DB, cache *redis.Client) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())

	tokens := service.NewTokenService(cfg.JWTSecret)
	products := service.NewProductService(db, cache)
	diary := service.NewDiaryService(db, products)
	summary := service.NewSummaryService(db, diary)

	root := router.Group("/api")
	api.NewDiaryHandler(diary, tokens).RegisterRoutes(root)
	api.NewSummaryHandler(summary, tokens).RegisterRoutes(root)
	api.NewProductHandler(products, tokens).RegisterRoutes(root)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{cfg: cfg, router: router}
}

// Start begins serving and blocks until the listener stops
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
