package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/slimmom/backend/internal/middleware"
	"github.com/slimmom/backend/internal/service"
)

// ProductHandler exposes catalog search over HTTP
type ProductHandler struct {
	products  service.IProductService
	validator middleware.TokenValidator
}

func NewProductHandler(products service.IProductService, validator middleware.TokenValidator) *ProductHandler {
	return &ProductHandler{products: products, validator: validator}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	products.Use(middleware.AuthMiddleware(h.validator))
	{
		products.GET("/search", h.Search)
	}
}

// Search finds products by case-insensitive substring match on the title
func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter is required."})
		return
	}

	products, err := h.products.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("product search: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while searching for products."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Products found successfully",
		"products": products,
	})
}
