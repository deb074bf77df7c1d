package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/slimmom/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (v *stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	return v.claims, v.err
}

func runAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured *gin.Context
	router := gin.New()
	router.GET("/protected", AuthMiddleware(validator), func(c *gin.Context) {
		captured = c
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, captured
}

func TestAuthMiddlewareSetsUserID(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{claims: &types.TokenClaims{UserID: userID}}

	w, c := runAuth(t, validator, "Bearer some-token")
	assert.Equal(t, http.StatusOK, w.Code)

	got, exists := c.Get("user_id")
	assert.True(t, exists)
	assert.Equal(t, userID, got)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	validator := &stubValidator{err: errors.New("invalid token")}

	w, _ := runAuth(t, validator, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = runAuth(t, validator, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = runAuth(t, validator, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
