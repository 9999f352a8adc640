package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"seo-optimizer-backend/internal/middleware"
	"seo-optimizer-backend/internal/supabase"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

var testUserID = uuid.MustParse("a8f1f89e-0d5a-4a6c-9a62-0f1a2b3c4d5e")

type countingAuthenticator struct {
	userID uuid.UUID
	calls  int
}

func (a *countingAuthenticator) Authenticate(_ context.Context, _ string) (uuid.UUID, error) {
	a.calls++
	return a.userID, nil
}

func newTestRouter(auth middleware.TokenAuthenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(auth))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	auth := &countingAuthenticator{userID: testUserID}
	router := newTestRouter(auth)

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization header")
	// The authenticator is never consulted without a header.
	assert.Equal(t, 0, auth.calls)
}

func TestAuthMiddleware_BadHeaderFormat(t *testing.T) {
	auth := &countingAuthenticator{userID: testUserID}
	router := newTestRouter(auth)

	for _, header := range []string{"token-without-scheme", "Basic dXNlcjpwYXNz", "Bearer "} {
		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
	assert.Equal(t, 0, auth.calls)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := newTestRouter(supabase.NewJWTAuthenticator(testSecret))

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	router := newTestRouter(supabase.NewJWTAuthenticator(testSecret))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": testUserID.String(),
	})
	tokenString, _ := token.SignedString([]byte("a-different-secret"))

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(supabase.NewJWTAuthenticator(testSecret)))
	router.GET("/test", func(c *gin.Context) {
		userID, exists := c.Get(middleware.UserIDKey)
		assert.True(t, exists)
		assert.Equal(t, testUserID.String(), userID)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": testUserID.String(),
	})
	tokenString, _ := token.SignedString([]byte(testSecret))

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_NonUUIDSubject(t *testing.T) {
	router := newTestRouter(supabase.NewJWTAuthenticator(testSecret))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-123",
	})
	tokenString, _ := token.SignedString([]byte(testSecret))

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
