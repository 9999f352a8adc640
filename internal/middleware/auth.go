package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seo-optimizer-backend/internal/models"
)

const UserIDKey = "user_id"

// TokenAuthenticator resolves a bearer token to the owning user id.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// AuthMiddleware is the first gate on every protected route. A missing header
// is reported distinctly from an invalid token; the authenticator is not
// consulted until a well-formed bearer token has been extracted.
func AuthMiddleware(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "empty token"})
			c.Abort()
			return
		}

		userID, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid token",
				Message: err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID.String())
		c.Next()
	}
}
