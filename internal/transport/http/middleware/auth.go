package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jquinonez7/DogTracker/internal/domain"
)

const errCredentials = "Could not validate credentials"

// UserKey is where Auth stores the resolved *domain.User in the gin context.
const UserKey = "user"

// authenticator is the subset of AuthUsecase the guard needs.
// Defined here (point of use) so tests can inject a fake.
type authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*domain.User, error)
}

// Auth validates the Bearer token and resolves it to an account before any
// protected handler runs. Expired, malformed, and unknown-subject tokens all
// collapse to the same 401; only a store fault becomes a 500.
func Auth(auth authenticator, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c)
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		user, err := auth.Authenticate(c.Request.Context(), rawToken)
		if err != nil {
			if errors.Is(err, domain.ErrTokenInvalid) ||
				errors.Is(err, domain.ErrTokenExpired) ||
				errors.Is(err, domain.ErrUserNotFound) {
				unauthorized(c)
				return
			}
			logger.ErrorContext(c.Request.Context(), "authenticate", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": "Internal server error"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errCredentials})
}

// CurrentUser returns the account resolved by Auth, or nil outside a
// protected route.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
