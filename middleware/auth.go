package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/methodhub/backend/models"
	"github.com/methodhub/backend/utils"
)

// Context keys set by the auth middlewares.
const (
	ctxUserID  = "user_id"
	ctxIsAdmin = "is_admin"
	ctxUser    = "user"
)

// UserValidator is the live per-request account check. A nil user means
// the credential is no longer acceptable (deleted or banned account).
type UserValidator interface {
	ValidateUser(ctx context.Context, userID int) (*models.PublicUser, error)
}

// Auth requires a valid bearer token backed by a live, unbanned account.
func Auth(tokens *utils.TokenManager, users UserValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, tokens)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing or invalid authorization header"})
			c.Abort()
			return
		}

		user, err := users.ValidateUser(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Error().Err(err).Int("user_id", claims.UserID).Msg("auth check failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			c.Abort()
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		setUser(c, *user)
		c.Next()
	}
}

// OptionalAuth resolves the user when a usable token is present and treats
// every failure as an anonymous request.
func OptionalAuth(tokens *utils.TokenManager, users UserValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, tokens)
		if !ok {
			c.Next()
			return
		}

		user, err := users.ValidateUser(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		setUser(c, *user)
		c.Next()
	}
}

func bearerClaims(c *gin.Context, tokens *utils.TokenManager) (*utils.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setUser(c *gin.Context, user models.PublicUser) {
	c.Set(ctxUserID, user.ID)
	c.Set(ctxIsAdmin, user.IsAdmin)
	c.Set(ctxUser, user)
}

// UserID returns the authenticated user's id, if any.
func UserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// OptionalUserID returns a pointer for handlers that accept anonymous
// callers.
func OptionalUserID(c *gin.Context) *int {
	if id, ok := UserID(c); ok {
		return &id
	}
	return nil
}

// IsAdmin reports whether the authenticated user is an administrator.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxIsAdmin)
}
