package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/taskturkey/taskturkey-api/internal/errors"
	"github.com/taskturkey/taskturkey-api/internal/models"
	"github.com/taskturkey/taskturkey-api/internal/repository"
	"github.com/taskturkey/taskturkey-api/internal/token"
)

// Context keys set by RequireAuth.
const (
	ContextKeyUserID = "userID"
	ContextKeyUser   = "user"
)

// RequireAuth authenticates the request from the Authorization header. The
// credential must verify and its user must still exist.
func RequireAuth(codec *token.Codec, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		opaque := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if opaque == "" {
			apierrors.Unauthorized(c, apierrors.ErrCodeAuthRequired, "Authentication required")
			c.Abort()
			return
		}

		userID, err := codec.Verify(opaque)
		if err != nil {
			apierrors.Unauthorized(c, apierrors.ErrCodeAuthRequired, "Authentication required")
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			apierrors.Unauthorized(c, apierrors.ErrCodeInvalidToken, "Invalid authentication token")
			c.Abort()
			return
		}

		// Store the user in context for easy access in handlers
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, *user)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	if !ok {
		return "", false
	}
	return id, true
}

// GetUser retrieves the current user from context
func GetUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return models.User{}, false
	}

	user, ok := value.(models.User)
	if !ok {
		return models.User{}, false
	}
	return user, true
}
