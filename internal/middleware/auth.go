package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelterworks/petadopt/internal/entity"
	userRepo "github.com/shelterworks/petadopt/internal/modules/user/repository"
	"github.com/shelterworks/petadopt/pkg/session"
)

type AuthMiddleware struct {
	users    userRepo.UserRepository
	sessions session.Store
}

func NewAuthMiddleware(users userRepo.UserRepository, sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{
		users:    users,
		sessions: sessions,
	}
}

// RequireRole gates a route behind a minimum role. A request with no live
// session is always 401; a resolved session whose user falls below the
// threshold is 403. A session whose user no longer exists degrades to guest
// rather than erroring, so deleted accounts lose access the same way
// under-privileged ones do.
func (m *AuthMiddleware) RequireRole(min entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "you must log in"})
			c.Abort()
			return
		}

		userID, err := m.sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "you must log in"})
			c.Abort()
			return
		}

		role := entity.RoleGuest
		if user, err := m.users.FindByID(c.Request.Context(), userID); err == nil {
			role = user.Role
		}

		if !role.AtLeast(min) {
			c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to access this resource"})
			c.Abort()
			return
		}

		c.Set("user_id", userID.String())
		c.Set("role", role)
		c.Next()
	}
}
