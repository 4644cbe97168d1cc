package auth

import (
	"net/http"
	"strings"

	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	userContextKey = "auth_user"
	// UserIDContextKey mirrors the user id for request logging.
	UserIDContextKey = "user_id"
)

// RequireAuth resolves the caller from the Authorization header (or the
// given cookie) and aborts with 401 when it cannot.
func RequireAuth(verifier Verifier, cookieName string, logger utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Rejected credentials",
				"path", c.Request.URL.Path,
				"error", err)
			abortUnauthorized(c, "Invalid or expired credentials")
			return
		}

		SetUser(c, user)
		c.Next()
	}
}

// SetUser stores the authenticated user in the gin context.
func SetUser(c *gin.Context, user *User) {
	c.Set(userContextKey, user)
	c.Set(UserIDContextKey, user.ID)
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*User)
	return user, ok && user != nil
}

func extractToken(c *gin.Context, cookieName string) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil {
			return strings.TrimSpace(cookie)
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   message,
	})
}
