package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles — второй шаг гейта: пустой список ролей означает
// "любой аутентифицированный", иначе роль должна входить в множество.
// Проверки владения ресурсом остаются в хендлерах.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	allowedSet := map[string]struct{}{}
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no user in context"})
			return
		}
		if len(allowedSet) == 0 {
			c.Next()
			return
		}
		if _, ok := allowedSet[user.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access forbidden: insufficient permissions"})
			return
		}
		c.Next()
	}
}
