package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogify/internal/models"
	"blogify/internal/services"
)

// ключ, под которым аутентифицированный пользователь лежит в контексте запроса
const ContextUserKey = "current_user"

// AuthMiddleware — первый шаг гейта: Bearer-токен из заголовка Authorization.
// После валидации токена пользователь перечитывается из БД: роль для
// авторизации берётся живая, а не из claims, поэтому смена роли действует
// со следующего запроса, без повторного логина.
func AuthMiddleware(authService services.AuthService, userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided, authorization denied"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided, authorization denied"})
			return
		}
		tokenStr := strings.TrimSpace(parts[1])
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided, authorization denied"})
			return
		}

		claims, err := authService.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := userService.GetUserByID(claims.UserID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		user.PasswordHash = ""

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser — аутентифицированный пользователь из контекста запроса.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
