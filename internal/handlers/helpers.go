package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blogify/internal/middleware"
	"blogify/internal/models"
)

func mustCurrentUser(c *gin.Context) *models.User {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		// сюда можно попасть только мимо AuthMiddleware
		return &models.User{}
	}
	return user
}

func paramInt(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return n, true
}
