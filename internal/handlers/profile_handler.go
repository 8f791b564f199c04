package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogify/internal/authz"
	"blogify/internal/models"
	"blogify/internal/services"
)

type ProfileHandler struct {
	Service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: service}
}

// targetUserID — либо :user_id из пути, либо сам вызывающий.
// Чужой профиль доступен только админу.
func (h *ProfileHandler) targetUserID(c *gin.Context) (int, bool) {
	user := mustCurrentUser(c)

	target := user.ID
	if s := c.Param("user_id"); s != "" {
		id, ok := paramInt(c, "user_id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return 0, false
		}
		target = id
	}

	if target != user.ID && !authz.IsAdmin(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access forbidden"})
		return 0, false
	}
	return target, true
}

// @Summary      Профиль (свой или любой — для админа)
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Profile
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	target, ok := h.targetUserID(c)
	if !ok {
		return
	}

	profile, err := h.Service.GetByUserID(target)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	target, ok := h.targetUserID(c)
	if !ok {
		return
	}

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Service.Update(target, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": profile})
}

// UploadAvatar — multipart-поле "avatar"; файл уходит в локальное хранилище,
// в профиле сохраняется относительный путь.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	target, ok := h.targetUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	relPath, err := h.Service.UploadAvatar(target, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile image uploaded successfully",
		"avatar":  relPath,
	})
}
