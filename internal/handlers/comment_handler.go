package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogify/internal/authz"
	"blogify/internal/services"
)

type CommentHandler struct {
	Service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{Service: service}
}

type createCommentRequest struct {
	Content  string `json:"content"`
	ParentID *int   `json:"parent_id"`
}

// @Summary      Добавить комментарий или ответ
// @Tags         Comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  models.Comment
// @Router       /api/blogs/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	blogID, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	user := mustCurrentUser(c)
	comment, err := h.Service.Create(blogID, user.ID, req.Content, req.ParentID, user.Name)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// List — публичный плоский список комментариев блога (по времени, старые сверху).
func (h *CommentHandler) List(c *gin.Context) {
	blogID, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return
	}

	comments, err := h.Service.List(blogID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Delete — комментарий и все ответы на него; автор комментария или админ.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	comment, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := mustCurrentUser(c)
	if comment.AuthorID != user.ID && !authz.IsAdmin(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return
	}

	if err := h.Service.DeleteSubtree(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment and all replies deleted"})
}
