package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogify/internal/authz"
	"blogify/internal/models"
	"blogify/internal/pdf"
	"blogify/internal/services"
)

type BlogHandler struct {
	Service  *services.BlogService
	Exporter pdf.Exporter
}

func NewBlogHandler(service *services.BlogService, exporter pdf.Exporter) *BlogHandler {
	return &BlogHandler{Service: service, Exporter: exporter}
}

type createBlogRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"is_published"`
}

// @Summary      Создать пост
// @Tags         Blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  models.Blog
// @Failure      400  {object}  map[string]string
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	user := mustCurrentUser(c)

	// автора берём из токена, входящий author_id игнорируем
	blog := &models.Blog{
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
		AuthorID:    user.ID,
	}
	if err := h.Service.Create(blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Blog created successfully",
		"blog":    blog,
	})
}

func (h *BlogHandler) GetByID(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	blog, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog})
}

// Update — редактировать может автор поста или админ.
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	current, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := mustCurrentUser(c)
	if current.AuthorID != user.ID && !authz.IsAdmin(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to edit this blog"})
		return
	}

	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != "" {
		current.Title = req.Title
	}
	if req.Content != "" {
		current.Content = req.Content
	}
	if req.Tags != nil {
		current.Tags = req.Tags
	}

	if err := h.Service.Update(current); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog updated successfully", "blog": current})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	blog, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := mustCurrentUser(c)
	if blog.AuthorID != user.ID && !authz.IsAdmin(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this blog"})
		return
	}

	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog deleted successfully"})
}

// TogglePublish — публикация/снятие с публикации, автор или админ.
func (h *BlogHandler) TogglePublish(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	blog, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := mustCurrentUser(c)
	if blog.AuthorID != user.ID && !authz.IsAdmin(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to change publish status"})
		return
	}

	updated, err := h.Service.TogglePublish(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := "unpublished"
	if updated.IsPublished {
		status = "published"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Blog %s successfully", status),
		"blog":    updated,
	})
}

// ListPublished — публичный список опубликованных постов, новые сверху.
func (h *BlogHandler) ListPublished(c *gin.Context) {
	blogs, err := h.Service.ListPublished()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blogs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(blogs), "blogs": blogs})
}

func (h *BlogHandler) GetPublishedByID(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	blog, err := h.Service.GetPublishedByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Published blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog})
}

// Search — публичный поиск по опубликованным (keyword/tag/author).
func (h *BlogHandler) Search(c *gin.Context) {
	filter := models.BlogSearchFilter{
		Keyword: c.Query("keyword"),
		Tag:     c.Query("tag"),
	}
	if a := c.Query("author"); a != "" {
		if id, err := strconv.Atoi(a); err == nil {
			filter.AuthorID = id
		}
	}

	blogs, err := h.Service.SearchPublished(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(blogs), "blogs": blogs})
}

// ExportPDF — выгрузка поста в PDF (автор или админ).
func (h *BlogHandler) ExportPDF(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	blog, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := mustCurrentUser(c)
	if blog.AuthorID != user.ID && !authz.IsAdmin(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="blog_%d.pdf"`, blog.ID))
	if err := h.Exporter.ExportBlog(c.Writer, blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf export failed"})
		return
	}
}
