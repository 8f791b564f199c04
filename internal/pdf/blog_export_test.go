package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogify/internal/models"
)

func TestExportBlog(t *testing.T) {
	blog := &models.Blog{
		ID:         7,
		Title:      "Go after Node",
		Content:    "A long enough body to render a paragraph or two.",
		Tags:       []string{"go", "backend"},
		AuthorName: "Ann",
		CreatedAt:  time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, NewBlogExporter().ExportBlog(&buf, blog))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestExportBlog_NoTagsNoAuthor(t *testing.T) {
	blog := &models.Blog{
		ID:        1,
		Title:     "Untitled draft",
		Content:   "body",
		CreatedAt: time.Now(),
	}

	var buf bytes.Buffer
	require.NoError(t, NewBlogExporter().ExportBlog(&buf, blog))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
