package models

import "time"

type Blog struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	AuthorID    int       `json:"author_id"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// заполняется JOIN-ом в публичных выборках
	AuthorName  string `json:"author_name,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
}

// BlogSearchFilter — параметры поиска по опубликованным постам.
type BlogSearchFilter struct {
	Keyword  string
	Tag      string
	AuthorID int
}
