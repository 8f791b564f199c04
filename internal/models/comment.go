package models

import "time"

// Comment — узел дерева комментариев. ParentID == nil для корневых,
// иначе ссылка на родительский комментарий того же блога.
type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int       `json:"author_id"`
	BlogID    int       `json:"blog_id"`
	ParentID  *int      `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`

	AuthorName string `json:"author_name,omitempty"`
	AuthorRole string `json:"author_role,omitempty"`
}
