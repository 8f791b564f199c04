package repositories

import (
	"database/sql"

	"blogify/internal/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByBlogID(blogID int) ([]*models.Comment, error)
	ListByParentID(parentID int) ([]*models.Comment, error)
	Delete(id int) error
}

type commentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{DB: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	const q = `
		INSERT INTO comments (content, author_id, blog_id, parent_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		comment.Content,
		comment.AuthorID,
		comment.BlogID,
		comment.ParentID,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) GetByID(id int) (*models.Comment, error) {
	const q = `
		SELECT id, content, author_id, blog_id, parent_id, created_at
		FROM comments
		WHERE id = $1
	`
	c := &models.Comment{}
	var parentID sql.NullInt64
	err := r.DB.QueryRow(q, id).Scan(
		&c.ID, &c.Content, &c.AuthorID, &c.BlogID, &parentID, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		p := int(parentID.Int64)
		c.ParentID = &p
	}
	return c, nil
}

// ListByBlogID — все комментарии блога (корни и ответы вперемешку),
// по времени создания по возрастанию; дерево восстанавливает клиент по parent_id.
func (r *commentRepository) ListByBlogID(blogID int) ([]*models.Comment, error) {
	const q = `
		SELECT c.id, c.content, c.author_id, c.blog_id, c.parent_id, c.created_at,
		       u.name, u.role
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.blog_id = $1
		ORDER BY c.created_at ASC
	`
	rows, err := r.DB.Query(q, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Comment
	for rows.Next() {
		c := &models.Comment{}
		var parentID sql.NullInt64
		if err := rows.Scan(
			&c.ID, &c.Content, &c.AuthorID, &c.BlogID, &parentID, &c.CreatedAt,
			&c.AuthorName, &c.AuthorRole,
		); err != nil {
			return nil, err
		}
		if parentID.Valid {
			p := int(parentID.Int64)
			c.ParentID = &p
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *commentRepository) ListByParentID(parentID int) ([]*models.Comment, error) {
	const q = `
		SELECT id, content, author_id, blog_id, parent_id, created_at
		FROM comments
		WHERE parent_id = $1
	`
	rows, err := r.DB.Query(q, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Comment
	for rows.Next() {
		c := &models.Comment{}
		var pid sql.NullInt64
		if err := rows.Scan(&c.ID, &c.Content, &c.AuthorID, &c.BlogID, &pid, &c.CreatedAt); err != nil {
			return nil, err
		}
		if pid.Valid {
			p := int(pid.Int64)
			c.ParentID = &p
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *commentRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM comments WHERE id=$1`, id)
	return err
}
