package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"blogify/internal/models"
)

type BlogRepository interface {
	Create(blog *models.Blog) error
	GetByID(id int) (*models.Blog, error)
	GetPublishedByID(id int) (*models.Blog, error)
	Update(blog *models.Blog) error
	Delete(id int) error
	SetPublished(id int, published bool) error
	ListPublished() ([]*models.Blog, error)
	SearchPublished(filter models.BlogSearchFilter) ([]*models.Blog, error)
}

type blogRepository struct {
	DB *sql.DB
}

func NewBlogRepository(db *sql.DB) BlogRepository {
	return &blogRepository{DB: db}
}

func (r *blogRepository) Create(blog *models.Blog) error {
	const q = `
		INSERT INTO blogs (title, content, tags, author_id, is_published)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(q,
		blog.Title,
		blog.Content,
		pq.Array(blog.Tags),
		blog.AuthorID,
		blog.IsPublished,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
}

func (r *blogRepository) GetByID(id int) (*models.Blog, error) {
	const q = `
		SELECT id, title, content, tags, author_id, is_published, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`
	b := &models.Blog{}
	err := r.DB.QueryRow(q, id).Scan(
		&b.ID, &b.Title, &b.Content, pq.Array(&b.Tags),
		&b.AuthorID, &b.IsPublished, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *blogRepository) GetPublishedByID(id int) (*models.Blog, error) {
	const q = `
		SELECT b.id, b.title, b.content, b.tags, b.author_id, b.is_published,
		       b.created_at, b.updated_at, u.name, u.email
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE b.id = $1 AND b.is_published = TRUE
	`
	b := &models.Blog{}
	err := r.DB.QueryRow(q, id).Scan(
		&b.ID, &b.Title, &b.Content, pq.Array(&b.Tags),
		&b.AuthorID, &b.IsPublished, &b.CreatedAt, &b.UpdatedAt,
		&b.AuthorName, &b.AuthorEmail,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *blogRepository) Update(blog *models.Blog) error {
	const q = `
		UPDATE blogs
		SET title=$1, content=$2, tags=$3, is_published=$4, updated_at=NOW()
		WHERE id=$5
	`
	_, err := r.DB.Exec(q, blog.Title, blog.Content, pq.Array(blog.Tags), blog.IsPublished, blog.ID)
	return err
}

func (r *blogRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM blogs WHERE id=$1`, id)
	return err
}

func (r *blogRepository) SetPublished(id int, published bool) error {
	_, err := r.DB.Exec(`
		UPDATE blogs SET is_published=$1, updated_at=NOW() WHERE id=$2
	`, published, id)
	return err
}

func (r *blogRepository) ListPublished() ([]*models.Blog, error) {
	const q = `
		SELECT b.id, b.title, b.content, b.tags, b.author_id, b.is_published,
		       b.created_at, b.updated_at, u.name, u.email
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE b.is_published = TRUE
		ORDER BY b.created_at DESC
	`
	return r.queryBlogs(q)
}

// SearchPublished — динамический фильтр по ключевому слову / тегу / автору,
// только опубликованные, новые сверху.
func (r *blogRepository) SearchPublished(filter models.BlogSearchFilter) ([]*models.Blog, error) {
	q := `
		SELECT b.id, b.title, b.content, b.tags, b.author_id, b.is_published,
		       b.created_at, b.updated_at, u.name, u.email
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE b.is_published = TRUE
	`
	args := []interface{}{}
	n := 1

	if filter.Keyword != "" {
		q += fmt.Sprintf(" AND (b.title ILIKE $%d OR b.content ILIKE $%d)", n, n)
		args = append(args, "%"+filter.Keyword+"%")
		n++
	}
	if filter.Tag != "" {
		q += fmt.Sprintf(" AND $%d = ANY(b.tags)", n)
		args = append(args, filter.Tag)
		n++
	}
	if filter.AuthorID != 0 {
		q += fmt.Sprintf(" AND b.author_id = $%d", n)
		args = append(args, filter.AuthorID)
		n++
	}
	q += " ORDER BY b.created_at DESC"

	return r.queryBlogs(q, args...)
}

func (r *blogRepository) queryBlogs(q string, args ...interface{}) ([]*models.Blog, error) {
	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Blog
	for rows.Next() {
		b := &models.Blog{}
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Content, pq.Array(&b.Tags),
			&b.AuthorID, &b.IsPublished, &b.CreatedAt, &b.UpdatedAt,
			&b.AuthorName, &b.AuthorEmail,
		); err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
