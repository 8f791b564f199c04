package services

import (
	"database/sql"
	"errors"
	"log"

	"blogify/internal/models"
	"blogify/internal/repositories"
)

var ErrBlogNotFound = errors.New("blog not found")

type BlogService struct {
	Repo repositories.BlogRepository
}

func NewBlogService(repo repositories.BlogRepository) *BlogService {
	return &BlogService{Repo: repo}
}

func (s *BlogService) Create(blog *models.Blog) error {
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	return s.Repo.Create(blog)
}

func (s *BlogService) GetByID(id int) (*models.Blog, error) {
	blog, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) GetPublishedByID(id int) (*models.Blog, error) {
	blog, err := s.Repo.GetPublishedByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Update(blog *models.Blog) error {
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	return s.Repo.Update(blog)
}

func (s *BlogService) Delete(id int) error {
	return s.Repo.Delete(id)
}

// TogglePublish — переключает флаг публикации, возвращает новое состояние.
func (s *BlogService) TogglePublish(id int) (*models.Blog, error) {
	blog, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetPublished(id, !blog.IsPublished); err != nil {
		return nil, err
	}
	blog.IsPublished = !blog.IsPublished
	log.Printf("[blog][publish] id=%d published=%v", id, blog.IsPublished)
	return blog, nil
}

func (s *BlogService) ListPublished() ([]*models.Blog, error) {
	return s.Repo.ListPublished()
}

func (s *BlogService) SearchPublished(filter models.BlogSearchFilter) ([]*models.Blog, error) {
	return s.Repo.SearchPublished(filter)
}
