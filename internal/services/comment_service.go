package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"blogify/internal/models"
	"blogify/internal/repositories"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrTreeTooDeep     = errors.New("comment tree too deep")
)

// Предохранитель от неограниченной рекурсии на порченых/злонамеренных данных.
const maxCommentDepth = 64

type CommentService struct {
	Repo     repositories.CommentRepository
	BlogRepo repositories.BlogRepository
	Notifier *AdminNotifier
}

func NewCommentService(repo repositories.CommentRepository, blogRepo repositories.BlogRepository, notifier *AdminNotifier) *CommentService {
	return &CommentService{Repo: repo, BlogRepo: blogRepo, Notifier: notifier}
}

// Create — новый комментарий или ответ. Принадлежность parent тому же блогу
// не проверяется (осознанно воспроизведённое поведение источника).
func (s *CommentService) Create(blogID, authorID int, content string, parentID *int, authorName string) (*models.Comment, error) {
	if _, err := s.BlogRepo.GetByID(blogID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		Content:  content,
		AuthorID: authorID,
		BlogID:   blogID,
		ParentID: parentID,
	}
	if err := s.Repo.Create(comment); err != nil {
		return nil, err
	}

	s.Notifier.NotifyComment(authorName, blogID, content)
	return comment, nil
}

func (s *CommentService) List(blogID int) ([]*models.Comment, error) {
	return s.Repo.ListByBlogID(blogID)
}

func (s *CommentService) GetByID(id int) (*models.Comment, error) {
	comment, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

// DeleteSubtree — удаляет комментарий вместе со всеми ответами:
// обход в глубину, дети раньше родителя. Отката нет — частичное удаление
// при сбое посреди рекурсии принимается как есть.
func (s *CommentService) DeleteSubtree(id int) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.deleteRecursive(id, 0); err != nil {
		return err
	}
	log.Printf("[comment][delete] subtree removed root_id=%d", id)
	return nil
}

func (s *CommentService) deleteRecursive(id, depth int) error {
	if depth > maxCommentDepth {
		return fmt.Errorf("%w: depth > %d", ErrTreeTooDeep, maxCommentDepth)
	}

	children, err := s.Repo.ListByParentID(id)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.deleteRecursive(child.ID, depth+1); err != nil {
			return err
		}
	}
	return s.Repo.Delete(id)
}
