package services

import (
	"database/sql"
	"errors"
	"log"
	"mime/multipart"

	"blogify/internal/models"
	"blogify/internal/repositories"
	"blogify/internal/storage"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	Repo    repositories.ProfileRepository
	Uploads *storage.LocalStore
}

func NewProfileService(repo repositories.ProfileRepository, uploads *storage.LocalStore) *ProfileService {
	return &ProfileService{Repo: repo, Uploads: uploads}
}

func (s *ProfileService) GetByUserID(userID int) (*models.Profile, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update — upsert полей профиля (создаёт строку, если её ещё нет).
func (s *ProfileService) Update(userID int, req *models.ProfileUpdateRequest) (*models.Profile, error) {
	p := &models.Profile{
		UserID:      userID,
		Bio:         req.Bio,
		Website:     req.Website,
		Location:    req.Location,
		SocialLinks: req.SocialLinks,
	}
	if err := s.Repo.Upsert(p); err != nil {
		return nil, err
	}
	return s.Repo.GetByUserID(userID)
}

// UploadAvatar — сохраняет файл в локальное хранилище и пишет в профиль
// относительный путь вида "/uploads/<file>".
func (s *ProfileService) UploadAvatar(userID int, file *multipart.FileHeader) (string, error) {
	relPath, err := s.Uploads.SaveMultipart(file)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateAvatar(userID, relPath); err != nil {
		return "", err
	}
	log.Printf("[profile][avatar] saved user_id=%d path=%s", userID, relPath)
	return relPath, nil
}
