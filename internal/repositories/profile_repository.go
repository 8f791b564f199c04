package repositories

import (
	"database/sql"

	"blogify/internal/models"
)

type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByUserID(userID int) (*models.Profile, error)
	Upsert(profile *models.Profile) error
	UpdateAvatar(userID int, avatar string) error
}

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{DB: db}
}

func (r *profileRepository) Create(profile *models.Profile) error {
	const q = `
		INSERT INTO profiles (user_id, bio, website, location, twitter, github, linkedin, instagram, avatar)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(q,
		profile.UserID,
		profile.Bio,
		profile.Website,
		profile.Location,
		profile.SocialLinks.Twitter,
		profile.SocialLinks.Github,
		profile.SocialLinks.Linkedin,
		profile.SocialLinks.Instagram,
		profile.Avatar,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUserID(userID int) (*models.Profile, error) {
	const q = `
		SELECT p.id, p.user_id, p.bio, p.website, p.location,
		       p.twitter, p.github, p.linkedin, p.instagram, p.avatar,
		       p.created_at, p.updated_at,
		       u.name, u.email, u.role
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`
	p := &models.Profile{}
	err := r.DB.QueryRow(q, userID).Scan(
		&p.ID, &p.UserID, &p.Bio, &p.Website, &p.Location,
		&p.SocialLinks.Twitter, &p.SocialLinks.Github, &p.SocialLinks.Linkedin, &p.SocialLinks.Instagram,
		&p.Avatar,
		&p.CreatedAt, &p.UpdatedAt,
		&p.UserName, &p.UserEmail, &p.UserRole,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Upsert — обновляет поля профиля, при отсутствии строки создаёт её
// (аналог findOneAndUpdate с upsert).
func (r *profileRepository) Upsert(profile *models.Profile) error {
	const q = `
		INSERT INTO profiles (user_id, bio, website, location, twitter, github, linkedin, instagram)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (user_id) DO UPDATE
		SET bio=EXCLUDED.bio, website=EXCLUDED.website, location=EXCLUDED.location,
		    twitter=EXCLUDED.twitter, github=EXCLUDED.github,
		    linkedin=EXCLUDED.linkedin, instagram=EXCLUDED.instagram,
		    updated_at=NOW()
		RETURNING id, avatar, created_at, updated_at
	`
	return r.DB.QueryRow(q,
		profile.UserID,
		profile.Bio,
		profile.Website,
		profile.Location,
		profile.SocialLinks.Twitter,
		profile.SocialLinks.Github,
		profile.SocialLinks.Linkedin,
		profile.SocialLinks.Instagram,
	).Scan(&profile.ID, &profile.Avatar, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) UpdateAvatar(userID int, avatar string) error {
	const q = `
		INSERT INTO profiles (user_id, avatar)
		VALUES ($1,$2)
		ON CONFLICT (user_id) DO UPDATE
		SET avatar=EXCLUDED.avatar, updated_at=NOW()
	`
	_, err := r.DB.Exec(q, userID, avatar)
	return err
}
