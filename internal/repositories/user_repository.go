package repositories

import (
	"database/sql"

	"blogify/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id int) error

	// OTP helpers
	SetOTP(userID int, otp string, expiresAt sql.NullTime) error
	ClearOTP(userID int) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (name, email, password_hash, role, otp, otp_expires_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(q,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.OTP,
		user.OTPExpiresAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var (
		otp        sql.NullString
		otpExpires sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&otp, &otpExpires,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if otp.Valid {
		s := otp.String
		u.OTP = &s
	}
	if otpExpires.Valid {
		t := otpExpires.Time
		u.OTPExpiresAt = &t
	}
	return u, nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, otp, otp_expires_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.DB.QueryRow(q, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, otp, otp_expires_at, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.DB.QueryRow(q, email))
}

func (r *userRepository) Update(user *models.User) error {
	const q = `
		UPDATE users
		SET name=$1, email=$2, password_hash=$3, role=$4, updated_at=NOW()
		WHERE id=$5
	`
	_, err := r.DB.Exec(q, user.Name, user.Email, user.PasswordHash, user.Role, user.ID)
	return err
}

func (r *userRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM users WHERE id=$1`, id)
	return err
}

// ===== OTP helpers =====

func (r *userRepository) SetOTP(userID int, otp string, expiresAt sql.NullTime) error {
	const q = `
		UPDATE users
		SET otp=$1, otp_expires_at=$2, updated_at=NOW()
		WHERE id=$3
	`
	_, err := r.DB.Exec(q, otp, expiresAt, userID)
	return err
}

func (r *userRepository) ClearOTP(userID int) error {
	_, err := r.DB.Exec(`
		UPDATE users
		SET otp=NULL, otp_expires_at=NULL, updated_at=NOW()
		WHERE id=$1
	`, userID)
	return err
}
