package models

import "time"

type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // не отдаём наружу
	Role         string `json:"role"`

	// OTP-верификация: оба поля NULL => аккаунт подтверждён.
	// Пока хотя бы одно заполнено — логин запрещён (независимо от срока).
	OTP          *string    `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsVerified() bool {
	return u.OTP == nil && u.OTPExpiresAt == nil
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser — безопасное представление пользователя для ответов API.
type PublicUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
