package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"blogify/internal/models"
	"blogify/internal/repositories"
)

var (
	ErrCodeInvalid   = errors.New("invalid otp")
	ErrCodeExpired   = errors.New("otp expired")
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailDelivery = errors.New("failed to send otp email")
)

const otpTTL = 10 * time.Minute

// OTPService — жизненный цикл одноразового кода: генерация при регистрации,
// проверка, переотправка. Код хранится прямо в записи пользователя;
// очистка обоих полей означает подтверждённый аккаунт.
type OTPService struct {
	Users repositories.UserRepository
	Email EmailService

	now func() time.Time // по умолчанию time.Now, в тестах подменяется
}

func NewOTPService(users repositories.UserRepository, email EmailService) *OTPService {
	return &OTPService{Users: users, Email: email, now: time.Now}
}

// GenerateCode — 6-значный код в диапазоне 100000..999999.
func (s *OTPService) GenerateCode() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}

// IssueForRegistration — письмо уходит ДО создания записи: если доставка
// не удалась, регистрация отклоняется целиком и пользователь не создаётся.
func (s *OTPService) IssueForRegistration(email, name string) (code string, expiresAt time.Time, err error) {
	code = s.GenerateCode()
	expiresAt = s.now().Add(otpTTL)

	if err := s.Email.SendOTPEmail(email, name, code); err != nil {
		log.Printf("[otp][issue] email delivery failed for %s: %v", email, err)
		return "", time.Time{}, ErrEmailDelivery
	}
	return code, expiresAt, nil
}

// Verify — сначала сверка кода, срок действия проверяется только после
// совпадения. При успехе оба OTP-поля очищаются.
func (s *OTPService) Verify(email, code string) error {
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	if user.OTP == nil || *user.OTP != code {
		return ErrCodeInvalid
	}
	if user.OTPExpiresAt != nil && s.now().After(*user.OTPExpiresAt) {
		return ErrCodeExpired
	}

	if err := s.Users.ClearOTP(user.ID); err != nil {
		return err
	}
	log.Printf("[otp][verify] OK user_id=%d", user.ID)
	return nil
}

// Resend — безусловно генерирует новый код и новый срок; старый код
// становится недействительным сразу после сохранения.
func (s *OTPService) Resend(email string) error {
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	code := s.GenerateCode()
	expiresAt := s.now().Add(otpTTL)
	if err := s.Users.SetOTP(user.ID, code, sql.NullTime{Time: expiresAt, Valid: true}); err != nil {
		return err
	}

	if err := s.Email.SendNewOTPEmail(user.Email, user.Name, code); err != nil {
		log.Printf("[otp][resend] email delivery failed for user_id=%d: %v", user.ID, err)
		return ErrEmailDelivery
	}
	log.Printf("[otp][resend] new code sent user_id=%d", user.ID)
	return nil
}

// HasPendingOTP — логин блокируется, пока заполнено хотя бы одно OTP-поле,
// даже если срок кода уже вышел.
func (s *OTPService) HasPendingOTP(user *models.User) bool {
	return user.OTP != nil || user.OTPExpiresAt != nil
}
