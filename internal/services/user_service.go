package services

import (
	"database/sql"
	"errors"
	"log"
	"strings"

	"blogify/internal/authz"
	"blogify/internal/models"
	"blogify/internal/repositories"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("account not verified")
)

type UserService interface {
	Register(req *models.RegisterRequest) (*models.User, error)
	Login(email, password string) (*models.User, string, error)
	GetUserByID(id int) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
}

type userService struct {
	repo        repositories.UserRepository
	profileRepo repositories.ProfileRepository
	otpService  *OTPService
	authService AuthService
	notifier    *AdminNotifier
}

func NewUserService(
	repo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	otpService *OTPService,
	authService AuthService,
	notifier *AdminNotifier,
) UserService {
	return &userService{
		repo:        repo,
		profileRepo: profileRepo,
		otpService:  otpService,
		authService: authService,
		notifier:    notifier,
	}
}

// Register — создаёт неверифицированного пользователя с OTP.
// Письмо с кодом отправляется до INSERT: при сбое доставки записи не будет.
func (s *userService) Register(req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	role := req.Role
	if !authz.IsValidRole(role) {
		role = authz.RoleUser
	}

	code, expiresAt, err := s.otpService.IssueForRegistration(email, req.Name)
	if err != nil {
		return nil, err
	}

	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		OTP:          &code,
		OTPExpiresAt: &expiresAt,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	log.Printf("[auth][register] unverified user created id=%d email=%q", user.ID, email)
	s.notifier.NotifyRegistration(user.Name, user.Email)
	return user, nil
}

// Login — email+пароль, запрет входа при незавершённой OTP-верификации.
func (s *userService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if s.otpService.HasPendingOTP(user) {
		return nil, "", ErrNotVerified
	}

	if !s.authService.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.authService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	// автосоздание пустого профиля при первом входе
	if _, err := s.profileRepo.GetByUserID(user.ID); errors.Is(err, sql.ErrNoRows) {
		p := &models.Profile{UserID: user.ID}
		if err := s.profileRepo.Create(p); err != nil {
			log.Printf("[auth][login] warning: profile auto-create failed user_id=%d: %v", user.ID, err)
		}
	}

	s.notifier.NotifyLogin(user.Name, user.Role)

	log.Printf("[auth][login] success user_id=%d role=%s", user.ID, user.Role)
	return user, token, nil
}

func (s *userService) GetUserByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
}
