package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogify/internal/models"
	"blogify/internal/services"
)

type AuthHandler struct {
	userService services.UserService
	otpService  *services.OTPService
}

func NewAuthHandler(userService services.UserService, otpService *services.OTPService) *AuthHandler {
	return &AuthHandler{userService: userService, otpService: otpService}
}

// @Summary      Регистрация с OTP-верификацией
// @Description  Создаёт неподтверждённый аккаунт и отправляет код на email
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      models.RegisterRequest  true  "Данные регистрации"
// @Success      201       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if _, err := h.userService.Register(&req); err != nil {
		switch {
		case errors.Is(err, services.ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		case errors.Is(err, services.ErrEmailDelivery):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP email. Please check your email settings."})
		default:
			log.Printf("[auth][register] error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "OTP sent to your email. Please verify to activate your account.",
	})
}

// @Summary      Подтверждение OTP
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" || req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and OTP are required"})
		return
	}

	if err := h.otpService.Verify(strings.ToLower(strings.TrimSpace(req.Email)), req.OTP); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, services.ErrCodeInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		case errors.Is(err, services.ErrCodeExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP has expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account verified successfully"})
}

// @Summary      Повторная отправка OTP
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/resend-otp [post]
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.otpService.Resend(strings.ToLower(strings.TrimSpace(req.Email))); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, services.ErrEmailDelivery):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Resend failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "New OTP sent to your email"})
}

// @Summary      Вход в систему
// @Description  Выдаёт JWT на 1 час; вход запрещён до подтверждения OTP
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Данные для входа"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	user, token, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotVerified):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please verify your email with OTP before logging in."})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		default:
			log.Printf("[auth][login] error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}
