package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogify/internal/authz"
	"blogify/internal/models"
	"blogify/internal/services"
)

type stubUserService struct {
	users map[int]*models.User
}

func (s *stubUserService) Register(req *models.RegisterRequest) (*models.User, error) {
	panic("not used")
}

func (s *stubUserService) Login(email, password string) (*models.User, string, error) {
	panic("not used")
}

func (s *stubUserService) GetUserByID(id int) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserService) GetUserByEmail(email string) (*models.User, error) {
	panic("not used")
}

func newGateRouter(auth services.AuthService, users *stubUserService, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(auth, users))
	r.GET("/protected", RequireRoles(roles...), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"role": user.Role})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RejectsBadHeaders(t *testing.T) {
	auth := services.NewAuthService("test-secret")
	users := &stubUserService{users: map[int]*models.User{}}
	r := newGateRouter(auth, users)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"bearer without token", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doGet(r, tc.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	auth := services.NewAuthService("test-secret")
	users := &stubUserService{users: map[int]*models.User{
		7: {ID: 7, Role: authz.RoleUser},
	}}
	r := newGateRouter(auth, users)

	token, err := auth.GenerateTokenWithTTL(7, authz.RoleUser, -time.Minute)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_UserDeletedAfterIssue(t *testing.T) {
	auth := services.NewAuthService("test-secret")
	users := &stubUserService{users: map[int]*models.User{}}
	r := newGateRouter(auth, users)

	token, err := auth.GenerateToken(7, authz.RoleUser)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := services.NewAuthService("test-secret")
	users := &stubUserService{users: map[int]*models.User{
		7: {ID: 7, Role: authz.RoleAuthor, PasswordHash: "secret"},
	}}
	r := newGateRouter(auth, users)

	token, err := auth.GenerateToken(7, authz.RoleAuthor)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), authz.RoleAuthor)
}

// Роль берётся из БД на каждом запросе: токен со старой ролью
// получает новые права без повторного логина.
func TestAuthMiddleware_FreshRoleWins(t *testing.T) {
	auth := services.NewAuthService("test-secret")
	users := &stubUserService{users: map[int]*models.User{
		7: {ID: 7, Role: authz.RoleUser},
	}}
	r := newGateRouter(auth, users, authz.RoleAdmin)

	token, err := auth.GenerateToken(7, authz.RoleUser)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// повышение роли действует со следующего запроса
	users.users[7].Role = authz.RoleAdmin
	w = doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_EmptyMeansAnyAuthenticated(t *testing.T) {
	auth := services.NewAuthService("test-secret")
	users := &stubUserService{users: map[int]*models.User{
		1: {ID: 1, Role: authz.RoleUser},
	}}
	r := newGateRouter(auth, users)

	token, err := auth.GenerateToken(1, authz.RoleUser)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
