package handlers

import (
	"bytes"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogify/internal/authz"
	"blogify/internal/models"
	"blogify/internal/services"
)

type memProfileRepo struct {
	byUser map[int]*models.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{byUser: map[int]*models.Profile{}}
}

func (r *memProfileRepo) Create(p *models.Profile) error {
	cp := *p
	r.byUser[p.UserID] = &cp
	return nil
}

func (r *memProfileRepo) GetByUserID(userID int) (*models.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) Upsert(p *models.Profile) error {
	if existing, ok := r.byUser[p.UserID]; ok {
		p.Avatar = existing.Avatar
	}
	cp := *p
	r.byUser[p.UserID] = &cp
	return nil
}

func (r *memProfileRepo) UpdateAvatar(userID int, avatar string) error {
	p, ok := r.byUser[userID]
	if !ok {
		p = &models.Profile{UserID: userID}
		r.byUser[userID] = p
	}
	p.Avatar = avatar
	return nil
}

func newProfileRouter(repo *memProfileRepo, caller *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProfileHandler(services.NewProfileService(repo, nil))

	r := gin.New()
	r.Use(asUser(caller))
	r.GET("/api/profile", h.Get)
	r.PUT("/api/profile", h.Update)
	r.GET("/api/profile/:user_id", h.Get)
	r.PUT("/api/profile/:user_id", h.Update)
	return r
}

func getProfile(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProfileGet_Self(t *testing.T) {
	repo := newMemProfileRepo()
	require.NoError(t, repo.Create(&models.Profile{UserID: 5, Bio: "hi"}))

	r := newProfileRouter(repo, &models.User{ID: 5, Role: authz.RoleUser})
	w := getProfile(r, "/api/profile")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hi")
}

func TestProfileGet_MissingRow(t *testing.T) {
	r := newProfileRouter(newMemProfileRepo(), &models.User{ID: 5, Role: authz.RoleUser})
	w := getProfile(r, "/api/profile")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// чужой профиль: обычному пользователю и автору — 403, админу — 200
func TestProfileGet_ForeignAccessMatrix(t *testing.T) {
	repo := newMemProfileRepo()
	require.NoError(t, repo.Create(&models.Profile{UserID: 5, Bio: "owner"}))

	cases := []struct {
		role string
		want int
	}{
		{authz.RoleUser, http.StatusForbidden},
		{authz.RoleAuthor, http.StatusForbidden},
		{authz.RoleAdmin, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			r := newProfileRouter(repo, &models.User{ID: 99, Role: tc.role})
			w := getProfile(r, "/api/profile/5")
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestProfileUpdate_UpsertsMissingRow(t *testing.T) {
	repo := newMemProfileRepo()
	r := newProfileRouter(repo, &models.User{ID: 5, Role: authz.RoleUser})

	body := []byte(`{"bio":"new bio","website":"https://example.com"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	p, err := repo.GetByUserID(5)
	require.NoError(t, err)
	assert.Equal(t, "new bio", p.Bio)
}

func TestProfileUpdate_ForeignByAdmin(t *testing.T) {
	repo := newMemProfileRepo()
	require.NoError(t, repo.Create(&models.Profile{UserID: 5, Bio: "old"}))

	r := newProfileRouter(repo, &models.User{ID: 1, Role: authz.RoleAdmin})
	body := []byte(`{"bio":"moderated"}`)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/profile/%d", 5), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	p, err := repo.GetByUserID(5)
	require.NoError(t, err)
	assert.Equal(t, "moderated", p.Bio)
}

func TestProfileGet_BadUserIDParam(t *testing.T) {
	r := newProfileRouter(newMemProfileRepo(), &models.User{ID: 1, Role: authz.RoleAdmin})
	w := getProfile(r, "/api/profile/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
