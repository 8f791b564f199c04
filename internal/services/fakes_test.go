package services

import (
	"database/sql"
	"fmt"
	"sync"

	"blogify/internal/models"
)

// ===== in-memory user repo =====

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate email %s", user.Email)
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) SetOTP(userID int, otp string, expiresAt sql.NullTime) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return sql.ErrNoRows
	}
	u.OTP = &otp
	if expiresAt.Valid {
		t := expiresAt.Time
		u.OTPExpiresAt = &t
	} else {
		u.OTPExpiresAt = nil
	}
	return nil
}

func (r *fakeUserRepo) ClearOTP(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return sql.ErrNoRows
	}
	u.OTP = nil
	u.OTPExpiresAt = nil
	return nil
}

// ===== in-memory profile repo =====

type fakeProfileRepo struct {
	mu       sync.Mutex
	nextID   int
	profiles map[int]*models.Profile // key: user id
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{nextID: 1, profiles: map[int]*models.Profile{}}
}

func (r *fakeProfileRepo) Create(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile.ID = r.nextID
	r.nextID++
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetByUserID(userID int) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Upsert(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.Avatar = existing.Avatar
	} else {
		profile.ID = r.nextID
		r.nextID++
	}
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) UpdateAvatar(userID int, avatar string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		p = &models.Profile{ID: r.nextID, UserID: userID}
		r.nextID++
		r.profiles[userID] = p
	}
	p.Avatar = avatar
	return nil
}

// ===== in-memory comment repo =====

type fakeCommentRepo struct {
	mu       sync.Mutex
	nextID   int
	comments map[int]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1, comments: map[int]*models.Comment{}}
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = r.nextID
	r.nextID++
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetByID(id int) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) ListByBlogID(blogID int) ([]*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []*models.Comment
	// порядок по id соответствует порядку вставки
	for id := 1; id < r.nextID; id++ {
		if c, ok := r.comments[id]; ok && c.BlogID == blogID {
			cp := *c
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *fakeCommentRepo) ListByParentID(parentID int) ([]*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []*models.Comment
	for id := 1; id < r.nextID; id++ {
		if c, ok := r.comments[id]; ok && c.ParentID != nil && *c.ParentID == parentID {
			cp := *c
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *fakeCommentRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.comments)
}

// ===== in-memory blog repo =====

type fakeBlogRepo struct {
	mu     sync.Mutex
	nextID int
	blogs  map[int]*models.Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{nextID: 1, blogs: map[int]*models.Blog{}}
}

func (r *fakeBlogRepo) Create(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	blog.ID = r.nextID
	r.nextID++
	cp := *blog
	r.blogs[blog.ID] = &cp
	return nil
}

func (r *fakeBlogRepo) GetByID(id int) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBlogRepo) GetPublishedByID(id int) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok || !b.IsPublished {
		return nil, sql.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBlogRepo) Update(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blogs[blog.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *blog
	r.blogs[blog.ID] = &cp
	return nil
}

func (r *fakeBlogRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blogs, id)
	return nil
}

func (r *fakeBlogRepo) SetPublished(id int, published bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return sql.ErrNoRows
	}
	b.IsPublished = published
	return nil
}

func (r *fakeBlogRepo) ListPublished() ([]*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []*models.Blog
	for id := r.nextID - 1; id >= 1; id-- {
		if b, ok := r.blogs[id]; ok && b.IsPublished {
			cp := *b
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *fakeBlogRepo) SearchPublished(filter models.BlogSearchFilter) ([]*models.Blog, error) {
	return r.ListPublished()
}

// ===== recording email service =====

type fakeEmailService struct {
	mu      sync.Mutex
	fail    bool
	otpSent []string // коды в порядке отправки
	toSent  []string
}

func (f *fakeEmailService) record(to, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("smtp unavailable")
	}
	f.otpSent = append(f.otpSent, code)
	f.toSent = append(f.toSent, to)
	return nil
}

func (f *fakeEmailService) SendOTPEmail(email, name, otp string) error {
	return f.record(email, otp)
}

func (f *fakeEmailService) SendNewOTPEmail(email, name, otp string) error {
	return f.record(email, otp)
}

func (f *fakeEmailService) SendLoginNotification(adminEmail, userName, role string) error {
	return f.record(adminEmail, "")
}

func (f *fakeEmailService) SendCommentNotification(adminEmail, userName string, blogID int, content string) error {
	return f.record(adminEmail, "")
}

func (f *fakeEmailService) lastCode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.otpSent) == 0 {
		return ""
	}
	return f.otpSent[len(f.otpSent)-1]
}
