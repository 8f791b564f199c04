package models

import "time"

type Profile struct {
	ID     int `json:"id"`
	UserID int `json:"user_id"`

	Bio      string `json:"bio"`
	Website  string `json:"website"`
	Location string `json:"location"`

	SocialLinks SocialLinks `json:"social_links"`

	// относительный путь вида "/uploads/<file>"; раздаётся статикой
	Avatar string `json:"avatar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// заполняется JOIN-ом с users
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	UserRole  string `json:"user_role,omitempty"`
}

type SocialLinks struct {
	Twitter   string `json:"twitter"`
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

type ProfileUpdateRequest struct {
	Bio         string      `json:"bio"`
	Website     string      `json:"website"`
	Location    string      `json:"location"`
	SocialLinks SocialLinks `json:"social_links"`
}
