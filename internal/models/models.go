package models

import (
	"time"
)

// User is the full users row. It is only loaded when a password has to be
// checked and never serialized with its hash.
type User struct {
	ID              int64      `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Lastname        string     `json:"lastname" db:"lastname"`
	Email           string     `json:"email" db:"email"`
	PasswordHash    string     `json:"-" db:"password_hash"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt" db:"email_verified_at"`
	DeletedAt       *time.Time `json:"deletedAt" db:"deleted_at"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// UserProfile is a user without credentials.
type UserProfile struct {
	ID              int64      `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Lastname        string     `json:"lastname" db:"lastname"`
	Email           string     `json:"email" db:"email"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt" db:"email_verified_at"`
	DeletedAt       *time.Time `json:"deletedAt" db:"deleted_at"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// Profile drops the credential from a full row.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:              u.ID,
		Name:            u.Name,
		Lastname:        u.Lastname,
		Email:           u.Email,
		EmailVerifiedAt: u.EmailVerifiedAt,
		DeletedAt:       u.DeletedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// PublicUser is the projection returned next to tokens and embedded in posts.
type PublicUser struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Lastname string `json:"lastname" db:"lastname"`
	Email    string `json:"email" db:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Lastname: u.Lastname, Email: u.Email}
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"min=3,max=255"`
	Lastname string `json:"lastname" validate:"min=3,max=255"`
	Email    string `json:"email" validate:"email,max=255"`
	Password string `json:"password" validate:"min=8,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"email,max=255"`
	Password string `json:"password" validate:"min=8,max=255"`
}

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	User        PublicUser `json:"user"`
}

type Post struct {
	ID        int64      `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	UserID    int64      `json:"userId" db:"user_id"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time `json:"deletedAt" db:"deleted_at"`
}

// PostWithOwner is a post joined with its author's public projection.
type PostWithOwner struct {
	Post
	User PublicUser `json:"user" db:"user"`
}

type PostInput struct {
	Title string `json:"title" validate:"required,min=3,max=255"`
}

type Pagination struct {
	Page        int  `json:"page"`
	PerPage     int  `json:"perPage"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

type PaginatedResult[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination derives page counts and navigation flags.
func NewPagination(page, perPage, total int) Pagination {
	totalPages := 0
	if perPage > 0 {
		totalPages = total / perPage
		if total%perPage != 0 {
			totalPages++
		}
	}

	return Pagination{
		Page:        page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// HealthStatus is reported by the health endpoint.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Tables   int    `json:"tables"`
}
