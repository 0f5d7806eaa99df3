package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type User struct {
	ID           string  `json:"id"`
	Role         Role    `json:"role"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone,omitempty"`
	ProfilePic   *string `json:"profile_pic,omitempty"`
	Resume       *string `json:"resume,omitempty"`

	// CompanyID is set only for employers; null for every other role.
	CompanyID *string `json:"company_id,omitempty"`

	// Job-seeker profile fields used by the application filter
	Experience *int     `json:"experience,omitempty"`
	Skills     []string `json:"skills,omitempty"`

	IsBlocked         bool    `json:"is_blocked"`
	DeletionRequested bool    `json:"deletion_requested"`
	AccessToken       *string `json:"-"`

	Audit
}

// UserUpdateRequest is the typed admin-update payload. Only named fields can
// change; unknown JSON fields are rejected at the boundary.
type UserUpdateRequest struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	CompanyID  *string `json:"company_id,omitempty"`
	IsBlocked  *bool   `json:"is_blocked,omitempty"`
	ProfilePic *string `json:"-"`
	Resume     *string `json:"-"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailAndRole(ctx context.Context, email string, role Role) (*User, error)
	FetchActive(ctx context.Context) ([]User, error)
	FetchDeleted(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	// UpdateSession persists the access token and active flag together.
	UpdateSession(ctx context.Context, id string, token *string, isActive bool) error
	SetDeletionRequested(ctx context.Context, id string) error
	// HardDelete permanently removes the row. Only used for admin-approved
	// account erasure; everything else soft-deletes.
	HardDelete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role Role) (int64, error)
}

// AuthResult is returned on successful login or registration.
type AuthResult struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
}

type RegisterRequest struct {
	Name      string  `json:"name" binding:"required,min=2"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	Role      Role    `json:"role" binding:"required,role"`
	Phone     *string `json:"phone,omitempty"`
	CompanyID *string `json:"company_id,omitempty"`
}

type AuthUsecase interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string, role Role) (*AuthResult, error)
	Logout(ctx context.Context, userID string) error
	// GetSessionUser resolves the authenticated identity for the middleware,
	// consulting the identity cache first. Role comes from the token claims
	// and selects the cache key; the store remains authoritative.
	GetSessionUser(ctx context.Context, role Role, userID string) (*User, error)
	// EnsureAdminExists seeds the bootstrap admin credential record when no
	// admin row is present.
	EnsureAdminExists(ctx context.Context, email, password string) error
}

// UserListing separates live accounts from soft-deleted ones for the admin view.
type UserListing struct {
	ActiveUsers  []User `json:"active_users"`
	DeletedUsers []User `json:"deleted_users"`
}

type UserUsecase interface {
	ListUsers(ctx context.Context, actor *User) (*UserListing, error)
	UpdateUser(ctx context.Context, actor *User, targetID string, req *UserUpdateRequest) (*User, error)
	RequestDeletion(ctx context.Context, actor *User) error
	ApproveDeletion(ctx context.Context, actor *User, targetID string) error
}
