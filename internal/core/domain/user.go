package domain

import (
	"errors"
	"time"
)

const (
	RoleUser             = "user"
	RoleAdmin            = "admin"
	RoleProfessionalChef = "professional_chef"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account. PasswordHash never leaves the service
// layer; it is only populated on the FindByEmail path used for login.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsPaid       bool      `json:"is_paid"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin || s == RoleProfessionalChef
}
