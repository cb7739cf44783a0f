package auth

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid token")
)

type Role string

const (
	RoleUser       Role = "user"
	RolePremium    Role = "premium"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

type User struct {
	ID           int64     `json:"id" example:"1"`
	FirstName    string    `json:"first_name" example:"Ada"`
	LastName     string    `json:"last_name" example:"Lovelace"`
	Email        string    `json:"email" example:"ada@shop.test"`
	Age          int       `json:"age" example:"36"`
	Role         Role      `json:"role" example:"user"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at" example:"2026-02-24T12:00:00Z"`
}
