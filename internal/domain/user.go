package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleMechanic UserRole = "mechanic"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the authenticated identity a mutation runs under. Audit fields
// (approved_by, validated_by, received_by) are always taken from the actor,
// never from the request body.
type Actor struct {
	UserID int64
	Name   string
	Role   UserRole
}
