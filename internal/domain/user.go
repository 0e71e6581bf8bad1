package domain

import "time"

// Role is the access level attached to an account and embedded in its tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the accepted values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the domain model for accounts that sign in and file tickets.
// Accounts are immutable after signup and are never deleted.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
