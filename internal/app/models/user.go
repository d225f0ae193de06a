package models

import (
	"time"
)

// RoleType represents a user's role in the system
type RoleType string

const (
	// RoleAdmin can create, update and delete enrollment records
	RoleAdmin RoleType = "admin"
	// RoleUser has read-only access to enrollment records
	RoleUser RoleType = "user"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"admin"`                   // Login name, unique
	Password  string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	FullName  string    `json:"full_name" db:"full_name" example:"System Administrator"`  // Display name
	Email     string    `json:"email" db:"email" example:"admin@enrolldesk.local"`        // Optional contact address
	Role      RoleType  `json:"role" db:"role" example:"admin"`                           // admin or user
	CreatedAt time.Time `json:"created_at" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// IsAdmin reports whether the user may perform mutating operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
