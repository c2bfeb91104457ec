package models

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a user account. Auth and identity only — assets are stored
// separately, keyed by UserID.
type User struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}
