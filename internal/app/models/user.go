package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the capability required for the admin dashboard
const RoleAdmin = "admin"

// User defines an authenticated account based on the 'users' table
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Profile defines the display record created alongside a user account,
// based on the 'profiles' table
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"fullName" db:"full_name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// UserRole associates a user identity with a capability, based on the
// 'user_roles' table. Admin access requires a row with role = "admin".
type UserRole struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID uuid.UUID `json:"userId" db:"user_id"`
	Role   string    `json:"role" db:"role"`
}
