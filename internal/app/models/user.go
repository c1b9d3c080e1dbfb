package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Surname   string    `json:"surname" db:"surname"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password_hash"` // hashed, excluded from JSON
	RoleID    Role      `json:"roleId" db:"role_id"`
	HasCV     bool      `json:"hasCV" db:"has_cv"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Degree    *string   `json:"degree,omitempty" db:"degree"`
	GoogleID  *string   `json:"-" db:"google_id"` // set for accounts created via Google sign-in
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
