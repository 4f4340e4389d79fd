package models

import (
	"time"
)

// User is an administrator account based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Admin User"`
	Email     string    `json:"email" db:"email" example:"admin@example.com"`
	Password  string    `json:"-" db:"password"`
	Phone     *string   `json:"phone" db:"phone"`
	Location  *string   `json:"location" db:"location"`
	Photo     *string   `json:"photo" db:"photo"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
