package models

import "time"

// Faculty is a faculty member. IDNumber (YYYY-###) is allocated on creation.
type Faculty struct {
	ID             int64     `json:"id" db:"id"`
	IDNumber       string    `json:"id_number" db:"id_number" example:"2025-001"`
	FName          string    `json:"fname" db:"fname"`
	LName          string    `json:"lname" db:"lname"`
	Email          string    `json:"email" db:"email"`
	Contact        *string   `json:"contact" db:"contact"`
	Department     *string   `json:"department" db:"department"`
	Position       *string   `json:"position" db:"position"`
	Gender         *string   `json:"gender" db:"gender"`
	Birthday       *string   `json:"birthday" db:"birthday"`
	Address        *string   `json:"address" db:"address"`
	EmploymentType *string   `json:"employment_type" db:"employment_type"`
	Education      *string   `json:"education" db:"education"`
	Photo          *string   `json:"photo" db:"photo"`
	DateHired      *string   `json:"date_hired" db:"date_hired"`
	Archived       bool      `json:"archived" db:"archived"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
