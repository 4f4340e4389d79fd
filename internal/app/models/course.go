package models

import "time"

// Course represents a course offered by a department.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Code         *string   `json:"code" db:"code"`
	Description  *string   `json:"description" db:"description"`
	Duration     *string   `json:"duration" db:"duration"`
	DepartmentID *int64    `json:"department_id" db:"department_id"` // NULL once the department is deleted
	Archived     bool      `json:"archived" db:"archived"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
