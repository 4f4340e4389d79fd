package models

import "time"

// AcademicYear is a named school year with a date range
type AcademicYear struct {
	ID        int64              `json:"id"`
	YearName  string             `json:"year_name" example:"2025-2026"`
	StartDate string             `json:"start_date" example:"2025-06-01"`
	EndDate   string             `json:"end_date" example:"2026-03-31"`
	Status    AcademicYearStatus `json:"status" example:"active"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
