package dto

import "github.com/yigit/registrar/internal/app/models"

// AcademicYearRequest is used for create and partial update
type AcademicYearRequest struct {
	YearName  *string                    `json:"year_name" binding:"omitempty,min=1,max=50"`
	StartDate *string                    `json:"start_date" binding:"omitempty,date"`
	EndDate   *string                    `json:"end_date" binding:"omitempty,date"`
	Status    *models.AcademicYearStatus `json:"status" binding:"omitempty,oneof=active inactive archived"`
}

// AcademicYearFilter narrows the academic year listing
type AcademicYearFilter struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=active inactive archived"`
}
