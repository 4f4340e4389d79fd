package dto

import "mime/multipart"

// CreateFacultyRequest creates a faculty member. A blank id_number is allocated.
type CreateFacultyRequest struct {
	IDNumber       *string `form:"id_number" json:"id_number" binding:"omitempty,max=20"`
	FName          string  `form:"fname" json:"fname" binding:"required,max=255"`
	LName          string  `form:"lname" json:"lname" binding:"required,max=255"`
	Email          string  `form:"email" json:"email" binding:"required,email,max=255"`
	Contact        *string `form:"contact" json:"contact" binding:"omitempty,max=255"`
	Department     *string `form:"department" json:"department" binding:"omitempty,max=255"`
	Position       *string `form:"position" json:"position" binding:"omitempty,max=255"`
	Gender         *string `form:"gender" json:"gender" binding:"omitempty,max=50"`
	Birthday       *string `form:"birthday" json:"birthday" binding:"omitempty,date"`
	Address        *string `form:"address" json:"address" binding:"omitempty,max=1000"`
	EmploymentType *string `form:"employment_type" json:"employment_type" binding:"omitempty,max=100"`
	Education      *string `form:"education" json:"education" binding:"omitempty,max=1000"`
	Photo          *string `form:"photo" json:"photo" binding:"omitempty,max=1000"`
	DateHired      *string `form:"date_hired" json:"date_hired" binding:"omitempty,date"`
	Archived       *bool   `form:"archived" json:"archived"`

	PhotoFile *multipart.FileHeader `form:"photo_file" json:"-" swaggerignore:"true"`
}

// UpdateFacultyRequest changes only the supplied fields
type UpdateFacultyRequest struct {
	IDNumber       *string `form:"id_number" json:"id_number" binding:"omitempty,max=20"`
	FName          *string `form:"fname" json:"fname" binding:"omitempty,min=1,max=255"`
	LName          *string `form:"lname" json:"lname" binding:"omitempty,min=1,max=255"`
	Email          *string `form:"email" json:"email" binding:"omitempty,email,max=255"`
	Contact        *string `form:"contact" json:"contact" binding:"omitempty,max=255"`
	Department     *string `form:"department" json:"department" binding:"omitempty,max=255"`
	Position       *string `form:"position" json:"position" binding:"omitempty,max=255"`
	Gender         *string `form:"gender" json:"gender" binding:"omitempty,max=50"`
	Birthday       *string `form:"birthday" json:"birthday" binding:"omitempty,date"`
	Address        *string `form:"address" json:"address" binding:"omitempty,max=1000"`
	EmploymentType *string `form:"employment_type" json:"employment_type" binding:"omitempty,max=100"`
	Education      *string `form:"education" json:"education" binding:"omitempty,max=1000"`
	Photo          *string `form:"photo" json:"photo" binding:"omitempty,max=1000"`
	DateHired      *string `form:"date_hired" json:"date_hired" binding:"omitempty,date"`
	Archived       *bool   `form:"archived" json:"archived"`
	RemovePhoto    bool    `form:"remove_photo" json:"remove_photo"`

	PhotoFile *multipart.FileHeader `form:"photo_file" json:"-" swaggerignore:"true"`
}
