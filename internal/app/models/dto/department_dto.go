package dto

// DepartmentRequest is used for create. On update, only non-nil fields apply.
type DepartmentRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=255"`
	Code           *string `json:"code" binding:"omitempty,max=50"`
	Head           *string `json:"head" binding:"omitempty,max=255"`
	Description    *string `json:"description"`
	OfficeLocation *string `json:"office_location" binding:"omitempty,max=255"`
	ContactEmail   *string `json:"contact_email" binding:"omitempty,email,max=255"`
	ContactNumber  *string `json:"contact_number" binding:"omitempty,max=50"`
	Archived       *bool   `json:"archived"`
}

// CourseRequest is used for create and partial update
type CourseRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=255"`
	Code         *string `json:"code" binding:"omitempty,max=50"`
	Description  *string `json:"description"`
	Duration     *string `json:"duration" binding:"omitempty,max=100"`
	DepartmentID *int64  `json:"department_id" binding:"omitempty,gt=0"`
	Archived     *bool   `json:"archived"`
}
