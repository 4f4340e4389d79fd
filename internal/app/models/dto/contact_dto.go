package dto

// ContactRequest is used for create and partial update
type ContactRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
	Notes *string `json:"notes"`
}

// ProfileRequest is the legacy profile payload mapped onto a student
type ProfileRequest struct {
	FName    *string `form:"fname" json:"fname" binding:"omitempty,min=1,max=255"`
	LName    *string `form:"lname" json:"lname" binding:"omitempty,min=1,max=255"`
	Age      *int    `form:"age" json:"age" binding:"omitempty,gte=0,lte=150"`
	Email    *string `form:"email" json:"email" binding:"omitempty,email,max=255"`
	Contact  *string `form:"contact" json:"contact" binding:"omitempty,max=255"`
	Phone    *string `form:"phone" json:"phone" binding:"omitempty,max=255"`
	Location *string `form:"location" json:"location" binding:"omitempty,max=255"`
}
