package dto

import "mime/multipart"

// CreateStudentRequest is accepted as JSON or multipart form. Blank
// id_number and student_id are allocated by the server.
type CreateStudentRequest struct {
	IDNumber           *string  `form:"id_number" json:"id_number" binding:"omitempty,max=20"`
	StudentID          *string  `form:"student_id" json:"student_id" binding:"omitempty,max=100"`
	FName              string   `form:"fname" json:"fname" binding:"required,max=255"`
	MiddleName         *string  `form:"middle_name" json:"middle_name" binding:"omitempty,max=255"`
	LName              string   `form:"lname" json:"lname" binding:"required,max=255"`
	Age                *int     `form:"age" json:"age" binding:"omitempty,gte=0,lte=150"`
	Gender             *string  `form:"gender" json:"gender" binding:"omitempty,max=50"`
	Birthday           *string  `form:"birthday" json:"birthday" binding:"omitempty,date"`
	Email              string   `form:"email" json:"email" binding:"required,email,max=255"`
	Contact            *string  `form:"contact" json:"contact" binding:"omitempty,max=255"`
	Phone              *string  `form:"phone" json:"phone" binding:"omitempty,max=255"`
	Location           *string  `form:"location" json:"location" binding:"omitempty,max=255"`
	Address            *string  `form:"address" json:"address" binding:"omitempty,max=1000"`
	Course             *string  `form:"course" json:"course" binding:"omitempty,max=255"`
	Department         *string  `form:"department" json:"department" binding:"omitempty,max=255"`
	Year               *string  `form:"year" json:"year" binding:"omitempty,max=50"`
	Section            *string  `form:"section" json:"section" binding:"omitempty,max=100"`
	SchoolYear         *string  `form:"school_year" json:"school_year" binding:"omitempty,max=50"`
	GPA                *float64 `form:"gpa" json:"gpa" binding:"omitempty,gte=0,lte=4"`
	Status             *string  `form:"status" json:"status" binding:"omitempty,max=50"`
	JoinDate           *string  `form:"join_date" json:"join_date" binding:"omitempty,date"`
	ParentName         *string  `form:"parent_name" json:"parent_name" binding:"omitempty,max=255"`
	ParentRelationship *string  `form:"parent_relationship" json:"parent_relationship" binding:"omitempty,max=255"`
	ParentContact      *string  `form:"parent_contact" json:"parent_contact" binding:"omitempty,max=255"`
	ParentAddress      *string  `form:"parent_address" json:"parent_address" binding:"omitempty,max=1000"`
	Photo              *string  `form:"photo" json:"photo" binding:"omitempty,max=1000"`
	Archived           *bool    `form:"archived" json:"archived"`

	PhotoFile *multipart.FileHeader `form:"photo_file" json:"-" swaggerignore:"true"`
}

// UpdateStudentRequest changes only the supplied fields. An empty string
// clears an optional field. Identifiers change only when sent explicitly.
type UpdateStudentRequest struct {
	IDNumber           *string  `form:"id_number" json:"id_number" binding:"omitempty,max=20"`
	StudentID          *string  `form:"student_id" json:"student_id" binding:"omitempty,max=100"`
	FName              *string  `form:"fname" json:"fname" binding:"omitempty,min=1,max=255"`
	MiddleName         *string  `form:"middle_name" json:"middle_name" binding:"omitempty,max=255"`
	LName              *string  `form:"lname" json:"lname" binding:"omitempty,min=1,max=255"`
	Age                *int     `form:"age" json:"age" binding:"omitempty,gte=0,lte=150"`
	Gender             *string  `form:"gender" json:"gender" binding:"omitempty,max=50"`
	Birthday           *string  `form:"birthday" json:"birthday" binding:"omitempty,date"`
	Email              *string  `form:"email" json:"email" binding:"omitempty,email,max=255"`
	Contact            *string  `form:"contact" json:"contact" binding:"omitempty,max=255"`
	Phone              *string  `form:"phone" json:"phone" binding:"omitempty,max=255"`
	Location           *string  `form:"location" json:"location" binding:"omitempty,max=255"`
	Address            *string  `form:"address" json:"address" binding:"omitempty,max=1000"`
	Course             *string  `form:"course" json:"course" binding:"omitempty,max=255"`
	Department         *string  `form:"department" json:"department" binding:"omitempty,max=255"`
	Year               *string  `form:"year" json:"year" binding:"omitempty,max=50"`
	Section            *string  `form:"section" json:"section" binding:"omitempty,max=100"`
	SchoolYear         *string  `form:"school_year" json:"school_year" binding:"omitempty,max=50"`
	GPA                *float64 `form:"gpa" json:"gpa" binding:"omitempty,gte=0,lte=4"`
	Status             *string  `form:"status" json:"status" binding:"omitempty,max=50"`
	JoinDate           *string  `form:"join_date" json:"join_date" binding:"omitempty,date"`
	ParentName         *string  `form:"parent_name" json:"parent_name" binding:"omitempty,max=255"`
	ParentRelationship *string  `form:"parent_relationship" json:"parent_relationship" binding:"omitempty,max=255"`
	ParentContact      *string  `form:"parent_contact" json:"parent_contact" binding:"omitempty,max=255"`
	ParentAddress      *string  `form:"parent_address" json:"parent_address" binding:"omitempty,max=1000"`
	Photo              *string  `form:"photo" json:"photo" binding:"omitempty,max=1000"`
	Archived           *bool    `form:"archived" json:"archived"`
	RemovePhoto        bool     `form:"remove_photo" json:"remove_photo"`

	PhotoFile *multipart.FileHeader `form:"photo_file" json:"-" swaggerignore:"true"`
}
