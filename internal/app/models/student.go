package models

import "time"

// Student defines the student model based on the 'students' table.
// IDNumber (YYYY-###) and StudentID (YYYY#####) are allocated on creation.
type Student struct {
	ID                 int64     `json:"id" db:"id" example:"1"`
	IDNumber           string    `json:"id_number" db:"id_number" example:"2025-001"`
	StudentID          string    `json:"student_id" db:"student_id" example:"202500001"`
	FName              string    `json:"fname" db:"fname" example:"Juan"`
	MiddleName         *string   `json:"middle_name" db:"middle_name"`
	LName              string    `json:"lname" db:"lname" example:"Dela Cruz"`
	Age                *int      `json:"age" db:"age" example:"19"`
	Gender             *string   `json:"gender" db:"gender"`
	Birthday           *string   `json:"birthday" db:"birthday" example:"2006-05-14"`
	Email              string    `json:"email" db:"email" example:"juan@example.com"`
	Contact            *string   `json:"contact" db:"contact"`
	Phone              *string   `json:"phone" db:"phone"`
	Location           *string   `json:"location" db:"location"`
	Address            *string   `json:"address" db:"address"`
	Course             *string   `json:"course" db:"course"`
	Department         *string   `json:"department" db:"department"`
	Year               *string   `json:"year" db:"year"`
	Section            *string   `json:"section" db:"section"`
	SchoolYear         *string   `json:"school_year" db:"school_year"`
	GPA                *float64  `json:"gpa" db:"gpa" example:"3.50"`
	Status             *string   `json:"status" db:"status"`
	JoinDate           *string   `json:"join_date" db:"join_date"`
	ParentName         *string   `json:"parent_name" db:"parent_name"`
	ParentRelationship *string   `json:"parent_relationship" db:"parent_relationship"`
	ParentContact      *string   `json:"parent_contact" db:"parent_contact"`
	ParentAddress      *string   `json:"parent_address" db:"parent_address"`
	Photo              *string   `json:"photo" db:"photo"`
	Archived           bool      `json:"archived" db:"archived"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
