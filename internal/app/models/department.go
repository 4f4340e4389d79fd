package models

import "time"

// Department represents an academic department
type Department struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Code           *string   `json:"code"`
	Head           *string   `json:"head"`
	Description    *string   `json:"description"`
	OfficeLocation *string   `json:"office_location"`
	ContactEmail   *string   `json:"contact_email"`
	ContactNumber  *string   `json:"contact_number"`
	Archived       bool      `json:"archived"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Populated on show
	Courses []*Course `json:"courses,omitempty"`
}
