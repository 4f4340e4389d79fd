package models

// AcademicYearStatus is the lifecycle state of an academic year
type AcademicYearStatus string

const (
	AcademicYearActive   AcademicYearStatus = "active"
	AcademicYearInactive AcademicYearStatus = "inactive"
	AcademicYearArchived AcademicYearStatus = "archived"
)

// Photo directories under the uploads area
const (
	StudentPhotoDir = "student_photos"
	FacultyPhotoDir = "faculty_photos"
	ProfilePhotoDir = "profile_photos"
)
