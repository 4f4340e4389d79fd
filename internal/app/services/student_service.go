package services

import (
	"context"
	"strings"
	"time"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/idalloc"
	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/pkg/metrics"
)

// StudentService defines the student record operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	students StudentStore
	photos   *PhotoManager
	now      func() time.Time
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, photos *PhotoManager) StudentService {
	return &studentServiceImpl{
		students: students,
		photos:   photos,
		now:      time.Now,
	}
}

func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students.List(ctx)
}

func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// CreateStudent persists a new student. A blank id_number or student_id is
// allocated for the current year.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	fname, lname, email := strings.TrimSpace(req.FName), strings.TrimSpace(req.LName), strings.TrimSpace(req.Email)
	if err := requireFields(map[string]*string{"fname": &fname, "lname": &lname, "email": &email}); err != nil {
		return nil, err
	}

	student := &models.Student{
		IDNumber:           valueOrEmpty(req.IDNumber),
		StudentID:          valueOrEmpty(req.StudentID),
		FName:              fname,
		MiddleName:         optional(req.MiddleName),
		LName:              lname,
		Age:                req.Age,
		Gender:             optional(req.Gender),
		Birthday:           optional(req.Birthday),
		Email:              email,
		Contact:            optional(req.Contact),
		Phone:              optional(req.Phone),
		Location:           optional(req.Location),
		Address:            optional(req.Address),
		Course:             optional(req.Course),
		Department:         optional(req.Department),
		Year:               optional(req.Year),
		Section:            optional(req.Section),
		SchoolYear:         optional(req.SchoolYear),
		GPA:                req.GPA,
		Status:             optional(req.Status),
		JoinDate:           optional(req.JoinDate),
		ParentName:         optional(req.ParentName),
		ParentRelationship: optional(req.ParentRelationship),
		ParentContact:      optional(req.ParentContact),
		ParentAddress:      optional(req.ParentAddress),
	}
	if req.Archived != nil {
		student.Archived = *req.Archived
	}

	photo, err := s.photos.Resolve(nil, PhotoInput{File: req.PhotoFile, URL: req.Photo}, models.StudentPhotoDir)
	if err != nil {
		return nil, err
	}
	student.Photo = photo.Value

	allocIDNumber, allocStudentNumber := student.IDNumber == "", student.StudentID == ""
	if err := s.students.Create(ctx, student, s.now().Year()); err != nil {
		s.photos.Rollback(photo)
		return nil, err
	}

	if allocIDNumber {
		metrics.IdentifierAllocated(idalloc.KindStudentIDNumber)
	}
	if allocStudentNumber {
		metrics.IdentifierAllocated(idalloc.KindStudentNumber)
	}
	return student, nil
}

// UpdateStudent changes only the supplied fields. Assigned identifiers are
// kept unless the request overwrites them with a non-blank value.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patchRequired(&student.IDNumber, req.IDNumber)
	patchRequired(&student.StudentID, req.StudentID)
	patchRequired(&student.FName, req.FName)
	patchOptional(&student.MiddleName, req.MiddleName)
	patchRequired(&student.LName, req.LName)
	if req.Age != nil {
		student.Age = req.Age
	}
	patchOptional(&student.Gender, req.Gender)
	patchOptional(&student.Birthday, req.Birthday)
	patchRequired(&student.Email, req.Email)
	patchOptional(&student.Contact, req.Contact)
	patchOptional(&student.Phone, req.Phone)
	patchOptional(&student.Location, req.Location)
	patchOptional(&student.Address, req.Address)
	patchOptional(&student.Course, req.Course)
	patchOptional(&student.Department, req.Department)
	patchOptional(&student.Year, req.Year)
	patchOptional(&student.Section, req.Section)
	patchOptional(&student.SchoolYear, req.SchoolYear)
	if req.GPA != nil {
		student.GPA = req.GPA
	}
	patchOptional(&student.Status, req.Status)
	patchOptional(&student.JoinDate, req.JoinDate)
	patchOptional(&student.ParentName, req.ParentName)
	patchOptional(&student.ParentRelationship, req.ParentRelationship)
	patchOptional(&student.ParentContact, req.ParentContact)
	patchOptional(&student.ParentAddress, req.ParentAddress)
	if req.Archived != nil {
		student.Archived = *req.Archived
	}

	photo, err := s.photos.Resolve(student.Photo, PhotoInput{File: req.PhotoFile, URL: req.Photo, Remove: req.RemovePhoto}, models.StudentPhotoDir)
	if err != nil {
		return nil, err
	}
	student.Photo = photo.Value

	if err := s.students.Update(ctx, student); err != nil {
		s.photos.Rollback(photo)
		return nil, err
	}
	s.photos.Commit(photo)

	logger.Debug().Int64("studentID", student.ID).Msg("Student updated")
	return student, nil
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	s.photos.Delete(student.Photo)
	return nil
}
