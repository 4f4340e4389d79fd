package services

import (
	"context"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
)

// ProfileService is the legacy profile API. Profiles are students.
type ProfileService interface {
	ListProfiles(ctx context.Context) ([]*models.Student, error)
	GetProfile(ctx context.Context, id int64) (*models.Student, error)
	CreateProfile(ctx context.Context, req *dto.ProfileRequest) (*models.Student, error)
	UpdateProfile(ctx context.Context, id int64, req *dto.ProfileRequest) (*models.Student, error)
	DeleteProfile(ctx context.Context, id int64) error
}

type profileServiceImpl struct {
	students StudentService
}

// NewProfileService creates a ProfileService on top of the student service
func NewProfileService(students StudentService) ProfileService {
	return &profileServiceImpl{students: students}
}

func (s *profileServiceImpl) ListProfiles(ctx context.Context) ([]*models.Student, error) {
	return s.students.ListStudents(ctx)
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetStudent(ctx, id)
}

// CreateProfile creates a student, so identifiers are allocated as usual.
// contact defaults to phone.
func (s *profileServiceImpl) CreateProfile(ctx context.Context, req *dto.ProfileRequest) (*models.Student, error) {
	if err := requireFields(map[string]*string{"fname": req.FName, "lname": req.LName, "email": req.Email}); err != nil {
		return nil, err
	}

	return s.students.CreateStudent(ctx, &dto.CreateStudentRequest{
		FName:    valueOrEmpty(req.FName),
		LName:    valueOrEmpty(req.LName),
		Email:    valueOrEmpty(req.Email),
		Age:      req.Age,
		Contact:  contactOrPhone(req),
		Phone:    req.Phone,
		Location: req.Location,
	})
}

func (s *profileServiceImpl) UpdateProfile(ctx context.Context, id int64, req *dto.ProfileRequest) (*models.Student, error) {
	return s.students.UpdateStudent(ctx, id, &dto.UpdateStudentRequest{
		FName:    req.FName,
		LName:    req.LName,
		Email:    req.Email,
		Age:      req.Age,
		Contact:  contactOrPhone(req),
		Phone:    req.Phone,
		Location: req.Location,
	})
}

func (s *profileServiceImpl) DeleteProfile(ctx context.Context, id int64) error {
	return s.students.DeleteStudent(ctx, id)
}

func contactOrPhone(req *dto.ProfileRequest) *string {
	if req.Contact != nil {
		return req.Contact
	}
	return req.Phone
}
