package services

import (
	"context"
	"strings"
	"time"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/idalloc"
	"github.com/yigit/registrar/internal/pkg/metrics"
)

// FacultyService defines the faculty member operations
type FacultyService interface {
	ListFaculty(ctx context.Context) ([]*models.Faculty, error)
	GetFaculty(ctx context.Context, id int64) (*models.Faculty, error)
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	UpdateFaculty(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id int64) error
}

type facultyServiceImpl struct {
	faculty FacultyStore
	photos  *PhotoManager
	now     func() time.Time
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(faculty FacultyStore, photos *PhotoManager) FacultyService {
	return &facultyServiceImpl{
		faculty: faculty,
		photos:  photos,
		now:     time.Now,
	}
}

func (s *facultyServiceImpl) ListFaculty(ctx context.Context) ([]*models.Faculty, error) {
	return s.faculty.List(ctx)
}

func (s *facultyServiceImpl) GetFaculty(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.faculty.GetByID(ctx, id)
}

// CreateFaculty persists a new faculty member, allocating a blank id_number
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	fname, lname, email := strings.TrimSpace(req.FName), strings.TrimSpace(req.LName), strings.TrimSpace(req.Email)
	if err := requireFields(map[string]*string{"fname": &fname, "lname": &lname, "email": &email}); err != nil {
		return nil, err
	}

	member := &models.Faculty{
		IDNumber:       valueOrEmpty(req.IDNumber),
		FName:          fname,
		LName:          lname,
		Email:          email,
		Contact:        optional(req.Contact),
		Department:     optional(req.Department),
		Position:       optional(req.Position),
		Gender:         optional(req.Gender),
		Birthday:       optional(req.Birthday),
		Address:        optional(req.Address),
		EmploymentType: optional(req.EmploymentType),
		Education:      optional(req.Education),
		DateHired:      optional(req.DateHired),
	}
	if req.Archived != nil {
		member.Archived = *req.Archived
	}

	photo, err := s.photos.Resolve(nil, PhotoInput{File: req.PhotoFile, URL: req.Photo}, models.FacultyPhotoDir)
	if err != nil {
		return nil, err
	}
	member.Photo = photo.Value

	allocate := member.IDNumber == ""
	if err := s.faculty.Create(ctx, member, s.now().Year()); err != nil {
		s.photos.Rollback(photo)
		return nil, err
	}
	if allocate {
		metrics.IdentifierAllocated(idalloc.KindFacultyIDNumber)
	}
	return member, nil
}

// UpdateFaculty changes only the supplied fields
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	member, err := s.faculty.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patchRequired(&member.IDNumber, req.IDNumber)
	patchRequired(&member.FName, req.FName)
	patchRequired(&member.LName, req.LName)
	patchRequired(&member.Email, req.Email)
	patchOptional(&member.Contact, req.Contact)
	patchOptional(&member.Department, req.Department)
	patchOptional(&member.Position, req.Position)
	patchOptional(&member.Gender, req.Gender)
	patchOptional(&member.Birthday, req.Birthday)
	patchOptional(&member.Address, req.Address)
	patchOptional(&member.EmploymentType, req.EmploymentType)
	patchOptional(&member.Education, req.Education)
	patchOptional(&member.DateHired, req.DateHired)
	if req.Archived != nil {
		member.Archived = *req.Archived
	}

	photo, err := s.photos.Resolve(member.Photo, PhotoInput{File: req.PhotoFile, URL: req.Photo, Remove: req.RemovePhoto}, models.FacultyPhotoDir)
	if err != nil {
		return nil, err
	}
	member.Photo = photo.Value

	if err := s.faculty.Update(ctx, member); err != nil {
		s.photos.Rollback(photo)
		return nil, err
	}
	s.photos.Commit(photo)
	return member, nil
}

func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	member, err := s.faculty.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.faculty.Delete(ctx, id); err != nil {
		return err
	}
	s.photos.Delete(member.Photo)
	return nil
}
