package services

import (
	"context"
	"time"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// AcademicYearService manages academic years
type AcademicYearService interface {
	ListAcademicYears(ctx context.Context, filter dto.AcademicYearFilter) ([]*models.AcademicYear, error)
	GetAcademicYear(ctx context.Context, id int64) (*models.AcademicYear, error)
	CreateAcademicYear(ctx context.Context, req *dto.AcademicYearRequest) (*models.AcademicYear, error)
	UpdateAcademicYear(ctx context.Context, id int64, req *dto.AcademicYearRequest) (*models.AcademicYear, error)
	// DeleteAcademicYear hard-deletes when force is set and returns nil.
	// Otherwise the year is archived and returned.
	DeleteAcademicYear(ctx context.Context, id int64, force bool) (*models.AcademicYear, error)
}

type academicYearServiceImpl struct {
	years AcademicYearStore
}

// NewAcademicYearService creates a new AcademicYearService
func NewAcademicYearService(years AcademicYearStore) AcademicYearService {
	return &academicYearServiceImpl{years: years}
}

func (s *academicYearServiceImpl) ListAcademicYears(ctx context.Context, filter dto.AcademicYearFilter) ([]*models.AcademicYear, error) {
	return s.years.List(ctx, repositories.AcademicYearFilter{
		Search: filter.Search,
		Status: models.AcademicYearStatus(filter.Status),
	})
}

func (s *academicYearServiceImpl) GetAcademicYear(ctx context.Context, id int64) (*models.AcademicYear, error) {
	return s.years.GetByID(ctx, id)
}

func (s *academicYearServiceImpl) CreateAcademicYear(ctx context.Context, req *dto.AcademicYearRequest) (*models.AcademicYear, error) {
	if err := requireFields(map[string]*string{
		"year_name":  req.YearName,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	}); err != nil {
		return nil, err
	}

	year := &models.AcademicYear{Status: models.AcademicYearActive}
	applyAcademicYear(year, req)
	if err := validateRange(year); err != nil {
		return nil, err
	}
	if err := s.years.Create(ctx, year); err != nil {
		return nil, err
	}
	return year, nil
}

func (s *academicYearServiceImpl) UpdateAcademicYear(ctx context.Context, id int64, req *dto.AcademicYearRequest) (*models.AcademicYear, error) {
	year, err := s.years.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyAcademicYear(year, req)
	if err := validateRange(year); err != nil {
		return nil, err
	}
	if err := s.years.Update(ctx, year); err != nil {
		return nil, err
	}
	return year, nil
}

func (s *academicYearServiceImpl) DeleteAcademicYear(ctx context.Context, id int64, force bool) (*models.AcademicYear, error) {
	if force {
		return nil, s.years.Delete(ctx, id)
	}

	year, err := s.years.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	year.Status = models.AcademicYearArchived
	if err := s.years.Update(ctx, year); err != nil {
		return nil, err
	}
	return year, nil
}

func applyAcademicYear(y *models.AcademicYear, req *dto.AcademicYearRequest) {
	patchRequired(&y.YearName, req.YearName)
	patchRequired(&y.StartDate, req.StartDate)
	patchRequired(&y.EndDate, req.EndDate)
	if req.Status != nil && *req.Status != "" {
		y.Status = *req.Status
	}
}

// validateRange requires end_date strictly after start_date
func validateRange(y *models.AcademicYear) error {
	start, err := time.Parse(validation.DateLayout, y.StartDate)
	if err != nil {
		return validationError("start_date", "start_date must be a date in YYYY-MM-DD format")
	}
	end, err := time.Parse(validation.DateLayout, y.EndDate)
	if err != nil {
		return validationError("end_date", "end_date must be a date in YYYY-MM-DD format")
	}
	if !end.After(start) {
		return validationError("end_date", "end_date must be after start_date")
	}
	return nil
}
