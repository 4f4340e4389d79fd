package services

import (
	"context"

	"github.com/yigit/registrar/internal/app/models/dto"
)

// DashboardService builds the dashboard overview
type DashboardService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardServiceImpl struct {
	students StudentStore
	faculty  FacultyStore
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(students StudentStore, faculty FacultyStore) DashboardService {
	return &dashboardServiceImpl{students: students, faculty: faculty}
}

func (s *dashboardServiceImpl) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	faculty, err := s.faculty.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{Students: students, Faculty: faculty}, nil
}
