package services

import (
	"context"
	"fmt"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
)

// DepartmentService handles department and course operations
type DepartmentService interface {
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartment(ctx context.Context, id int64) (*models.Department, error)
	CreateDepartment(ctx context.Context, req *dto.DepartmentRequest) (*models.Department, error)
	UpdateDepartment(ctx context.Context, id int64, req *dto.DepartmentRequest) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error

	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type departmentServiceImpl struct {
	departments DepartmentStore
	courses     CourseStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departments DepartmentStore, courses CourseStore) DepartmentService {
	return &departmentServiceImpl{
		departments: departments,
		courses:     courses,
	}
}

func (s *departmentServiceImpl) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departments.GetAll(ctx)
}

// GetDepartment returns a department together with its courses
func (s *departmentServiceImpl) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.GetByDepartmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading department courses: %w", err)
	}
	department.Courses = courses
	return department, nil
}

func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, req *dto.DepartmentRequest) (*models.Department, error) {
	if err := requireFields(map[string]*string{"name": req.Name}); err != nil {
		return nil, err
	}

	department := &models.Department{Name: valueOrEmpty(req.Name)}
	applyDepartment(department, req)
	if err := s.departments.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, id int64, req *dto.DepartmentRequest) (*models.Department, error) {
	department, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyDepartment(department, req)
	if err := s.departments.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func applyDepartment(d *models.Department, req *dto.DepartmentRequest) {
	patchRequired(&d.Name, req.Name)
	patchOptional(&d.Code, req.Code)
	patchOptional(&d.Head, req.Head)
	patchOptional(&d.Description, req.Description)
	patchOptional(&d.OfficeLocation, req.OfficeLocation)
	patchOptional(&d.ContactEmail, req.ContactEmail)
	patchOptional(&d.ContactNumber, req.ContactNumber)
	if req.Archived != nil {
		d.Archived = *req.Archived
	}
}

func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departments.Delete(ctx, id)
}

func (s *departmentServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

func (s *departmentServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

func (s *departmentServiceImpl) CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	if err := requireFields(map[string]*string{"name": req.Name}); err != nil {
		return nil, err
	}

	course := &models.Course{Name: valueOrEmpty(req.Name)}
	if err := s.applyCourse(ctx, course, req); err != nil {
		return nil, err
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *departmentServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyCourse(ctx, course, req); err != nil {
		return nil, err
	}
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// applyCourse copies the supplied fields, checking that a referenced
// department exists.
func (s *departmentServiceImpl) applyCourse(ctx context.Context, c *models.Course, req *dto.CourseRequest) error {
	if req.DepartmentID != nil {
		exists, err := s.departments.Exists(ctx, *req.DepartmentID)
		if err != nil {
			return err
		}
		if !exists {
			return validationError("department_id", "department does not exist")
		}
		id := *req.DepartmentID
		c.DepartmentID = &id
	}

	patchRequired(&c.Name, req.Name)
	patchOptional(&c.Code, req.Code)
	patchOptional(&c.Description, req.Description)
	patchOptional(&c.Duration, req.Duration)
	if req.Archived != nil {
		c.Archived = *req.Archived
	}
	return nil
}

func (s *departmentServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}
