package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/db"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

var departmentColumns = []string{
	"id", "name", "code", "head", "description", "office_location",
	"contact_email", "contact_number", "archived", "created_at", "updated_at",
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(q db.Querier) *DepartmentRepository {
	return &DepartmentRepository{
		db: q,
		sb: newBuilder(),
	}
}

func scanDepartment(row pgx.Row) (*models.Department, error) {
	var d models.Department
	if err := row.Scan(
		&d.ID, &d.Name, &d.Code, &d.Head, &d.Description, &d.OfficeLocation,
		&d.ContactEmail, &d.ContactNumber, &d.Archived, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func departmentValues(d *models.Department) map[string]interface{} {
	return map[string]interface{}{
		"name":            d.Name,
		"code":            d.Code,
		"head":            d.Head,
		"description":     d.Description,
		"office_location": d.OfficeLocation,
		"contact_email":   d.ContactEmail,
		"contact_number":  d.ContactNumber,
		"archived":        d.Archived,
	}
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	sql, args, err := r.sb.Select(departmentColumns...).From("departments").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list departments query")
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.sb.Select(departmentColumns...).From("departments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	d, err := scanDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrDepartmentNotFound)
	}
	return d, nil
}

// Exists reports whether a department with id exists
func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return exists, nil
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, d *models.Department) error {
	now := time.Now()
	values := departmentValues(d)
	values["created_at"] = now
	values["updated_at"] = now

	sql, args, err := r.sb.Insert("departments").SetMap(values).Suffix("RETURNING id, created_at, updated_at").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("name", d.Name).Msg("Error creating department")
		return translateError(err, apperrors.ErrDepartmentNotFound)
	}
	return nil
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, d *models.Department) error {
	sql, args, err := r.sb.Update("departments").
		SetMap(departmentValues(d)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": d.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update department query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&d.UpdatedAt); err != nil {
		return translateError(err, apperrors.ErrDepartmentNotFound)
	}
	return nil
}

// Delete deletes a department. Its courses keep existing with a NULL department_id.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error deleting department")
		return fmt.Errorf("error deleting department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}
