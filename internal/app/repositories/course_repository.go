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

var courseColumns = []string{
	"id", "name", "code", "description", "duration", "department_id", "archived", "created_at", "updated_at",
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(q db.Querier) *CourseRepository {
	return &CourseRepository{
		db: q,
		sb: newBuilder(),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	if err := row.Scan(
		&c.ID, &c.Name, &c.Code, &c.Description, &c.Duration, &c.DepartmentID, &c.Archived, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func courseValues(c *models.Course) map[string]interface{} {
	return map[string]interface{}{
		"name":          c.Name,
		"code":          c.Code,
		"description":   c.Description,
		"duration":      c.Duration,
		"department_id": c.DepartmentID,
		"archived":      c.Archived,
	}
}

func (r *CourseRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Course, error) {
	q := r.sb.Select(courseColumns...).From("courses").OrderBy("name", "id")
	if where != nil {
		q = q.Where(where)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetAll retrieves all courses ordered by name
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.list(ctx, nil)
}

// GetByDepartmentID retrieves the courses of one department
func (r *CourseRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	return r.list(ctx, squirrel.Eq{"department_id": departmentID})
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).From("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrCourseNotFound)
	}
	return c, nil
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	now := time.Now()
	values := courseValues(c)
	values["created_at"] = now
	values["updated_at"] = now

	sql, args, err := r.sb.Insert("courses").SetMap(values).Suffix("RETURNING id, created_at, updated_at").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("name", c.Name).Msg("Error creating course")
		return translateError(err, apperrors.ErrCourseNotFound)
	}
	return nil
}

// Update writes every column of c
func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(courseValues(c)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.UpdatedAt); err != nil {
		return translateError(err, apperrors.ErrCourseNotFound)
	}
	return nil
}

// Delete deletes a course
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
