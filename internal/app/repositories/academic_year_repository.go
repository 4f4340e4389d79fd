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

var academicYearColumns = []string{
	"id", "year_name", "to_char(start_date, 'YYYY-MM-DD')", "to_char(end_date, 'YYYY-MM-DD')",
	"status", "created_at", "updated_at",
}

// AcademicYearFilter narrows an academic year listing
type AcademicYearFilter struct {
	Search string
	Status models.AcademicYearStatus
}

// AcademicYearRepository handles database operations for academic years
type AcademicYearRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewAcademicYearRepository creates a new academic year repository
func NewAcademicYearRepository(q db.Querier) *AcademicYearRepository {
	return &AcademicYearRepository{
		db: q,
		sb: newBuilder(),
	}
}

func scanAcademicYear(row pgx.Row) (*models.AcademicYear, error) {
	var y models.AcademicYear
	if err := row.Scan(&y.ID, &y.YearName, &y.StartDate, &y.EndDate, &y.Status, &y.CreatedAt, &y.UpdatedAt); err != nil {
		return nil, err
	}
	return &y, nil
}

// List returns academic years ordered by start date, latest first
func (r *AcademicYearRepository) List(ctx context.Context, filter AcademicYearFilter) ([]*models.AcademicYear, error) {
	q := r.sb.Select(academicYearColumns...).From("academic_years")
	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"year_name": "%" + filter.Search + "%"})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}

	sql, args, err := q.OrderBy("start_date DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list academic years query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list academic years query")
		return nil, fmt.Errorf("error listing academic years: %w", err)
	}
	defer rows.Close()

	years := make([]*models.AcademicYear, 0)
	for rows.Next() {
		y, err := scanAcademicYear(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning academic year row: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// GetByID retrieves an academic year by ID
func (r *AcademicYearRepository) GetByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	sql, args, err := r.sb.Select(academicYearColumns...).From("academic_years").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get academic year query: %w", err)
	}

	y, err := scanAcademicYear(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrAcademicYearNotFound)
	}
	return y, nil
}

// Create inserts an academic year
func (r *AcademicYearRepository) Create(ctx context.Context, y *models.AcademicYear) error {
	now := time.Now()
	sql, args, err := r.sb.Insert("academic_years").
		SetMap(map[string]interface{}{
			"year_name":  y.YearName,
			"start_date": y.StartDate,
			"end_date":   y.EndDate,
			"status":     y.Status,
			"created_at": now,
			"updated_at": now,
		}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create academic year query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&y.ID, &y.CreatedAt, &y.UpdatedAt); err != nil {
		err = translateError(err, apperrors.ErrAcademicYearNotFound)
		logger.Error().Err(err).Str("yearName", y.YearName).Msg("Error creating academic year")
		return err
	}
	return nil
}

// Update writes every column of y
func (r *AcademicYearRepository) Update(ctx context.Context, y *models.AcademicYear) error {
	sql, args, err := r.sb.Update("academic_years").
		Set("year_name", y.YearName).
		Set("start_date", y.StartDate).
		Set("end_date", y.EndDate).
		Set("status", y.Status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": y.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update academic year query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&y.UpdatedAt); err != nil {
		return translateError(err, apperrors.ErrAcademicYearNotFound)
	}
	return nil
}

// Delete hard-deletes an academic year
func (r *AcademicYearRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM academic_years WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("academicYearID", id).Msg("Error deleting academic year")
		return fmt.Errorf("error deleting academic year: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicYearNotFound
	}
	return nil
}
