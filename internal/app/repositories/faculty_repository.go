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
	"github.com/yigit/registrar/internal/pkg/idalloc"
	"github.com/yigit/registrar/internal/pkg/logger"
)

var facultyColumns = []string{
	"id", "id_number", "fname", "lname", "email", "contact", "department", "position",
	"gender", "to_char(birthday, 'YYYY-MM-DD')", "address", "employment_type", "education",
	"photo", "to_char(date_hired, 'YYYY-MM-DD')", "archived", "created_at", "updated_at",
}

// FacultyRepository handles database operations for faculty members
type FacultyRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(database *db.PostgresDB) *FacultyRepository {
	return &FacultyRepository{
		db: database,
		sb: newBuilder(),
	}
}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var f models.Faculty
	err := row.Scan(
		&f.ID, &f.IDNumber, &f.FName, &f.LName, &f.Email, &f.Contact, &f.Department, &f.Position,
		&f.Gender, &f.Birthday, &f.Address, &f.EmploymentType, &f.Education,
		&f.Photo, &f.DateHired, &f.Archived, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func facultyValues(f *models.Faculty) map[string]interface{} {
	return map[string]interface{}{
		"id_number":       f.IDNumber,
		"fname":           f.FName,
		"lname":           f.LName,
		"email":           f.Email,
		"contact":         f.Contact,
		"department":      f.Department,
		"position":        f.Position,
		"gender":          f.Gender,
		"birthday":        f.Birthday,
		"address":         f.Address,
		"employment_type": f.EmploymentType,
		"education":       f.Education,
		"photo":           f.Photo,
		"date_hired":      f.DateHired,
		"archived":        f.Archived,
	}
}

// List returns every faculty member, newest first
func (r *FacultyRepository) List(ctx context.Context) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list faculty SQL")
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, fmt.Errorf("error listing faculty: %w", err)
	}
	defer rows.Close()

	members := make([]*models.Faculty, 0)
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		members = append(members, f)
	}
	return members, rows.Err()
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	f, err := scanFaculty(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrFacultyNotFound)
	}
	return f, nil
}

// Create inserts a faculty member, allocating a blank IDNumber for year in
// the same transaction.
func (r *FacultyRepository) Create(ctx context.Context, f *models.Faculty, year int) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := allocateBlank(ctx, tx, year,
			allocationTarget{kind: idalloc.KindFacultyIDNumber, value: &f.IDNumber},
		); err != nil {
			return err
		}

		now := time.Now()
		values := facultyValues(f)
		values["created_at"] = now
		values["updated_at"] = now

		sql, args, err := r.sb.Insert("faculty").
			SetMap(values).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create faculty query: %w", err)
		}

		return tx.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	})
	if err != nil {
		err = translateError(err, apperrors.ErrFacultyNotFound)
		logger.Error().Err(err).Str("email", f.Email).Msg("Error creating faculty member")
		return err
	}

	logger.Info().Int64("facultyID", f.ID).Str("idNumber", f.IDNumber).Msg("Faculty member created")
	return nil
}

// Update writes every column of f
func (r *FacultyRepository) Update(ctx context.Context, f *models.Faculty) error {
	sql, args, err := r.sb.Update("faculty").
		SetMap(facultyValues(f)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": f.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&f.UpdatedAt); err != nil {
		err = translateError(err, apperrors.ErrFacultyNotFound)
		logger.Error().Err(err).Int64("facultyID", f.ID).Msg("Error updating faculty member")
		return err
	}
	return nil
}

// Delete removes a faculty member
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculty").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error deleting faculty member")
		return fmt.Errorf("error deleting faculty member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}
