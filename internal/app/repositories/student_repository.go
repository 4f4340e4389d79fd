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

var studentColumns = []string{
	"id", "id_number", "student_id", "fname", "middle_name", "lname", "age", "gender",
	"to_char(birthday, 'YYYY-MM-DD')", "email", "contact", "phone", "location", "address",
	"course", "department", "year", "section", "school_year", "gpa::float8", "status",
	"to_char(join_date, 'YYYY-MM-DD')", "parent_name", "parent_relationship",
	"parent_contact", "parent_address", "photo", "archived", "created_at", "updated_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: newBuilder(),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.IDNumber, &s.StudentID, &s.FName, &s.MiddleName, &s.LName, &s.Age, &s.Gender,
		&s.Birthday, &s.Email, &s.Contact, &s.Phone, &s.Location, &s.Address,
		&s.Course, &s.Department, &s.Year, &s.Section, &s.SchoolYear, &s.GPA, &s.Status,
		&s.JoinDate, &s.ParentName, &s.ParentRelationship,
		&s.ParentContact, &s.ParentAddress, &s.Photo, &s.Archived, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// studentValues maps every writable column. Identifiers are included so an
// explicit overwrite on update is persisted.
func studentValues(s *models.Student) map[string]interface{} {
	return map[string]interface{}{
		"id_number":           s.IDNumber,
		"student_id":          s.StudentID,
		"fname":               s.FName,
		"middle_name":         s.MiddleName,
		"lname":               s.LName,
		"age":                 s.Age,
		"gender":              s.Gender,
		"birthday":            s.Birthday,
		"email":               s.Email,
		"contact":             s.Contact,
		"phone":               s.Phone,
		"location":            s.Location,
		"address":             s.Address,
		"course":              s.Course,
		"department":          s.Department,
		"year":                s.Year,
		"section":             s.Section,
		"school_year":         s.SchoolYear,
		"gpa":                 s.GPA,
		"status":              s.Status,
		"join_date":           s.JoinDate,
		"parent_name":         s.ParentName,
		"parent_relationship": s.ParentRelationship,
		"parent_contact":      s.ParentContact,
		"parent_address":      s.ParentAddress,
		"photo":               s.Photo,
		"archived":            s.Archived,
	}
}

// List returns every student, newest first
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetByID retrieves a student by primary key
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrStudentNotFound)
	}
	return s, nil
}

// FindByEmail returns the oldest student whose email matches any of emails
func (r *StudentRepository) FindByEmail(ctx context.Context, emails ...string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"email": emails}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find student query: %w", err)
	}

	s, err := scanStudent(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrStudentNotFound)
	}
	return s, nil
}

// Create inserts a student. Blank IDNumber and StudentID are allocated for
// year inside the insert transaction, id_number first.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student, year int) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := allocateBlank(ctx, tx, year,
			allocationTarget{kind: idalloc.KindStudentIDNumber, value: &s.IDNumber},
			allocationTarget{kind: idalloc.KindStudentNumber, value: &s.StudentID},
		); err != nil {
			return err
		}

		now := time.Now()
		values := studentValues(s)
		values["created_at"] = now
		values["updated_at"] = now

		sql, args, err := r.sb.Insert("students").
			SetMap(values).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create student query: %w", err)
		}

		return tx.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	})
	if err != nil {
		err = translateError(err, apperrors.ErrStudentNotFound)
		logger.Error().Err(err).Str("email", s.Email).Msg("Error creating student")
		return err
	}

	logger.Info().Int64("studentID", s.ID).Str("idNumber", s.IDNumber).Str("studentNumber", s.StudentID).Msg("Student created")
	return nil
}

// Update writes every column of s
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(studentValues(s)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&s.UpdatedAt); err != nil {
		err = translateError(err, apperrors.ErrStudentNotFound)
		logger.Error().Err(err).Int64("studentID", s.ID).Msg("Error updating student")
		return err
	}
	return nil
}

// Delete removes a student
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
