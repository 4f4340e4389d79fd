package repositories

import (
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/db"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/dberrors"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	FacultyRepository      *FacultyRepository
	DepartmentRepository   *DepartmentRepository
	CourseRepository       *CourseRepository
	AcademicYearRepository *AcademicYearRepository
	ContactRepository      *ContactRepository
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(database),
		FacultyRepository:      NewFacultyRepository(database),
		DepartmentRepository:   NewDepartmentRepository(database.Pool),
		CourseRepository:       NewCourseRepository(database.Pool),
		AcademicYearRepository: NewAcademicYearRepository(database.Pool),
		ContactRepository:      NewContactRepository(database.Pool),
		UserRepository:         NewUserRepository(database.Pool),
		TokenRepository:        NewTokenRepository(database.Pool),
	}
}

func newBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// constraintErrors maps unique constraints onto application errors
var constraintErrors = map[string]error{
	"students_email_key":           apperrors.ErrEmailAlreadyExists,
	"students_id_number_key":       apperrors.ErrIdentifierExists,
	"students_student_id_key":      apperrors.ErrIdentifierExists,
	"faculty_email_key":            apperrors.ErrEmailAlreadyExists,
	"faculty_id_number_key":        apperrors.ErrIdentifierExists,
	"users_email_key":              apperrors.ErrEmailAlreadyExists,
	"academic_years_year_name_key": apperrors.ErrAcademicYearExists,
	"refresh_tokens_token_key":     apperrors.ErrTokenInvalid,
}

// translateError turns driver errors into application errors. notFound is
// returned for pgx.ErrNoRows.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	if name, ok := dberrors.DuplicateConstraint(err); ok {
		if mapped, ok := constraintErrors[name]; ok {
			return fmt.Errorf("%w: %s", mapped, name)
		}
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, name)
	}
	if dberrors.IsForeignKeyError(err) {
		return fmt.Errorf("%w: referenced record does not exist", apperrors.ErrValidationFailed)
	}
	if column, ok := dberrors.IsValueTooLong(err); ok {
		if column == "" {
			return fmt.Errorf("%w: value too long", apperrors.ErrValidationFailed)
		}
		return fmt.Errorf("%w: value too long for %s", apperrors.ErrValidationFailed, column)
	}
	return err
}
