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

var contactColumns = []string{"id", "name", "email", "phone", "notes", "created_at", "updated_at"}

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewContactRepository creates a new contact repository
func NewContactRepository(q db.Querier) *ContactRepository {
	return &ContactRepository{
		db: q,
		sb: newBuilder(),
	}
}

func scanContact(row pgx.Row) (*models.Contact, error) {
	var c models.Contact
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns every contact, newest first
func (r *ContactRepository) List(ctx context.Context) ([]*models.Contact, error) {
	sql, args, err := r.sb.Select(contactColumns...).From("contacts").OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list contacts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list contacts query")
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// GetByID retrieves a contact by ID
func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	sql, args, err := r.sb.Select(contactColumns...).From("contacts").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get contact query: %w", err)
	}

	c, err := scanContact(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err, apperrors.ErrContactNotFound)
	}
	return c, nil
}

// Create inserts a contact
func (r *ContactRepository) Create(ctx context.Context, c *models.Contact) error {
	now := time.Now()
	sql, args, err := r.sb.Insert("contacts").
		Columns("name", "email", "phone", "notes", "created_at", "updated_at").
		Values(c.Name, c.Email, c.Phone, c.Notes, now, now).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create contact query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("email", c.Email).Msg("Error creating contact")
		return translateError(err, apperrors.ErrContactNotFound)
	}
	return nil
}

// Update writes every column of c
func (r *ContactRepository) Update(ctx context.Context, c *models.Contact) error {
	sql, args, err := r.sb.Update("contacts").
		Set("name", c.Name).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("notes", c.Notes).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update contact query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.UpdatedAt); err != nil {
		return translateError(err, apperrors.ErrContactNotFound)
	}
	return nil
}

// Delete removes a contact
func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContactNotFound
	}
	return nil
}
