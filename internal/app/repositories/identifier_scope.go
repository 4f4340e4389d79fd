package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/db"
	"github.com/yigit/registrar/internal/pkg/idalloc"
)

type identifierColumn struct {
	table  string
	column string
}

var identifierColumns = map[idalloc.Kind]identifierColumn{
	idalloc.KindStudentIDNumber: {table: "students", column: "id_number"},
	idalloc.KindStudentNumber:   {table: "students", column: "student_id"},
	idalloc.KindFacultyIDNumber: {table: "faculty", column: "id_number"},
}

// txScope is an idalloc.Scope bound to one transaction. Locks are
// transaction-level advisory locks, released on commit or rollback.
type txScope struct {
	q  db.Querier
	sb squirrel.StatementBuilderType
}

func newTxScope(tx pgx.Tx) *txScope {
	return &txScope{q: tx, sb: newBuilder()}
}

// Lock serializes allocations of the same kind and year across connections
func (s *txScope) Lock(ctx context.Context, key idalloc.Key) error {
	if _, err := s.q.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key.String()); err != nil {
		return fmt.Errorf("advisory lock %s: %w", key, err)
	}
	return nil
}

// Latest returns the identifier of the newest row, by primary key, starting with prefix
func (s *txScope) Latest(ctx context.Context, key idalloc.Key, prefix string) (string, error) {
	sql, args, err := s.latestQuery(key.Kind, prefix)
	if err != nil {
		return "", err
	}

	var latest *string
	err = s.q.QueryRow(ctx, sql, args...).Scan(&latest)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && latest == nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return *latest, nil
}

func (s *txScope) latestQuery(kind idalloc.Kind, prefix string) (string, []interface{}, error) {
	col, ok := identifierColumns[kind]
	if !ok {
		return "", nil, fmt.Errorf("no column for identifier kind %q", kind)
	}

	sql, args, err := s.sb.Select(col.column).
		From(col.table).
		Where(squirrel.Like{col.column: prefix + "%"}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build latest identifier query: %w", err)
	}
	return sql, args, nil
}

// allocateBlank fills every empty target, in the order given, within tx.
// Callers must pass targets in a fixed kind order so concurrent
// transactions acquire advisory locks in the same sequence.
func allocateBlank(ctx context.Context, tx pgx.Tx, year int, targets ...allocationTarget) error {
	scope := newTxScope(tx)
	for _, t := range targets {
		if *t.value != "" {
			continue
		}
		id, err := idalloc.Allocate(ctx, scope, t.kind, year)
		if err != nil {
			return err
		}
		*t.value = id
	}
	return nil
}

type allocationTarget struct {
	kind  idalloc.Kind
	value *string
}
