package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/idalloc"
)

type fakeRow struct {
	value *string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(**string)) = r.value
	return nil
}

// fakeQuerier records the statements a txScope issues
type fakeQuerier struct {
	row     fakeRow
	execErr error
	sql     []string
	args    [][]any
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql = append(q.sql, sql)
	q.args = append(q.args, args)
	return pgconn.CommandTag{}, q.execErr
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not used")
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = append(q.sql, sql)
	q.args = append(q.args, args)
	return q.row
}

func newFakeScope(q *fakeQuerier) *txScope {
	return &txScope{q: q, sb: newBuilder()}
}

func strPtr(s string) *string { return &s }

func TestLatestQuery(t *testing.T) {
	scope := newFakeScope(&fakeQuerier{})

	cases := []struct {
		kind   idalloc.Kind
		prefix string
		sql    string
	}{
		{idalloc.KindStudentIDNumber, "2025-", "SELECT id_number FROM students WHERE id_number LIKE $1 ORDER BY id DESC LIMIT 1"},
		{idalloc.KindStudentNumber, "2025", "SELECT student_id FROM students WHERE student_id LIKE $1 ORDER BY id DESC LIMIT 1"},
		{idalloc.KindFacultyIDNumber, "2024-", "SELECT id_number FROM faculty WHERE id_number LIKE $1 ORDER BY id DESC LIMIT 1"},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			sql, args, err := scope.latestQuery(tc.kind, tc.prefix)
			require.NoError(t, err)
			assert.Equal(t, tc.sql, sql)
			assert.Equal(t, []interface{}{tc.prefix + "%"}, args)
		})
	}

	_, _, err := scope.latestQuery(idalloc.Kind("locker_code"), "2025-")
	assert.Error(t, err)
}

func TestLatest(t *testing.T) {
	key := idalloc.Key{Kind: idalloc.KindStudentIDNumber, Year: 2025}

	q := &fakeQuerier{row: fakeRow{value: strPtr("2025-007")}}
	latest, err := newFakeScope(q).Latest(context.Background(), key, "2025-")
	require.NoError(t, err)
	assert.Equal(t, "2025-007", latest)
	assert.Equal(t, []any{"2025-%"}, q.args[0])

	// no rows and a NULL column both mean the year has no identifiers yet
	for _, row := range []fakeRow{{err: pgx.ErrNoRows}, {value: nil}} {
		latest, err = newFakeScope(&fakeQuerier{row: row}).Latest(context.Background(), key, "2025-")
		require.NoError(t, err)
		assert.Empty(t, latest)
	}

	boom := errors.New("connection reset")
	_, err = newFakeScope(&fakeQuerier{row: fakeRow{err: boom}}).Latest(context.Background(), key, "2025-")
	assert.ErrorIs(t, err, boom)
}

func TestLock(t *testing.T) {
	q := &fakeQuerier{}
	key := idalloc.Key{Kind: idalloc.KindStudentNumber, Year: 2025}

	require.NoError(t, newFakeScope(q).Lock(context.Background(), key))
	assert.Equal(t, []string{"SELECT pg_advisory_xact_lock(hashtext($1))"}, q.sql)
	assert.Equal(t, []any{"student_number:2025"}, q.args[0])

	q = &fakeQuerier{execErr: errors.New("canceled")}
	assert.Error(t, newFakeScope(q).Lock(context.Background(), key))
}

func TestTranslateError(t *testing.T) {
	notFound := apperrors.ErrStudentNotFound

	assert.Nil(t, translateError(nil, notFound))
	assert.Equal(t, notFound, translateError(pgx.ErrNoRows, notFound))

	err := translateError(&pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}, notFound)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	err = translateError(&pgconn.PgError{Code: "23505", ConstraintName: "unknown_key"}, notFound)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	err = translateError(&pgconn.PgError{Code: "23503"}, notFound)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = translateError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "22001"}), notFound)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "value too long")

	err = translateError(&pgconn.PgError{Code: "22001", ColumnName: "section"}, notFound)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "section")

	plain := errors.New("disk full")
	assert.Equal(t, plain, translateError(plain, notFound))
}
