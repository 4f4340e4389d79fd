// Package idalloc allocates human-readable, year-scoped sequential identifiers
// such as "2025-001" or "202500001".
package idalloc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrStoreUnavailable is returned when the backing store could not be locked or read.
var ErrStoreUnavailable = errors.New("identifier store unavailable")

// Kind names the record field an identifier belongs to.
type Kind string

const (
	// KindStudentIDNumber is students.id_number (YYYY-###)
	KindStudentIDNumber Kind = "student_id_number"
	// KindStudentNumber is students.student_id (YYYY#####)
	KindStudentNumber Kind = "student_number"
	// KindFacultyIDNumber is faculty.id_number (YYYY-###)
	KindFacultyIDNumber Kind = "faculty_id_number"
)

// Format describes how the sequence is attached to the year.
type Format struct {
	Separator string
	Width     int
}

var (
	// FormatIDNumber renders "2025-001".
	FormatIDNumber = Format{Separator: "-", Width: 3}
	// FormatStudentNumber renders "202500001".
	FormatStudentNumber = Format{Separator: "", Width: 5}
)

// Format returns the rendering used for the kind.
func (k Kind) Format() Format {
	if k == KindStudentNumber {
		return FormatStudentNumber
	}
	return FormatIDNumber
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindStudentIDNumber, KindStudentNumber, KindFacultyIDNumber:
		return true
	}
	return false
}

// Prefix is the part of every identifier of this format issued in year.
func (f Format) Prefix(year int) string {
	return strconv.Itoa(year) + f.Separator
}

// Render formats year and seq. Width is a minimum; wider sequences are not truncated.
func (f Format) Render(year, seq int) string {
	return fmt.Sprintf("%s%0*d", f.Prefix(year), f.Width, seq)
}

// Sequence extracts the sequence number from id. It returns false when id was
// not issued in year or its suffix is not a positive run of digits.
func (f Format) Sequence(id string, year int) (int, bool) {
	suffix, ok := strings.CutPrefix(id, f.Prefix(year))
	if !ok || suffix == "" || suffix[0] < '0' || suffix[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Next computes the identifier following latest. An empty or malformed latest
// restarts the sequence at 1.
func (f Format) Next(latest string, year int) string {
	seq := 1
	if n, ok := f.Sequence(latest, year); ok {
		seq = n + 1
	}
	return f.Render(year, seq)
}

// Key scopes uniqueness of a sequence.
type Key struct {
	Kind Kind
	Year int
}

// String is the stable lock name of the key, e.g. "student_number:2025".
func (k Key) String() string {
	return string(k.Kind) + ":" + strconv.Itoa(k.Year)
}

// Scope is the view of the store an allocation runs in. Lock blocks until the
// key is free and keeps it held until the scope (usually a transaction) ends,
// so the record carrying the new identifier must be written inside the same
// scope. Latest returns the most recently inserted identifier of the key's
// kind that starts with prefix, or "" when there is none.
type Scope interface {
	Lock(ctx context.Context, key Key) error
	Latest(ctx context.Context, key Key, prefix string) (string, error)
}

// Allocate returns the next identifier of kind for year. The result is unique
// against every record visible to scope, and stays unique for as long as the
// scope holds its lock.
func Allocate(ctx context.Context, scope Scope, kind Kind, year int) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown identifier kind %q", kind)
	}
	key := Key{Kind: kind, Year: year}
	format := kind.Format()

	if err := scope.Lock(ctx, key); err != nil {
		return "", fmt.Errorf("%w: lock %s: %v", ErrStoreUnavailable, key, err)
	}

	latest, err := scope.Latest(ctx, key, format.Prefix(year))
	if err != nil {
		return "", fmt.Errorf("%w: read latest %s: %v", ErrStoreUnavailable, key, err)
	}

	return format.Next(latest, year), nil
}
