package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/idalloc"
)

// recordScope serves idalloc.Scope from an in-memory column. The caller
// holds the store mutex for the whole insert, so Lock has nothing to do.
type recordScope struct {
	values []string
}

func (s recordScope) Lock(context.Context, idalloc.Key) error { return nil }

func (s recordScope) Latest(_ context.Context, _ idalloc.Key, prefix string) (string, error) {
	for i := len(s.values) - 1; i >= 0; i-- {
		if strings.HasPrefix(s.values[i], prefix) {
			return s.values[i], nil
		}
	}
	return "", nil
}

type fakeStudentStore struct {
	mu        sync.Mutex
	nextID    int64
	rows      []*models.Student
	years     []int
	createErr error
	updateErr error
}

func (f *fakeStudentStore) List(context.Context) ([]*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Student, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		cp := *f.rows[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.rows {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) FindByEmail(_ context.Context, emails ...string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.rows {
		for _, e := range emails {
			if s.Email == e {
				cp := *s
				return &cp, nil
			}
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) column(get func(*models.Student) string) recordScope {
	values := make([]string, 0, len(f.rows))
	for _, s := range f.rows {
		values = append(values, get(s))
	}
	return recordScope{values: values}
}

func (f *fakeStudentStore) Create(ctx context.Context, s *models.Student, year int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.years = append(f.years, year)
	if f.createErr != nil {
		return f.createErr
	}

	if s.IDNumber == "" {
		id, err := idalloc.Allocate(ctx, f.column(func(s *models.Student) string { return s.IDNumber }), idalloc.KindStudentIDNumber, year)
		if err != nil {
			return err
		}
		s.IDNumber = id
	}
	if s.StudentID == "" {
		id, err := idalloc.Allocate(ctx, f.column(func(s *models.Student) string { return s.StudentID }), idalloc.KindStudentNumber, year)
		if err != nil {
			return err
		}
		s.StudentID = id
	}
	for _, existing := range f.rows {
		if existing.Email == s.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	f.nextID++
	s.ID = f.nextID
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeStudentStore) Update(_ context.Context, s *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, existing := range f.rows {
		if existing.ID == s.ID {
			cp := *s
			f.rows[i] = &cp
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.rows {
		if s.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

type fakeFacultyStore struct {
	mu     sync.Mutex
	nextID int64
	rows   []*models.Faculty
}

func (f *fakeFacultyStore) List(context.Context) ([]*models.Faculty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Faculty, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		cp := *f.rows[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeFacultyStore) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.rows {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (f *fakeFacultyStore) Create(ctx context.Context, m *models.Faculty, year int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.IDNumber == "" {
		values := make([]string, 0, len(f.rows))
		for _, r := range f.rows {
			values = append(values, r.IDNumber)
		}
		id, err := idalloc.Allocate(ctx, recordScope{values: values}, idalloc.KindFacultyIDNumber, year)
		if err != nil {
			return err
		}
		m.IDNumber = id
	}
	f.nextID++
	m.ID = f.nextID
	cp := *m
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeFacultyStore) Update(_ context.Context, m *models.Faculty) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.ID == m.ID {
			cp := *m
			f.rows[i] = &cp
			return nil
		}
	}
	return apperrors.ErrFacultyNotFound
}

func (f *fakeFacultyStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrFacultyNotFound
}

type fakeDepartmentStore struct {
	rows map[int64]*models.Department
	next int64
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{rows: make(map[int64]*models.Department)}
}

func (f *fakeDepartmentStore) GetAll(context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(f.rows))
	for _, d := range f.rows {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDepartmentStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeDepartmentStore) Create(_ context.Context, d *models.Department) error {
	f.next++
	d.ID = f.next
	cp := *d
	f.rows[d.ID] = &cp
	return nil
}

func (f *fakeDepartmentStore) Update(_ context.Context, d *models.Department) error {
	if _, ok := f.rows[d.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	cp := *d
	f.rows[d.ID] = &cp
	return nil
}

func (f *fakeDepartmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeCourseStore struct {
	rows map[int64]*models.Course
	next int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{rows: make(map[int64]*models.Course)}
}

func (f *fakeCourseStore) GetAll(context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(f.rows))
	for _, c := range f.rows {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCourseStore) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	all, _ := f.GetAll(ctx)
	out := make([]*models.Course, 0)
	for _, c := range all {
		if c.DepartmentID != nil && *c.DepartmentID == departmentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCourseStore) Create(_ context.Context, c *models.Course) error {
	f.next++
	c.ID = f.next
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCourseStore) Update(_ context.Context, c *models.Course) error {
	if _, ok := f.rows[c.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeAcademicYearStore struct {
	rows       map[int64]*models.AcademicYear
	next       int64
	lastFilter repositories.AcademicYearFilter
}

func newFakeAcademicYearStore() *fakeAcademicYearStore {
	return &fakeAcademicYearStore{rows: make(map[int64]*models.AcademicYear)}
}

func (f *fakeAcademicYearStore) List(_ context.Context, filter repositories.AcademicYearFilter) ([]*models.AcademicYear, error) {
	f.lastFilter = filter
	out := make([]*models.AcademicYear, 0, len(f.rows))
	for _, y := range f.rows {
		if filter.Status != "" && y.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(y.YearName), strings.ToLower(filter.Search)) {
			continue
		}
		cp := *y
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate > out[j].StartDate })
	return out, nil
}

func (f *fakeAcademicYearStore) GetByID(_ context.Context, id int64) (*models.AcademicYear, error) {
	y, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrAcademicYearNotFound
	}
	cp := *y
	return &cp, nil
}

func (f *fakeAcademicYearStore) Create(_ context.Context, y *models.AcademicYear) error {
	for _, existing := range f.rows {
		if existing.YearName == y.YearName {
			return apperrors.ErrAcademicYearExists
		}
	}
	f.next++
	y.ID = f.next
	cp := *y
	f.rows[y.ID] = &cp
	return nil
}

func (f *fakeAcademicYearStore) Update(_ context.Context, y *models.AcademicYear) error {
	if _, ok := f.rows[y.ID]; !ok {
		return apperrors.ErrAcademicYearNotFound
	}
	cp := *y
	f.rows[y.ID] = &cp
	return nil
}

func (f *fakeAcademicYearStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.ErrAcademicYearNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeContactStore struct {
	rows map[int64]*models.Contact
	next int64
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{rows: make(map[int64]*models.Contact)}
}

func (f *fakeContactStore) List(context.Context) ([]*models.Contact, error) {
	out := make([]*models.Contact, 0, len(f.rows))
	for _, c := range f.rows {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeContactStore) GetByID(_ context.Context, id int64) (*models.Contact, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrContactNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeContactStore) Create(_ context.Context, c *models.Contact) error {
	f.next++
	c.ID = f.next
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeContactStore) Update(_ context.Context, c *models.Contact) error {
	if _, ok := f.rows[c.ID]; !ok {
		return apperrors.ErrContactNotFound
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeContactStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.ErrContactNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeUserStore struct {
	rows map[int64]*models.User
	next int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{rows: make(map[int64]*models.User)}
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string, exceptID int64) (bool, error) {
	for _, u := range f.rows {
		if u.Email == email && u.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	f.next++
	u.ID = f.next
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, u *models.User) error {
	if _, ok := f.rows[u.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

type fakeToken struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]*fakeToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*fakeToken)}
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, expiry time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = &fakeToken{userID: userID, expiry: expiry}
	return nil
}

func (f *fakeTokenStore) GetTokenByValue(_ context.Context, token string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	switch {
	case !ok:
		return 0, apperrors.ErrTokenNotFound
	case t.revoked:
		return 0, apperrors.ErrTokenRevoked
	case t.expiry.Before(time.Now()):
		return 0, apperrors.ErrTokenExpired
	}
	return t.userID, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	if !ok || t.revoked {
		return apperrors.ErrTokenRevoked
	}
	t.revoked = true
	return nil
}

func (f *fakeTokenStore) RevokeAllUserTokens(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tokens {
		if t.userID == userID {
			t.revoked = true
		}
	}
	return nil
}

// fakeFileStorage records saved and deleted URLs
type fakeFileStorage struct {
	saved   []string
	deleted []string
	seq     int
}

const fakeStorageBase = "http://localhost:8080/uploads/"

func (f *fakeFileStorage) SaveFileWithPath(fh *multipart.FileHeader, subPath string) (string, error) {
	if fh == nil {
		return "", nil
	}
	f.seq++
	url := fmt.Sprintf("%s%s/%d.png", fakeStorageBase, subPath, f.seq)
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeFileStorage) DeleteFile(url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeFileStorage) Owns(url string) bool {
	return strings.HasPrefix(url, fakeStorageBase)
}

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.June, 1, 9, 0, 0, 0, time.UTC) }
}

func strPtr(s string) *string { return &s }
