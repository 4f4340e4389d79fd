package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/filestorage"
	"github.com/yigit/registrar/internal/pkg/idalloc"
	"github.com/yigit/registrar/internal/pkg/metrics"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func photoUpload(t *testing.T, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("photo_file", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["photo_file"][0]
}

func newStudentService(year int) (*studentServiceImpl, *fakeStudentStore, *fakeFileStorage) {
	store := &fakeStudentStore{}
	files := &fakeFileStorage{}
	svc := NewStudentService(store, NewPhotoManager(files, 2<<20)).(*studentServiceImpl)
	svc.now = fixedClock(year)
	return svc, store, files
}

func studentRequest(email string) *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{FName: "Juan", LName: "Dela Cruz", Email: email}
}

func TestCreateStudentAllocatesIdentifiers(t *testing.T) {
	svc, store, _ := newStudentService(2025)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		s, err := svc.CreateStudent(ctx, studentRequest(fmt.Sprintf("s%d@example.com", i)))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("2025-%03d", i), s.IDNumber)
		assert.Equal(t, fmt.Sprintf("2025%05d", i), s.StudentID)
	}
	assert.Equal(t, []int{2025, 2025, 2025}, store.years)
}

func TestCreateStudentCountsAllocations(t *testing.T) {
	svc, _, _ := newStudentService(2025)
	idNumbers := metrics.IdentifiersAllocated(idalloc.KindStudentIDNumber)
	studentNumbers := metrics.IdentifiersAllocated(idalloc.KindStudentNumber)
	beforeID, beforeNumber := testutil.ToFloat64(idNumbers), testutil.ToFloat64(studentNumbers)

	req := studentRequest("counted@example.com")
	req.StudentID = strPtr("CUSTOM-1")
	_, err := svc.CreateStudent(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, beforeID+1, testutil.ToFloat64(idNumbers))
	assert.Equal(t, beforeNumber, testutil.ToFloat64(studentNumbers))
}

func TestCreateStudentKeepsSuppliedIdentifiers(t *testing.T) {
	svc, _, _ := newStudentService(2025)
	req := studentRequest("given@example.com")
	req.IDNumber = strPtr("2019-777")
	req.StudentID = strPtr("201900777")

	s, err := svc.CreateStudent(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2019-777", s.IDNumber)
	assert.Equal(t, "201900777", s.StudentID)

	// blank strings count as absent
	req = studentRequest("blank@example.com")
	req.IDNumber = strPtr("  ")
	s, err = svc.CreateStudent(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2025-001", s.IDNumber)
}

func TestCreateStudentYearRollover(t *testing.T) {
	svc, store, _ := newStudentService(2025)
	ctx := context.Background()
	for i := 1; i <= 41; i++ {
		_, err := svc.CreateStudent(ctx, studentRequest(fmt.Sprintf("y%d@example.com", i)))
		require.NoError(t, err)
	}
	assert.Equal(t, "2025-041", store.rows[40].IDNumber)

	svc.now = fixedClock(2026)
	s, err := svc.CreateStudent(ctx, studentRequest("new-year@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "2026-001", s.IDNumber)
	assert.Equal(t, "202600001", s.StudentID)
}

func TestCreateStudentAfterMalformedIdentifier(t *testing.T) {
	svc, store, _ := newStudentService(2025)
	store.rows = []*models.Student{{ID: 1, IDNumber: "2025-abc", StudentID: "2025xyz", Email: "old@example.com"}}
	store.nextID = 1

	s, err := svc.CreateStudent(context.Background(), studentRequest("next@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "2025-001", s.IDNumber)
	assert.Equal(t, "202500001", s.StudentID)
}

func TestCreateStudentRequiresNames(t *testing.T) {
	svc, store, _ := newStudentService(2025)
	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{FName: " ", LName: "X", Email: "a@b.co"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Contains(t, custom.Details, "fname")
	assert.Empty(t, store.rows)
}

func TestCreateStudentStoreUnavailable(t *testing.T) {
	svc, store, files := newStudentService(2025)
	store.createErr = fmt.Errorf("latest identifier: %w", idalloc.ErrStoreUnavailable)

	req := studentRequest("down@example.com")
	req.PhotoFile = photoUpload(t, pngBytes)
	_, err := svc.CreateStudent(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	// the uploaded photo is not left behind
	require.Len(t, files.saved, 1)
	assert.Equal(t, files.saved, files.deleted)
}

func TestCreateStudentRejectsNonImage(t *testing.T) {
	svc, store, files := newStudentService(2025)
	req := studentRequest("gif@example.com")
	req.PhotoFile = photoUpload(t, []byte("GIF89a not allowed"))

	_, err := svc.CreateStudent(context.Background(), req)
	require.ErrorIs(t, err, filestorage.ErrInvalidImage)
	assert.Empty(t, files.saved)
	assert.Empty(t, store.rows)
}

func TestUpdateStudentKeepsIdentifiers(t *testing.T) {
	svc, _, _ := newStudentService(2025)
	ctx := context.Background()
	created, err := svc.CreateStudent(ctx, studentRequest("keep@example.com"))
	require.NoError(t, err)

	svc.now = fixedClock(2030)
	updated, err := svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{
		FName:    strPtr("Pedro"),
		IDNumber: strPtr(""),
		Section:  strPtr("B"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Pedro", updated.FName)
	assert.Equal(t, "Dela Cruz", updated.LName)
	assert.Equal(t, created.IDNumber, updated.IDNumber)
	assert.Equal(t, created.StudentID, updated.StudentID)
	assert.Equal(t, "B", *updated.Section)

	updated, err = svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{StudentID: strPtr("202599999"), Section: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "202599999", updated.StudentID)
	assert.Equal(t, created.IDNumber, updated.IDNumber)
	assert.Nil(t, updated.Section)
}

func TestUpdateStudentPhoto(t *testing.T) {
	svc, _, files := newStudentService(2025)
	ctx := context.Background()
	req := studentRequest("photo@example.com")
	req.PhotoFile = photoUpload(t, pngBytes)
	created, err := svc.CreateStudent(ctx, req)
	require.NoError(t, err)
	first := *created.Photo

	updated, err := svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{PhotoFile: photoUpload(t, pngBytes)})
	require.NoError(t, err)
	assert.NotEqual(t, first, *updated.Photo)
	assert.Equal(t, []string{first}, files.deleted)

	updated, err = svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{RemovePhoto: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Photo)
	assert.Len(t, files.deleted, 2)
}

func TestUpdateStudentLeavesForeignPhoto(t *testing.T) {
	svc, _, files := newStudentService(2025)
	ctx := context.Background()
	req := studentRequest("cdn@example.com")
	req.Photo = strPtr("https://cdn.example.com/a.jpg")
	created, err := svc.CreateStudent(ctx, req)
	require.NoError(t, err)

	_, err = svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{RemovePhoto: true})
	require.NoError(t, err)
	assert.Empty(t, files.deleted)
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc, _, _ := newStudentService(2025)
	_, err := svc.UpdateStudent(context.Background(), 42, &dto.UpdateStudentRequest{})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteStudent(t *testing.T) {
	svc, store, _ := newStudentService(2025)
	ctx := context.Background()
	created, err := svc.CreateStudent(ctx, studentRequest("gone@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(ctx, created.ID))
	assert.Empty(t, store.rows)
	assert.ErrorIs(t, svc.DeleteStudent(ctx, created.ID), apperrors.ErrStudentNotFound)
}

func TestListStudentsNewestFirst(t *testing.T) {
	svc, _, _ := newStudentService(2025)
	ctx := context.Background()
	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.CreateStudent(ctx, studentRequest(email))
		require.NoError(t, err)
	}

	list, err := svc.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b@example.com", list[0].Email)
}
