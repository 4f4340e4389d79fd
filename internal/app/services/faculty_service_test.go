package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func newFacultyService(year int) (*facultyServiceImpl, *fakeFacultyStore) {
	store := &fakeFacultyStore{}
	svc := NewFacultyService(store, NewPhotoManager(&fakeFileStorage{}, 2<<20)).(*facultyServiceImpl)
	svc.now = fixedClock(year)
	return svc, store
}

func TestCreateFacultyAllocatesIDNumber(t *testing.T) {
	svc, _ := newFacultyService(2025)
	ctx := context.Background()

	first, err := svc.CreateFaculty(ctx, &dto.CreateFacultyRequest{FName: "Maria", LName: "Santos", Email: "maria@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "2025-001", first.IDNumber)

	second, err := svc.CreateFaculty(ctx, &dto.CreateFacultyRequest{FName: "Jose", LName: "Rizal", Email: "jose@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "2025-002", second.IDNumber)

	svc.now = fixedClock(2026)
	third, err := svc.CreateFaculty(ctx, &dto.CreateFacultyRequest{FName: "Ana", LName: "Reyes", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "2026-001", third.IDNumber)
}

func TestUpdateFaculty(t *testing.T) {
	svc, _ := newFacultyService(2025)
	ctx := context.Background()
	created, err := svc.CreateFaculty(ctx, &dto.CreateFacultyRequest{
		FName: "Maria", LName: "Santos", Email: "maria@example.com", Position: strPtr("Lecturer"),
	})
	require.NoError(t, err)

	archived := true
	updated, err := svc.UpdateFaculty(ctx, created.ID, &dto.UpdateFacultyRequest{
		Position: strPtr("Professor"),
		Archived: &archived,
	})
	require.NoError(t, err)
	assert.Equal(t, "Professor", *updated.Position)
	assert.True(t, updated.Archived)
	assert.Equal(t, created.IDNumber, updated.IDNumber)

	got, err := svc.GetFaculty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Position, got.Position)
}

func TestFacultyNotFound(t *testing.T) {
	svc, _ := newFacultyService(2025)
	_, err := svc.GetFaculty(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, svc.DeleteFaculty(context.Background(), 9), apperrors.ErrFacultyNotFound)
}
