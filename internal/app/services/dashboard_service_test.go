package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models/dto"
)

func TestGetDashboard(t *testing.T) {
	students, studentStore, _ := newStudentService(2025)
	faculty, facultyStore := newFacultyService(2025)
	ctx := context.Background()

	_, err := students.CreateStudent(ctx, studentRequest("dash@example.com"))
	require.NoError(t, err)
	_, err = faculty.CreateFaculty(ctx, &dto.CreateFacultyRequest{FName: "A", LName: "B", Email: "ab@example.com"})
	require.NoError(t, err)

	out, err := NewDashboardService(studentStore, facultyStore).GetDashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, out.Students, 1)
	assert.Len(t, out.Faculty, 1)
}
