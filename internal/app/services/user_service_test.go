package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

type userFixture struct {
	svc      UserService
	users    *fakeUserStore
	students *fakeStudentStore
	files    *fakeFileStorage
	user     *models.User
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	users := newFakeUserStore()
	students := &fakeStudentStore{}
	files := &fakeFileStorage{}
	user := &models.User{Name: "Jake Admin", Email: "jake@example.com"}
	require.NoError(t, users.Create(context.Background(), user))
	return &userFixture{
		svc:      NewUserService(users, students, NewPhotoManager(files, 4<<20)),
		users:    users,
		students: students,
		files:    files,
		user:     user,
	}
}

func TestUpdateUserSyncsStudent(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	require.NoError(t, f.students.Create(ctx, &models.Student{FName: "Jake", LName: "Admin", Email: "jake@example.com"}, 2025))

	updated, err := f.svc.UpdateUser(ctx, f.user.ID, &dto.UpdateUserRequest{
		Name:     strPtr("Jacob Miguel Santos"),
		Email:    strPtr("jacob@example.com"),
		Phone:    strPtr("0918"),
		Location: strPtr("Manila"),
	})
	require.NoError(t, err)
	assert.Equal(t, "jacob@example.com", updated.Email)

	s := f.students.rows[0]
	assert.Equal(t, "Jacob", s.FName)
	assert.Equal(t, "Miguel Santos", s.LName)
	assert.Equal(t, "jacob@example.com", s.Email)
	assert.Equal(t, "0918", *s.Contact)
	assert.Equal(t, "0918", *s.Phone)
	assert.Equal(t, "Manila", *s.Location)
	assert.Equal(t, "2025-001", s.IDNumber)
}

func TestUpdateUserWithoutStudent(t *testing.T) {
	f := newUserFixture(t)
	updated, err := f.svc.UpdateUser(context.Background(), f.user.ID, &dto.UpdateUserRequest{Location: strPtr("Cebu")})
	require.NoError(t, err)
	assert.Equal(t, "Jake Admin", updated.Name)
	assert.Equal(t, "Cebu", *updated.Location)
}

func TestUpdateUserEmailTaken(t *testing.T) {
	f := newUserFixture(t)
	require.NoError(t, f.users.Create(context.Background(), &models.User{Name: "Other", Email: "other@example.com"}))

	_, err := f.svc.UpdateUser(context.Background(), f.user.ID, &dto.UpdateUserRequest{Email: strPtr("other@example.com")})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateProfilePhoto(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	old := fakeStorageBase + "student_photos/old.png"
	require.NoError(t, f.students.Create(ctx, &models.Student{FName: "Jake", LName: "Admin", Email: "jake@example.com", Photo: &old}, 2025))

	updated, err := f.svc.UpdateProfile(ctx, f.user.ID, &dto.UpdateProfileRequest{PhotoFile: photoUpload(t, pngBytes)})
	require.NoError(t, err)
	require.NotNil(t, updated.Photo)
	assert.Contains(t, *updated.Photo, "/profile_photos/")
	assert.Equal(t, updated.Photo, f.students.rows[0].Photo)
	assert.Contains(t, f.files.deleted, old)

	updated, err = f.svc.UpdateProfile(ctx, f.user.ID, &dto.UpdateProfileRequest{RemovePhoto: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Photo)
	assert.Nil(t, f.students.rows[0].Photo)
}

func TestUpdateProfileWithoutPhotoKeepsStudentPhoto(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	photo := "https://cdn.example.com/me.jpg"
	require.NoError(t, f.students.Create(ctx, &models.Student{FName: "Jake", LName: "Admin", Email: "jake@example.com", Photo: &photo}, 2025))

	_, err := f.svc.UpdateProfile(ctx, f.user.ID, &dto.UpdateProfileRequest{
		UpdateUserRequest: dto.UpdateUserRequest{Name: strPtr("Jake")},
	})
	require.NoError(t, err)
	s := f.students.rows[0]
	assert.Equal(t, photo, *s.Photo)
	assert.Equal(t, "Jake", s.FName)
	assert.Equal(t, "", s.LName)
	assert.Empty(t, f.files.deleted)
}
