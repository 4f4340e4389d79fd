package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func TestCreateProfileGoesThroughStudents(t *testing.T) {
	students, store, _ := newStudentService(2025)
	svc := NewProfileService(students)
	ctx := context.Background()

	p, err := svc.CreateProfile(ctx, &dto.ProfileRequest{
		FName: strPtr("Lia"), LName: strPtr("Tan"), Email: strPtr("lia@example.com"), Phone: strPtr("0917"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-001", p.IDNumber)
	assert.Equal(t, "202500001", p.StudentID)
	assert.Equal(t, "0917", *p.Contact)
	assert.Len(t, store.rows, 1)

	_, err = svc.CreateProfile(ctx, &dto.ProfileRequest{FName: strPtr("No"), LName: strPtr("Email")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateProfileMapsPhoneToContact(t *testing.T) {
	students, _, _ := newStudentService(2025)
	svc := NewProfileService(students)
	ctx := context.Background()
	p, err := svc.CreateProfile(ctx, &dto.ProfileRequest{
		FName: strPtr("Lia"), LName: strPtr("Tan"), Email: strPtr("lia@example.com"), Contact: strPtr("111"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, p.ID, &dto.ProfileRequest{Phone: strPtr("222")})
	require.NoError(t, err)
	assert.Equal(t, "222", *updated.Contact)
	assert.Equal(t, "222", *updated.Phone)
	assert.Equal(t, p.IDNumber, updated.IDNumber)

	updated, err = svc.UpdateProfile(ctx, p.ID, &dto.ProfileRequest{Contact: strPtr("333"), Phone: strPtr("444")})
	require.NoError(t, err)
	assert.Equal(t, "333", *updated.Contact)
}
