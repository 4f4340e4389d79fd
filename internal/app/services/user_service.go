package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// UserService manages the signed-in account
type UserService interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	UpdateUser(ctx context.Context, userID int64, req *dto.UpdateUserRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
}

type userServiceImpl struct {
	users    UserStore
	students StudentStore
	photos   *PhotoManager
}

// NewUserService creates a new UserService. photos handles profile uploads.
func NewUserService(users UserStore, students StudentStore, photos *PhotoManager) UserService {
	return &userServiceImpl{
		users:    users,
		students: students,
		photos:   photos,
	}
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, userID int64, req *dto.UpdateUserRequest) (*models.User, error) {
	return s.update(ctx, userID, req, nil)
}

// UpdateProfile is UpdateUser plus photo upload or removal
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	return s.update(ctx, userID, &req.UpdateUserRequest, &PhotoInput{
		File:   req.PhotoFile,
		URL:    req.Photo,
		Remove: req.RemovePhoto,
	})
}

func (s *userServiceImpl) update(ctx context.Context, userID int64, req *dto.UpdateUserRequest, photoIn *PhotoInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	oldEmail := user.Email

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != "" && email != user.Email {
			exists, err := s.users.EmailExists(ctx, email, user.ID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperrors.ErrEmailAlreadyExists
			}
		}
	}

	patchRequired(&user.Name, req.Name)
	patchRequired(&user.Email, req.Email)
	patchOptional(&user.Phone, req.Phone)
	patchOptional(&user.Location, req.Location)

	var photo *PhotoChange
	if photoIn != nil {
		photo, err = s.photos.Resolve(user.Photo, *photoIn, models.ProfilePhotoDir)
		if err != nil {
			return nil, err
		}
		user.Photo = photo.Value
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.photos.Rollback(photo)
		return nil, err
	}
	s.photos.Commit(photo)

	s.syncStudent(ctx, oldEmail, user, req, photo)
	return user, nil
}

// syncStudent mirrors account changes onto the student record sharing the
// old or new email, if there is one. Failures are logged, not returned.
func (s *userServiceImpl) syncStudent(ctx context.Context, oldEmail string, user *models.User, req *dto.UpdateUserRequest, photo *PhotoChange) {
	student, err := s.students.FindByEmail(ctx, oldEmail, user.Email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to look up student for account sync")
		}
		return
	}

	if req.Name != nil {
		if first, rest := helpers.SplitName(*req.Name); first != "" {
			student.FName = first
			student.LName = rest
		}
	}
	student.Email = user.Email
	if req.Phone != nil {
		student.Contact = user.Phone
		student.Phone = user.Phone
	}
	if req.Location != nil {
		student.Location = user.Location
	}

	var stale *string
	if photo.Changed() && !samePhoto(student.Photo, photo.Value) {
		stale = student.Photo
		student.Photo = photo.Value
	}

	if err := s.students.Update(ctx, student); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Int64("studentID", student.ID).Msg("Failed to sync student with account")
		return
	}
	s.photos.Delete(stale)
}

func samePhoto(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
