package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/auth"
)

// UserStore is the part of the user repository seeding needs
type UserStore interface {
	EmailExists(ctx context.Context, email string, exceptID int64) (bool, error)
	Create(ctx context.Context, u *appModels.User) error
}

// AdminAccount is a default administrator created on first start
type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// DefaultAdmins are the accounts created when seeding is enabled
var DefaultAdmins = []AdminAccount{
	{Name: "Administrator", Email: "admin@example.com", Password: "admin"},
	{Name: "Jake Admin", Email: "jake.admin@gmail.com", Password: "admin123"},
}

// CreateDefaultData creates the default admin users that don't exist yet.
// Existing accounts are left untouched, passwords included. Failures for
// one account don't stop the others.
func CreateDefaultData(ctx context.Context, users UserStore, admins []AdminAccount, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default admin users...")
	var finalErr error

	for _, admin := range admins {
		exists, err := users.EmailExists(ctx, admin.Email, 0)
		if err != nil {
			lgr.Error().Err(err).Str("email", admin.Email).Msg("Error checking if admin user exists")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		hashed, err := auth.HashPassword(admin.Password)
		if err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("hash password for %s: %w", admin.Email, err))
			continue
		}

		user := &appModels.User{
			Name:     admin.Name,
			Email:    admin.Email,
			Password: hashed,
		}
		if err := users.Create(ctx, user); err != nil {
			lgr.Error().Err(err).Str("email", admin.Email).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("email", admin.Email).Int64("userID", user.ID).Msg("Default admin user created")
	}

	return finalErr
}
