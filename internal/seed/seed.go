package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/repositories"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/auth"
)

// Default admin credentials created on first start so the dashboard is
// usable immediately. The password should be changed in any real deployment.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// CreateDefaultData seeds the default admin account if it does not exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.UsernameExists(ctx, defaultAdminUsername)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: defaultAdminUsername,
		Password: hashed,
		FullName: "System Administrator",
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// Lost a race with another instance; the account exists either way
		if errors.Is(err, apperrors.ErrUsernameAlreadyUsed) {
			return nil
		}
		return err
	}

	lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin user created")
	return nil
}
