package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/edukta/backend/internal/app/models"
	appRepos "github.com/edukta/backend/internal/app/repositories"
	"github.com/edukta/backend/internal/config"
	"github.com/edukta/backend/internal/pkg/apperrors"
	"github.com/edukta/backend/internal/pkg/auth"
)

const defaultAdminEmail = "admin@edukta.app"

// CreateDefaultData ensures a default admin account exists so a fresh
// deployment can be administered. The password comes from ADMIN_PASSWORD and
// the account is skipped when that variable is unset.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Str("email", defaultAdminEmail).Msg("Default admin already present")
		return nil
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		lgr.Warn().Msg("ADMIN_PASSWORD not set, skipping default admin creation")
		return nil
	}

	encrypter := auth.NewEncrypter(cfg.Auth.Pepper)
	hashed, err := encrypter.Hash(adminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Name:     "Admin",
		Surname:  "Edukta",
		Email:    defaultAdminEmail,
		Password: hashed,
		RoleID:   appModels.RoleAdmin,
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
