package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/initi8now/waitlist/internal/app/models"
	appRepos "github.com/initi8now/waitlist/internal/app/repositories"
	"github.com/initi8now/waitlist/internal/config"
	"github.com/initi8now/waitlist/internal/pkg/apperrors"
	"github.com/initi8now/waitlist/internal/pkg/auth"
)

// CreateDefaultAdmin ensures the configured admin account exists and holds
// the admin role. With no admin credentials configured, seeding is skipped
// and the dashboard stays unreachable until an account is promoted by hand.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Info().Msg("No admin credentials configured, skipping admin seed")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)
	roleRepo := appRepos.NewRoleRepository(dbPool)

	user, err := userRepo.GetByEmail(ctx, cfg.Admin.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	if user == nil {
		hashed, err := auth.HashPassword(cfg.Admin.Password)
		if err != nil {
			return err
		}

		user = &appModels.User{
			Email:    cfg.Admin.Email,
			Password: hashed,
		}
		if err := userRepo.CreateUser(ctx, user); err != nil {
			return err
		}

		fullName := cfg.Admin.FullName
		if fullName == "" {
			fullName = "Administrator"
		}
		profile := &appModels.Profile{
			UserID:   user.ID,
			Email:    cfg.Admin.Email,
			FullName: fullName,
		}
		if err := userRepo.CreateProfile(ctx, profile); err != nil {
			lgr.Error().Err(err).Msg("Failed to create admin profile")
		}

		lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
	}

	// Idempotent: re-running against an existing assignment is a no-op
	if err := roleRepo.AssignRole(ctx, user.ID, appModels.RoleAdmin); err != nil {
		return err
	}

	return nil
}
