// Package seed creates default records required for a fresh installation.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emre/collegehub/internal/app/models"
	"github.com/emre/collegehub/internal/app/repositories"
	"github.com/emre/collegehub/internal/config"
	"github.com/emre/collegehub/internal/pkg/apperrors"
	"github.com/emre/collegehub/internal/pkg/auth"
)

// EnsureAdmin creates the default admin user if no user with the configured
// admin email exists. Students and teachers are never seeded.
func EnsureAdmin(ctx context.Context, userRepo *repositories.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	_, err := userRepo.GetByEmail(ctx, cfg.Admin.Email)
	if err == nil {
		return nil
	}
	if !apperrors.Is(err, apperrors.ErrUserNotFound) {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:     "Admin User",
		Email:    cfg.Admin.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin user: %w", err)
	}

	lgr.Info().Str("email", admin.Email).Msg("Default admin user created")
	return nil
}
