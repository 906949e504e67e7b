package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
	"github.com/saulo-duarte/okrun-lambda/internal/user"
)

// Seed inserts the fixed roles and, when an email is configured, the
// bootstrap Admin user. It is safe to run repeatedly.
func Seed(ctx context.Context, db *gorm.DB, cfg config.BootstrapConfig) (*user.User, error) {
	if err := role.NewRepository(db).EnsureDefaults(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}
	if cfg.AdminEmail == "" {
		return nil, nil
	}
	return SeedAdmin(ctx, db, cfg.AdminEmail, cfg.AdminName)
}

// SeedAdmin returns the user with email, creating it as an Admin when missing.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, name string) (*user.User, error) {
	log := config.WithContext(ctx).WithField("email", email)
	repo := user.NewRepository(db)

	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	admin := &user.User{
		FullName: name,
		Email:    email,
		RoleID:   role.Admin,
		Status:   user.StatusActive,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to seed admin: %w", err)
	}

	log.WithField("user_id", admin.ID).Info("Bootstrap admin created")
	return admin, nil
}
