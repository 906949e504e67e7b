package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
	"github.com/saulo-duarte/okrun-lambda/internal/department"
	"github.com/saulo-duarte/okrun-lambda/internal/keyresult"
	"github.com/saulo-duarte/okrun-lambda/internal/objective"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
	"github.com/saulo-duarte/okrun-lambda/internal/user"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&role.Role{},
		&department.Department{},
		&cycle.Cycle{},
		&user.User{},
		&objective.Objective{},
		&keyresult.KeyResult{},
	}
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	config.WithContext(ctx).Info("Database migrated")
	return nil
}
