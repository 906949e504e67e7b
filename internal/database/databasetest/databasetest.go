// Package databasetest provides migrated sqlite databases for tests.
package databasetest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/database"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
	"github.com/saulo-duarte/okrun-lambda/internal/user"
)

// New opens a fresh sqlite database in t.TempDir with every table migrated
// and the roles seeded.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, config.DBConfig{
		Driver: database.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "okrun_test.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, database.Migrate(ctx, db))
	_, err = database.Seed(ctx, db, config.BootstrapConfig{})
	require.NoError(t, err)
	return db
}

// CreateUser inserts an active user with the given role.
func CreateUser(t testing.TB, db *gorm.DB, name string, roleID role.ID) *user.User {
	t.Helper()

	u := &user.User{
		FullName: name,
		Email:    fmt.Sprintf("%s@okrun.test", name),
		RoleID:   roleID,
		Status:   user.StatusActive,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
