package database_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/database"
	"github.com/saulo-duarte/okrun-lambda/internal/database/databasetest"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
)

func TestOpenRejectsBadConfig(t *testing.T) {
	ctx := context.Background()

	_, err := database.Open(ctx, config.DBConfig{Driver: database.DriverSQLite})
	assert.Error(t, err)

	_, err = database.Open(ctx, config.DBConfig{Driver: "mysql", DSN: "x"})
	assert.Error(t, err)
}

func TestGormLogsThroughLogrus(t *testing.T) {
	db := databasetest.New(t)

	var buf bytes.Buffer
	config.Logger.SetOutput(&buf)
	config.Logger.SetLevel(logrus.InfoLevel)
	config.Logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	t.Cleanup(func() { config.Logger.SetOutput(os.Stderr) })

	var r role.Role
	err := db.First(&r, 999).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NotContains(t, buf.String(), "record not found")

	require.Error(t, db.Exec("SELECT * FROM no_such_table").Error)
	assert.Contains(t, buf.String(), "no_such_table")
	assert.Contains(t, buf.String(), "component=gorm")
}
