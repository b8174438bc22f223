package service

import (
	"testing"

	"anoa.com/greencampus/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.ResourceUsage{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizResult{},
		&model.Contribution{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()

	user := &model.User{
		Username: username,
		Password: username + "123",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
