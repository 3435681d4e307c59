package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.RefreshToken{},
		&models.PaymentRequest{},
		&models.Review{},
		&models.Notification{},
		&models.Order{},
	))
	return db
}

func createProfile(t *testing.T, db *gorm.DB, credits int) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		ID:       uuid.New(),
		Name:     "홍길동",
		Nickname: "tester",
		Email:    uuid.NewString() + "@example.com",
		Password: "x",
		Credits:  credits,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}
