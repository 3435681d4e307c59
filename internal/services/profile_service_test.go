package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewiseshop/pawtrait-backend/internal/config"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
)

func TestProfileFetch_ProvisionsMissingRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db, &config.Config{AdminEmails: "admin@pawtrait.art"})
	userID := uuid.New()

	profile, err := svc.Fetch(context.Background(), userID, "newbie@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, 0, profile.Credits)
	assert.False(t, profile.IsAdmin)
	assert.Equal(t, "newbie", profile.Nickname)

	// Second fetch reads the provisioned row instead of creating another.
	again, err := svc.Fetch(context.Background(), userID, "newbie@example.com")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestProfileFetch_AdminFlagFromAllowList(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db, &config.Config{AdminEmails: "admin@pawtrait.art, ops@pawtrait.art"})

	profile, err := svc.Fetch(context.Background(), uuid.New(), "Admin@PawTrait.art")
	require.NoError(t, err)
	assert.True(t, profile.IsAdmin)
}

func TestDeductCreditsAtomic(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db, &config.Config{})
	profile := createProfile(t, db, 5)

	require.NoError(t, svc.DeductCreditsAtomic(context.Background(), profile.ID, 3))

	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, 2, stored.Credits)

	// More than the balance: conditional update matches no row.
	err := svc.DeductCreditsAtomic(context.Background(), profile.ID, 3)
	assert.ErrorIs(t, err, ErrInsufficientCredits)

	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, 2, stored.Credits)
}

func TestUpdateCredits_AbsoluteWriteClampsNegative(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db, &config.Config{})
	profile := createProfile(t, db, 10)

	require.NoError(t, svc.UpdateCredits(context.Background(), profile.ID, 7))
	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, 7, stored.Credits)

	require.NoError(t, svc.UpdateCredits(context.Background(), profile.ID, -4))
	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, 0, stored.Credits)

	assert.ErrorIs(t, svc.UpdateCredits(context.Background(), uuid.New(), 5), ErrUserNotFound)
}

func TestGrantCredits(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db, &config.Config{})
	profile := createProfile(t, db, 2)

	require.NoError(t, svc.GrantCredits(context.Background(), profile.ID, 12))

	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, 14, stored.Credits)

	assert.Error(t, svc.GrantCredits(context.Background(), profile.ID, 0))
	assert.ErrorIs(t, svc.GrantCredits(context.Background(), uuid.New(), 5), ErrUserNotFound)
}

func TestProfileUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db, &config.Config{})
	profile := createProfile(t, db, 0)

	updated, err := svc.Update(context.Background(), profile.ID, "김철수", "새닉네임")
	require.NoError(t, err)
	assert.Equal(t, "김철수", updated.Name)
	assert.Equal(t, "새닉네임", updated.Nickname)

	// Empty fields leave the stored values alone.
	updated, err = svc.Update(context.Background(), profile.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "김철수", updated.Name)
}
