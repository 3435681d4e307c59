package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewiseshop/pawtrait-backend/internal/catalog"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
)

func TestPaymentCreate_SnapshotsRequester(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, catalog.NewRegistry(), nil)
	profile := createProfile(t, db, 0)

	req, err := svc.Create(context.Background(), profile, "standard")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPending, req.Status)
	assert.Equal(t, 9900, req.Amount)
	assert.Equal(t, 12, req.Credits)
	assert.Equal(t, profile.Nickname, req.UserNickname)
	assert.Equal(t, profile.Email, req.UserEmail)

	// Editing the profile later does not rewrite the snapshot.
	require.NoError(t, db.Model(profile).Update("nickname", "renamed").Error)
	var stored models.PaymentRequest
	require.NoError(t, db.First(&stored, "id = ?", req.ID).Error)
	assert.Equal(t, "tester", stored.UserNickname)
}

func TestPaymentCreate_UnknownPackage(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, catalog.NewRegistry(), nil)
	profile := createProfile(t, db, 0)

	_, err := svc.Create(context.Background(), profile, "mega")
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestPaymentApprove_GrantsCreditsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, catalog.NewRegistry(), nil)
	profile := createProfile(t, db, 0)

	req, err := svc.Create(context.Background(), profile, "standard")
	require.NoError(t, err)

	decided, err := svc.Approve(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusApproved, decided.Status)

	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, 12, stored.Credits)

	// A second approval is a conflict and must not grant again.
	_, err = svc.Approve(context.Background(), req.ID)
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, 12, stored.Credits)
}

func TestPaymentApprove_WritesNotification(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, catalog.NewRegistry(), nil)
	profile := createProfile(t, db, 0)

	req, err := svc.Create(context.Background(), profile, "starter")
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), req.ID)
	require.NoError(t, err)

	var count int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", profile.ID, models.NotificationTypePayment).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPaymentReject_NoCreditsMove(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, catalog.NewRegistry(), nil)
	profile := createProfile(t, db, 3)

	req, err := svc.Create(context.Background(), profile, "pro")
	require.NoError(t, err)

	decided, err := svc.Reject(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRejected, decided.Status)

	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", profile.ID).Error)
	assert.Equal(t, 3, stored.Credits)

	// Rejected is terminal; approval after rejection must refuse.
	_, err = svc.Approve(context.Background(), req.ID)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestPaymentListAll_NewestFirstWithFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, catalog.NewRegistry(), nil)
	profile := createProfile(t, db, 0)

	first, err := svc.Create(context.Background(), profile, "starter")
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), profile, "standard")
	require.NoError(t, err)
	_, err = svc.Reject(context.Background(), first.ID)
	require.NoError(t, err)

	pending, total, err := svc.ListAll(context.Background(), models.PaymentStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	all, total, err := svc.ListAll(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}

func TestPaymentWipe(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, catalog.NewRegistry(), nil)
	profile := createProfile(t, db, 0)

	for _, pkg := range []string{"starter", "standard", "pro"} {
		_, err := svc.Create(context.Background(), profile, pkg)
		require.NoError(t, err)
	}

	deleted, err := svc.Wipe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	var count int64
	db.Model(&models.PaymentRequest{}).Count(&count)
	assert.Zero(t, count)
}
