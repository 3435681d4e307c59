package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
)

func TestReviewList_AppendsSeedSetAfterPersisted(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	_, err := svc.Create(context.Background(), &dto.CreateReviewRequest{
		Nickname: "새리뷰", Rating: 5, Text: "최고예요",
		BeforeImage: "https://cdn.example.com/b.png", AfterImage: "https://cdn.example.com/a.png",
	}, uuid.Nil)
	require.NoError(t, err)

	reviews, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1+len(seedReviews))

	// Persisted entries come first, seeds keep their integer ids after.
	assert.Equal(t, "새리뷰", reviews[0].User)
	_, isString := reviews[0].ID.(string)
	assert.True(t, isString)
	assert.Equal(t, 1, reviews[1].ID)
}

func TestReviewCreate_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	valid := dto.CreateReviewRequest{
		Rating: 3, Text: "x",
		BeforeImage: "https://cdn.example.com/b.png", AfterImage: "https://cdn.example.com/a.png",
	}

	for _, breaker := range []func(r *dto.CreateReviewRequest){
		func(r *dto.CreateReviewRequest) { r.Rating = 0 },
		func(r *dto.CreateReviewRequest) { r.Rating = 6 },
		func(r *dto.CreateReviewRequest) { r.Text = "" },
		func(r *dto.CreateReviewRequest) { r.BeforeImage = "" },
		func(r *dto.CreateReviewRequest) { r.AfterImage = "" },
	} {
		req := valid
		breaker(&req)
		_, err := svc.Create(context.Background(), &req, uuid.Nil)
		assert.ErrorIs(t, err, ErrInvalidReview)
	}

	_, err := svc.Create(context.Background(), &valid, uuid.Nil)
	assert.NoError(t, err)
}

func TestReviewDelete_IntegerIDAlwaysRefused(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	// Seed entries are immutable no matter what credentials come along.
	err := svc.Delete(context.Background(), "3", "any-password", uuid.New())
	assert.ErrorIs(t, err, ErrSeedImmutable)
	err = svc.Delete(context.Background(), "1", "", uuid.Nil)
	assert.ErrorIs(t, err, ErrSeedImmutable)
}

func TestReviewDelete_OwnershipOrPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	owner := uuid.New()
	stranger := uuid.New()

	create := func() string {
		r, err := svc.Create(context.Background(), &dto.CreateReviewRequest{
			Nickname: "집사", Rating: 4, Text: "좋아요", Password: "secret",
			BeforeImage: "https://cdn.example.com/b.png", AfterImage: "https://cdn.example.com/a.png",
		}, owner)
		require.NoError(t, err)
		return r.ID.String()
	}

	// Owner deletes regardless of password.
	id := create()
	require.NoError(t, svc.Delete(context.Background(), id, "wrong", owner))

	// Correct password deletes regardless of acting user.
	id = create()
	require.NoError(t, svc.Delete(context.Background(), id, "secret", stranger))

	// Neither owner nor password: refused, review survives.
	id = create()
	err := svc.Delete(context.Background(), id, "wrong", stranger)
	assert.ErrorIs(t, err, ErrDeleteRefused)
	reviews, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, reviews[0].ID)
}

func TestReviewDelete_AnonymousWithoutPasswordRefused(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	// Anonymous review created without a password can never match one.
	r, err := svc.Create(context.Background(), &dto.CreateReviewRequest{
		Nickname: "익명", Rating: 5, Text: "굿",
		BeforeImage: "https://cdn.example.com/b.png", AfterImage: "https://cdn.example.com/a.png",
	}, uuid.Nil)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), r.ID.String(), "", uuid.New())
	assert.ErrorIs(t, err, ErrDeleteRefused)
}

func TestReviewDelete_UnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	err := svc.Delete(context.Background(), uuid.NewString(), "x", uuid.Nil)
	assert.ErrorIs(t, err, ErrReviewNotFound)
	err = svc.Delete(context.Background(), "not-an-id", "x", uuid.Nil)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewWipe_LeavesSeedSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), &dto.CreateReviewRequest{
			Nickname: "집사", Rating: 5, Text: "굿",
			BeforeImage: "https://cdn.example.com/b.png", AfterImage: "https://cdn.example.com/a.png",
		}, uuid.Nil)
		require.NoError(t, err)
	}

	deleted, err := svc.Wipe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	reviews, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, reviews, len(seedReviews))
}
