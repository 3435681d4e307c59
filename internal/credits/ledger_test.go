package credits

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	atomicErr error
	updateErr error

	atomicCalls []int
	updateCalls []int
}

func (f *fakeStore) DeductCreditsAtomic(_ context.Context, _ uuid.UUID, amount int) error {
	f.atomicCalls = append(f.atomicCalls, amount)
	return f.atomicErr
}

func (f *fakeStore) UpdateCredits(_ context.Context, _ uuid.UUID, balance int) error {
	f.updateCalls = append(f.updateCalls, balance)
	return f.updateErr
}

func TestDeduct_AtomicPath(t *testing.T) {
	store := &fakeStore{}
	l := NewLedger(store, uuid.New(), 10)

	require.NoError(t, l.Deduct(context.Background(), 4))
	assert.Equal(t, 6, l.Balance())
	assert.Equal(t, []int{4}, store.atomicCalls)
	assert.Empty(t, store.updateCalls)
}

func TestDeduct_FallbackPath(t *testing.T) {
	store := &fakeStore{atomicErr: errors.New("rpc unavailable")}
	l := NewLedger(store, uuid.New(), 10)

	require.NoError(t, l.Deduct(context.Background(), 3))
	assert.Equal(t, 7, l.Balance())
	// Fallback writes the absolute displayed balance, not the delta.
	assert.Equal(t, []int{7}, store.updateCalls)
}

func TestDeduct_CompensationRestoresExactAmount(t *testing.T) {
	store := &fakeStore{
		atomicErr: errors.New("rpc unavailable"),
		updateErr: errors.New("store down"),
	}
	l := NewLedger(store, uuid.New(), 10)

	err := l.Deduct(context.Background(), 4)
	require.ErrorIs(t, err, ErrDeductFailed)
	// Net-zero change when both remote paths fail.
	assert.Equal(t, 10, l.Balance())
}

func TestDeduct_RejectsNonPositiveAmount(t *testing.T) {
	l := NewLedger(&fakeStore{}, uuid.New(), 10)

	assert.ErrorIs(t, l.Deduct(context.Background(), 0), ErrInvalidAmount)
	assert.ErrorIs(t, l.Deduct(context.Background(), -2), ErrInvalidAmount)
	assert.Equal(t, 10, l.Balance())
}

func TestDeduct_LocalOnlyWithoutUser(t *testing.T) {
	store := &fakeStore{}
	l := NewLedger(store, uuid.Nil, 5)

	require.NoError(t, l.Deduct(context.Background(), 2))
	assert.Equal(t, 3, l.Balance())
	assert.Empty(t, store.atomicCalls)
	assert.Empty(t, store.updateCalls)
}

func TestDeduct_BalanceNeverNegative(t *testing.T) {
	l := NewLedger(&fakeStore{}, uuid.New(), 3)

	// Overdraw clamps to zero locally; the operation itself still proceeds.
	require.NoError(t, l.Deduct(context.Background(), 5))
	assert.Equal(t, 0, l.Balance())

	for _, amount := range []int{1, 7, 2} {
		_ = l.Deduct(context.Background(), amount)
		assert.GreaterOrEqual(t, l.Balance(), 0)
	}
}

func TestDeduct_CompensationUnderInterleaving(t *testing.T) {
	// Two deductions in flight; the failing one must restore only its own
	// delta, not a recomputed absolute value.
	store := &fakeStore{}
	l := NewLedger(store, uuid.New(), 10)

	require.NoError(t, l.Deduct(context.Background(), 2)) // 10 -> 8

	store.atomicErr = errors.New("rpc unavailable")
	store.updateErr = errors.New("store down")
	require.ErrorIs(t, l.Deduct(context.Background(), 3), ErrDeductFailed)

	// First deduction stays applied; only the failed delta came back.
	assert.Equal(t, 8, l.Balance())
}
