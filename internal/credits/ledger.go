package credits

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("deduction amount must be positive")
	// ErrDeductFailed means both the atomic deduction and the direct-write
	// fallback failed; the displayed balance has been compensated back.
	ErrDeductFailed = errors.New("credit deduction failed")
)

// Store is the remote credit store the ledger reconciles against.
type Store interface {
	// DeductCreditsAtomic subtracts amount server-side in a single
	// conditional update.
	DeductCreditsAtomic(ctx context.Context, userID uuid.UUID, amount int) error
	// UpdateCredits writes an absolute balance. Non-atomic; used only as the
	// ledger's fallback path.
	UpdateCredits(ctx context.Context, userID uuid.UUID, balance int) error
}

// Ledger keeps a displayed credit balance consistent with the server balance
// under fallible network operations: apply locally first, confirm remotely,
// compensate on failure. One ledger serves one user session; it does not
// coordinate across sessions, so two concurrent sessions for the same user
// can still race on the stored balance.
type Ledger struct {
	mu        sync.Mutex
	store     Store
	userID    uuid.UUID // uuid.Nil means local-only, nothing is persisted
	displayed int
}

func NewLedger(store Store, userID uuid.UUID, balance int) *Ledger {
	if balance < 0 {
		balance = 0
	}
	return &Ledger{store: store, userID: userID, displayed: balance}
}

// Balance returns the currently displayed balance. Never negative.
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.displayed
}

// Deduct applies the optimistic deduction protocol:
//
//  1. clamp the displayed balance down by amount, synchronously, before any
//     network call;
//  2. without an authenticated user, stop there (success, local-only);
//  3. try the atomic server-side deduction;
//  4. on failure, fall back to an absolute write of the displayed balance —
//     this path can race with concurrent deductions and is deliberately not
//     strengthened;
//  5. if the fallback also fails, restore exactly amount (never a recomputed
//     absolute value, so in-flight deductions are not double-compensated)
//     and return ErrDeductFailed.
func (l *Ledger) Deduct(ctx context.Context, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	l.displayed -= amount
	if l.displayed < 0 {
		l.displayed = 0
	}
	target := l.displayed
	l.mu.Unlock()

	if l.userID == uuid.Nil {
		return nil
	}

	if err := l.store.DeductCreditsAtomic(ctx, l.userID, amount); err == nil {
		return nil
	} else {
		slog.Warn("atomic credit deduction failed, trying direct update",
			"user_id", l.userID.String(), "error", err)
	}

	if err := l.store.UpdateCredits(ctx, l.userID, target); err != nil {
		slog.Error("credit deduction failed, restoring displayed balance",
			"user_id", l.userID.String(), "amount", amount, "error", err)
		l.mu.Lock()
		l.displayed += amount
		l.mu.Unlock()
		return ErrDeductFailed
	}
	return nil
}
