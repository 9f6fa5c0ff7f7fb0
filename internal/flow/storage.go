package flow

import (
	"context"
	"errors"
)

// ErrNoPending indicates that no staged input exists for the user.
var ErrNoPending = errors.New("no pending input")

// Storage defines the persistence contract for staged owner input.
type Storage interface {
	// Get returns the pending input for the specified user.
	Get(ctx context.Context, userID int64) (*PendingInput, error)
	// Set stores the pending input for the specified user, replacing any
	// previously armed step.
	Set(ctx context.Context, userID int64, pending *PendingInput) error
	// Clear removes the pending input for the specified user.
	Clear(ctx context.Context, userID int64) error
}
