package flow

import (
	"context"
	"errors"
	"log/slog"
)

var stepRecorder = func(step, outcome string) {}

// RegisterStepRecorder allows external packages to observe flow activity.
func RegisterStepRecorder(recorder func(step, outcome string)) {
	if recorder == nil {
		stepRecorder = func(string, string) {}
		return
	}

	stepRecorder = recorder
}

// Machine arms and consumes staged owner input. Arming a new step replaces
// any previous one; Take hands the step out exactly once.
type Machine struct {
	storage Storage
	log     *slog.Logger
}

// NewMachine creates a flow controller using the provided storage backend.
func NewMachine(storage Storage, log *slog.Logger) *Machine {
	if log == nil {
		log = slog.Default()
	}

	return &Machine{
		storage: storage,
		log:     log,
	}
}

// Begin arms the given step for the user, overwriting any pending one.
func (m *Machine) Begin(ctx context.Context, userID int64, step Step) error {
	pending := &PendingInput{
		UserID: userID,
		Step:   step,
	}

	if err := m.storage.Set(ctx, userID, pending); err != nil {
		return err
	}

	stepRecorder(string(step), "armed")
	m.log.Debug("owner input armed", "user_id", userID, "step", step)

	return nil
}

// Take consumes the pending step for the user. It returns the step exactly
// once; the slot is cleared before the step is handed out. The bool result
// is false when nothing was armed.
func (m *Machine) Take(ctx context.Context, userID int64) (Step, bool, error) {
	pending, err := m.storage.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoPending) {
			return "", false, nil
		}

		return "", false, err
	}

	if err := m.storage.Clear(ctx, userID); err != nil {
		return "", false, err
	}

	stepRecorder(string(pending.Step), "consumed")

	return pending.Step, true, nil
}

// Clear drops any pending step for the user without consuming it.
func (m *Machine) Clear(ctx context.Context, userID int64) error {
	return m.storage.Clear(ctx, userID)
}
