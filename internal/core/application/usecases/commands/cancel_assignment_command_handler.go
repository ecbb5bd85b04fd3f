package commands

import (
	"context"

	"warehouse/internal/core/domain/model/assignment"
)

// CancelAssignmentCommandHandler ends an operator's scanning session.
// Cancelling is idempotent: an operator with no open session stays idle and
// no error is reported. Rack occupancy is never touched, since pending
// pieces were never committed.
type CancelAssignmentCommandHandler struct {
	sessions *assignment.SessionStore
}

// NewCancelAssignmentCommandHandler creates a handler for session
// cancellation. Requires the shared SessionStore.
func NewCancelAssignmentCommandHandler(sessions *assignment.SessionStore) CancelAssignmentCommandHandler {
	return CancelAssignmentCommandHandler{
		sessions: sessions,
	}
}

// Handle clears the operator's session, whatever state it is in.
func (h CancelAssignmentCommandHandler) Handle(_ context.Context, cmd CancelAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.sessions.Clear(cmd.OperatorID())
	return nil
}
