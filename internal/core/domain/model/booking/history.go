package booking

import (
	"time"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
)

// History entry actions.
const (
	ActionBookingCreated        = "booking created"
	ActionBillUploaded          = "bill uploaded"
	ActionDriverConfirmed       = "driver confirmed payment"
	ActionOwnerConfirmed        = "owner confirmed payment"
	ActionBookingCompleted      = "booking completed - all payments confirmed"
	ActionBookingCancelled      = "booking cancelled"
	actionStatusUpdatedTemplate = "status updated to %s"
)

// HistoryEntry is one record in a booking's append-only audit trail. Amount
// and counterparty are present only where the action involves money changing
// hands or another account.
type HistoryEntry struct {
	action         string
	actorID        kernel.UUID
	role           auth.Role
	amount         *float64
	counterpartyID *kernel.UUID
	timestamp      time.Time
}

// RestoreHistoryEntry reconstructs a history entry from persistence. New
// entries are only ever appended by the Booking aggregate itself.
func RestoreHistoryEntry(
	action string, actorID kernel.UUID, role auth.Role,
	amount *float64, counterpartyID *kernel.UUID, timestamp time.Time,
) HistoryEntry {
	return HistoryEntry{
		action:         action,
		actorID:        actorID,
		role:           role,
		amount:         amount,
		counterpartyID: counterpartyID,
		timestamp:      timestamp,
	}
}

// Action returns what happened.
func (h HistoryEntry) Action() string {
	return h.action
}

// ActorID returns who did it.
func (h HistoryEntry) ActorID() kernel.UUID {
	return h.actorID
}

// Role returns the actor's role at the time.
func (h HistoryEntry) Role() auth.Role {
	return h.role
}

// Amount returns the money amount involved, nil when none.
func (h HistoryEntry) Amount() *float64 {
	return h.amount
}

// CounterpartyID returns the other account involved, nil when none.
func (h HistoryEntry) CounterpartyID() *kernel.UUID {
	return h.counterpartyID
}

// Timestamp returns when it happened.
func (h HistoryEntry) Timestamp() time.Time {
	return h.timestamp
}
