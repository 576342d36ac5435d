package booking

import "farmfreight/internal/pkg/errs"

// Status is a booking's position in its lifecycle. The forward chain is
// strictly linear:
//
//	pending -> bringing -> pending_market -> pending_payment -> completed
//
// Cancelled is reachable from pending only. Completed and cancelled are
// terminal. Only the first two forward steps can be requested directly (by
// the assigned driver); pending_payment is entered by uploading the bill and
// completed by the second payment confirmation.
type Status string

const (
	// StatusPending is the initial status after creation; capacity is held.
	StatusPending Status = "pending"

	// StatusBringing means the driver is bringing the crop from the farm.
	StatusBringing Status = "bringing"

	// StatusPendingMarket means the crop reached the market and the sale is
	// awaited.
	StatusPendingMarket Status = "pending_market"

	// StatusPendingPayment means the bill is uploaded and both parties must
	// confirm payment.
	StatusPendingPayment Status = "pending_payment"

	// StatusCompleted is terminal; both parties confirmed payment.
	StatusCompleted Status = "completed"

	// StatusCancelled is terminal; the farmer withdrew the booking while it
	// was still pending.
	StatusCancelled Status = "cancelled"
)

// nextStatus maps each status to its single legal forward successor.
var nextStatus = map[Status]Status{
	StatusPending:        StatusBringing,
	StatusBringing:       StatusPendingMarket,
	StatusPendingMarket:  StatusPendingPayment,
	StatusPendingPayment: StatusCompleted,
}

// requestableStatus maps each status to the successor the assigned driver may
// request directly. Later steps happen implicitly.
var requestableStatus = map[Status]Status{
	StatusPending:  StatusBringing,
	StatusBringing: StatusPendingMarket,
}

// NewStatusFromString parses and validates a booking status name.
func NewStatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate reports whether the status is one of the known statuses.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusBringing, StatusPendingMarket,
		StatusPendingPayment, StatusCompleted, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidError("booking status")
	}
}

// Next returns the single legal forward successor and whether one exists.
func (s Status) Next() (Status, bool) {
	next, ok := nextStatus[s]
	return next, ok
}

// RequestableNext returns the successor a driver may request directly and
// whether one exists.
func (s Status) RequestableNext() (Status, bool) {
	next, ok := requestableStatus[s]
	return next, ok
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) String() string {
	return string(s)
}
