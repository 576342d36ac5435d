package vehicle

import "farmfreight/internal/pkg/errs"

// Status describes a vehicle's operational availability. Available and Full
// are derived from remaining capacity after every reserve and release; the
// others are set operationally by the owner.
type Status string

const (
	// StatusAvailable means the vehicle has remaining capacity for bookings.
	StatusAvailable Status = "available"

	// StatusBooked means the owner marked the vehicle taken outside the
	// capacity ledger.
	StatusBooked Status = "booked"

	// StatusInTransit means the vehicle is on the road.
	StatusInTransit Status = "in-transit"

	// StatusMaintenance means the vehicle is out of service.
	StatusMaintenance Status = "maintenance"

	// StatusFull means remaining capacity is exhausted.
	StatusFull Status = "full"
)

// NewStatusFromString parses and validates a vehicle status name.
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
	case StatusAvailable, StatusBooked, StatusInTransit, StatusMaintenance, StatusFull:
		return nil
	default:
		return errs.NewValueIsInvalidError("vehicle status")
	}
}

func (s Status) String() string {
	return string(s)
}
