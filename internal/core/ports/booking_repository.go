package ports

import (
	"context"

	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates,
// including bill, rating and history.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetForUpdate retrieves a booking aggregate and locks its row for the
	// remainder of the transaction. Payment confirmation goes through this so
	// the dual-confirm race cannot complete a booking twice.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetActiveByVehicle retrieves the vehicle's bookings in a non-terminal
	// status. Used to refuse vehicle removal while work is in flight.
	GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*booking.Booking, error)
}
