package queries

import (
	"errors"
	"time"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrGetBookingHistoryQueryIsNotConstructed = errors.New(
	"GetBookingHistoryQuery must be created via NewGetBookingHistoryQuery constructor",
)

// GetBookingHistoryQuery retrieves a booking's audit trail in the order the
// entries were recorded.
type GetBookingHistoryQuery struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBookingHistoryQuery creates a validated history query.
func NewGetBookingHistoryQuery(bookingID kernel.UUID) (GetBookingHistoryQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetBookingHistoryQuery{}, err
	}

	return GetBookingHistoryQuery{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBookingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingHistoryQueryIsNotConstructed)
}

// BookingID returns the booking whose history is requested.
func (q GetBookingHistoryQuery) BookingID() kernel.UUID {
	return q.bookingID
}

// BookingHistoryEntryResponse is one audit trail entry in the read model.
type BookingHistoryEntryResponse struct {
	Action         string
	ActorID        kernel.UUID
	Role           string
	Amount         *float64
	CounterpartyID *kernel.UUID
	Timestamp      time.Time
}
