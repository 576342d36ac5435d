// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models scoped to the acting principal.
package queries

import (
	"errors"
	"time"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrListBookingsQueryIsNotConstructed = errors.New(
	"ListBookingsQuery must be created via NewListBookingsQuery constructor",
)

// ListBookingsQuery retrieves the bookings visible to the acting principal.
// Farmers see the bookings they created; owners and drivers see the bookings
// on their vehicles.
type ListBookingsQuery struct {
	actor auth.Principal

	guard guard.ConstructorGuard
}

// NewListBookingsQuery creates a query scoped to the given principal.
func NewListBookingsQuery(actor auth.Principal) (ListBookingsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListBookingsQuery{}, err
	}

	return ListBookingsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

// Actor returns the acting principal.
func (q ListBookingsQuery) Actor() auth.Principal {
	return q.actor
}

// ListBookingsQueryResponse is the booking read model, newest booking first.
// Bill and settlement fields are populated only after the bill upload.
type ListBookingsQueryResponse struct {
	ID                kernel.UUID
	VehicleID         kernel.UUID
	FarmerID          kernel.UUID
	CropName          string
	RequiredWeight    float64
	Status            string
	PickupLocation    string
	DeliveryLocation  string
	BookingDate       time.Time
	DispatchDate      *time.Time
	DeliveryDate      *time.Time
	BillAmount        *float64
	SettlementMessage string
	ReadyForRating    bool
}
