package commands

import (
	"errors"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrCancelBookingCommandIsNotConstructed = errors.New(
	"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
)

// CancelBookingCommand represents a farmer's request to withdraw a pending
// booking.
type CancelBookingCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Principal
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelBookingCommand creates a validated cancellation command.
func NewCancelBookingCommand(actor auth.Principal, bookingID kernel.UUID) (CancelBookingCommand, error) {
	if err := errors.Join(actor.Validate(), bookingID.Validate()); err != nil {
		return CancelBookingCommand{}, err
	}

	return CancelBookingCommand{
		actor:     actor,
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

// Actor returns the acting principal.
func (c CancelBookingCommand) Actor() auth.Principal {
	return c.actor
}

// BookingID returns the booking to cancel.
func (c CancelBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
