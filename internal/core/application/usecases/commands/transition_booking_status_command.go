package commands

import (
	"errors"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrTransitionBookingStatusCommandIsNotConstructed = errors.New(
	"TransitionBookingStatusCommand must be created via NewTransitionBookingStatusCommand constructor",
)

// TransitionBookingStatusCommand represents the assigned driver's request to
// move a booking to its next status.
type TransitionBookingStatusCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Principal
	bookingID kernel.UUID
	target    booking.Status

	guard guard.ConstructorGuard
}

// NewTransitionBookingStatusCommand creates a validated transition command.
func NewTransitionBookingStatusCommand(
	actor auth.Principal, bookingID kernel.UUID, target booking.Status,
) (TransitionBookingStatusCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		bookingID.Validate(),
		target.Validate(),
	); err != nil {
		return TransitionBookingStatusCommand{}, err
	}

	return TransitionBookingStatusCommand{
		actor:     actor,
		bookingID: bookingID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionBookingStatusCommandIsNotConstructed)
}

// Actor returns the acting principal.
func (c TransitionBookingStatusCommand) Actor() auth.Principal {
	return c.actor
}

// BookingID returns the booking to transition.
func (c TransitionBookingStatusCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Target returns the requested status.
func (c TransitionBookingStatusCommand) Target() booking.Status {
	return c.target
}
