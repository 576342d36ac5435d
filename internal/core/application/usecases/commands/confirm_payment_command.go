package commands

import (
	"errors"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand represents the driver's or owner's confirmation that
// payment for a booking went through.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Principal
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a validated payment confirmation command.
func NewConfirmPaymentCommand(actor auth.Principal, bookingID kernel.UUID) (ConfirmPaymentCommand, error) {
	if err := errors.Join(actor.Validate(), bookingID.Validate()); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return ConfirmPaymentCommand{
		actor:     actor,
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// Actor returns the acting principal.
func (c ConfirmPaymentCommand) Actor() auth.Principal {
	return c.actor
}

// BookingID returns the booking being confirmed.
func (c ConfirmPaymentCommand) BookingID() kernel.UUID {
	return c.bookingID
}
