package commands

import (
	"errors"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

var ErrRateBookingCommandIsNotConstructed = errors.New(
	"RateBookingCommand must be created via NewRateBookingCommand constructor",
)

// RateBookingCommand represents the farmer's one-time rating of a completed
// booking: one score for the driver, one for the owner.
type RateBookingCommand struct { //nolint:recvcheck //using for validation
	actor        auth.Principal
	bookingID    kernel.UUID
	driverRating int
	ownerRating  int
	comment      string

	guard guard.ConstructorGuard
}

// NewRateBookingCommand creates a validated rating command.
func NewRateBookingCommand(
	actor auth.Principal, bookingID kernel.UUID, driverRating int, ownerRating int, comment string,
) (RateBookingCommand, error) {
	if err := errors.Join(actor.Validate(), bookingID.Validate()); err != nil {
		return RateBookingCommand{}, err
	}
	if driverRating < booking.MinRating || driverRating > booking.MaxRating {
		return RateBookingCommand{}, errs.NewValueIsOutOfRangeError(
			"driverRating", driverRating, booking.MinRating, booking.MaxRating)
	}
	if ownerRating < booking.MinRating || ownerRating > booking.MaxRating {
		return RateBookingCommand{}, errs.NewValueIsOutOfRangeError(
			"ownerRating", ownerRating, booking.MinRating, booking.MaxRating)
	}

	return RateBookingCommand{
		actor:        actor,
		bookingID:    bookingID,
		driverRating: driverRating,
		ownerRating:  ownerRating,
		comment:      comment,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RateBookingCommand) Validate() error {
	return c.guard.Validate(ErrRateBookingCommandIsNotConstructed)
}

// Actor returns the acting principal.
func (c RateBookingCommand) Actor() auth.Principal {
	return c.actor
}

// BookingID returns the booking being rated.
func (c RateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// DriverRating returns the score for the driver.
func (c RateBookingCommand) DriverRating() int {
	return c.driverRating
}

// OwnerRating returns the score for the owner.
func (c RateBookingCommand) OwnerRating() int {
	return c.ownerRating
}

// Comment returns the optional comment.
func (c RateBookingCommand) Comment() string {
	return c.comment
}
