package commands

import (
	"errors"
	"fmt"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

var ErrUploadBillCommandIsNotConstructed = errors.New(
	"UploadBillCommand must be created via NewUploadBillCommand constructor",
)

// UploadBillCommand represents the assigned driver's upload of the sale bill
// from the market.
type UploadBillCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Principal
	bookingID kernel.UUID
	amount    float64
	fileRef   string

	guard guard.ConstructorGuard
}

// NewUploadBillCommand creates a validated bill upload command. FileRef may
// be empty when no bill image was kept.
func NewUploadBillCommand(
	actor auth.Principal, bookingID kernel.UUID, amount float64, fileRef string,
) (UploadBillCommand, error) {
	if err := errors.Join(actor.Validate(), bookingID.Validate()); err != nil {
		return UploadBillCommand{}, err
	}
	if amount <= 0 {
		return UploadBillCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%v is not greater than 0", amount))
	}

	return UploadBillCommand{
		actor:     actor,
		bookingID: bookingID,
		amount:    amount,
		fileRef:   fileRef,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadBillCommand) Validate() error {
	return c.guard.Validate(ErrUploadBillCommandIsNotConstructed)
}

// Actor returns the acting principal.
func (c UploadBillCommand) Actor() auth.Principal {
	return c.actor
}

// BookingID returns the booking the bill belongs to.
func (c UploadBillCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Amount returns the sale amount on the bill.
func (c UploadBillCommand) Amount() float64 {
	return c.amount
}

// FileRef returns the stored bill file reference.
func (c UploadBillCommand) FileRef() string {
	return c.fileRef
}
