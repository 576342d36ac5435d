package booking

import (
	"errors"
	"fmt"
	"time"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

var (
	// ErrSettlementIsNotConstructed indicates that a Settlement was not created
	// through the NewSettlement constructor.
	ErrSettlementIsNotConstructed = errors.New("Settlement must be created via NewSettlement constructor")

	// ErrBillIsNotConstructed indicates that a Bill was not created through the
	// NewBill constructor.
	ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill constructor")
)

// Settlement is the immutable outcome of the settlement calculation stored on
// a bill. At most one of FarmerGets and FarmerPays is positive.
type Settlement struct {
	farmerGets float64
	farmerPays float64
	message    string
	guard      guard.ConstructorGuard
}

// NewSettlement creates a validated Settlement.
func NewSettlement(farmerGets float64, farmerPays float64, message string) (Settlement, error) {
	if farmerGets < 0 {
		return Settlement{}, errs.NewValueIsInvalidErrorWithCause(
			"farmerGets", fmt.Errorf("%v is negative", farmerGets))
	}
	if farmerPays < 0 {
		return Settlement{}, errs.NewValueIsInvalidErrorWithCause(
			"farmerPays", fmt.Errorf("%v is negative", farmerPays))
	}
	if farmerGets > 0 && farmerPays > 0 {
		return Settlement{}, errs.NewValueIsInvalidErrorWithCause(
			"settlement", errors.New("farmer cannot both get and pay"))
	}
	if message == "" {
		return Settlement{}, errs.NewValueIsRequiredError("settlement message")
	}

	return Settlement{
		farmerGets: farmerGets,
		farmerPays: farmerPays,
		message:    message,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Settlement was created via NewSettlement.
func (s Settlement) Validate() error {
	return s.guard.Validate(ErrSettlementIsNotConstructed)
}

// FarmerGets returns what the owner or driver side owes the farmer.
func (s Settlement) FarmerGets() float64 {
	return s.farmerGets
}

// FarmerPays returns what the farmer still owes.
func (s Settlement) FarmerPays() float64 {
	return s.farmerPays
}

// Message returns the human-readable summary naming payer and amount.
func (s Settlement) Message() string {
	return s.message
}

// Bill is the sale bill the driver uploads at the market, together with the
// settlement computed from it. Both are immutable once attached to a booking.
type Bill struct {
	amount     float64
	fileRef    string
	uploaderID kernel.UUID
	uploadedAt time.Time
	advance    float64
	rent       string
	settlement Settlement
	guard      guard.ConstructorGuard
}

// NewBill creates a validated Bill carrying its settlement.
func NewBill(
	amount float64, fileRef string, uploaderID kernel.UUID, uploadedAt time.Time,
	advance float64, rent string, settlement Settlement,
) (Bill, error) {
	if amount <= 0 {
		return Bill{}, errs.NewValueIsInvalidErrorWithCause(
			"bill amount", fmt.Errorf("%v is not greater than 0", amount))
	}
	if err := uploaderID.Validate(); err != nil {
		return Bill{}, err
	}
	if uploadedAt.IsZero() {
		return Bill{}, errs.NewValueIsRequiredError("uploadedAt")
	}
	if advance < 0 {
		return Bill{}, errs.NewValueIsInvalidErrorWithCause(
			"advance", fmt.Errorf("%v is negative", advance))
	}
	if err := settlement.Validate(); err != nil {
		return Bill{}, err
	}

	return Bill{
		amount:     amount,
		fileRef:    fileRef,
		uploaderID: uploaderID,
		uploadedAt: uploadedAt,
		advance:    advance,
		rent:       rent,
		settlement: settlement,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Bill was created via NewBill.
func (b Bill) Validate() error {
	return b.guard.Validate(ErrBillIsNotConstructed)
}

// Amount returns the sale amount on the bill.
func (b Bill) Amount() float64 {
	return b.amount
}

// FileRef returns the stored bill file reference, empty when none was kept.
func (b Bill) FileRef() string {
	return b.fileRef
}

// UploaderID returns the driver account that uploaded the bill.
func (b Bill) UploaderID() kernel.UUID {
	return b.uploaderID
}

// UploadedAt returns when the bill was uploaded.
func (b Bill) UploadedAt() time.Time {
	return b.uploadedAt
}

// Advance returns the advance already paid at booking time.
func (b Bill) Advance() float64 {
	return b.advance
}

// Rent returns the rent text the settlement was computed from.
func (b Bill) Rent() string {
	return b.rent
}

// Settlement returns the settlement computed when the bill was uploaded. It is
// never recomputed.
func (b Bill) Settlement() Settlement {
	return b.settlement
}
