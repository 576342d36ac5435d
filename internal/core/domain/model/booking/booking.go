package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

var (
	// ErrBookingIsNotConstructed is returned when a Booking instance was not
	// created through the NewBooking or RestoreBooking factory functions.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")

	// ErrBookingAlreadyRated indicates the booking's one-time rating has
	// already been recorded.
	ErrBookingAlreadyRated = errors.New("booking already rated")

	// ErrBillNotUploaded indicates an operation requiring the sale bill ran
	// before the bill was uploaded.
	ErrBillNotUploaded = errors.New("bill not uploaded")
)

// Booking is the aggregate root for a freight booking and its lifecycle state
// machine. All lifecycle mutations run through its methods, which enforce the
// linear status chain, attach the immutable bill and settlement, track the
// dual payment confirmation, and append to the audit history. History is
// strictly append-only.
type Booking struct {
	id               kernel.UUID
	farmerID         kernel.UUID
	vehicleID        kernel.UUID
	cropName         string
	requiredWeight   float64
	requiredHeight   float64
	pickupLocation   string
	deliveryLocation string
	bookingDate      time.Time
	dispatchDate     *time.Time
	status           Status
	bill             *Bill
	driverConfirmed  bool
	ownerConfirmed   bool
	readyForRating   bool
	rating           *Rating
	deliveryDate     *time.Time
	history          []HistoryEntry
	guard            guard.ConstructorGuard
}

// NewBooking creates a pending Booking and records the creation history
// entry: the farmer as actor, the vehicle's advance as amount and the
// vehicle's owner as counterparty.
func NewBooking(
	id kernel.UUID, farmerID kernel.UUID, vehicleID kernel.UUID, cropName string,
	requiredWeight float64, requiredHeight float64,
	pickupLocation string, deliveryLocation string, bookingDate time.Time,
	advance float64, ownerID kernel.UUID,
) (*Booking, error) {
	b := &Booking{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setFarmerID(farmerID),
		b.setVehicleID(vehicleID),
		b.setCropName(cropName),
		b.setRequiredWeight(requiredWeight),
		b.setRequiredHeight(requiredHeight),
		b.setPickupLocation(pickupLocation),
		b.setDeliveryLocation(deliveryLocation),
		b.setBookingDate(bookingDate),
		ownerID.Validate(),
	); err != nil {
		return nil, err
	}
	if advance < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"advance", fmt.Errorf("%v is negative", advance))
	}

	b.appendHistory(ActionBookingCreated, farmerID, auth.RoleFarmer, &advance, &ownerID, bookingDate)
	return b, nil
}

// RestoreBooking reconstructs a Booking from persistence, including lifecycle
// state, bill, rating and history.
func RestoreBooking(
	id kernel.UUID, farmerID kernel.UUID, vehicleID kernel.UUID, cropName string,
	requiredWeight float64, requiredHeight float64,
	pickupLocation string, deliveryLocation string, bookingDate time.Time,
	dispatchDate *time.Time, status Status, bill *Bill,
	driverConfirmed bool, ownerConfirmed bool, readyForRating bool,
	rating *Rating, deliveryDate *time.Time, history []HistoryEntry,
) (*Booking, error) {
	b := &Booking{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setFarmerID(farmerID),
		b.setVehicleID(vehicleID),
		b.setCropName(cropName),
		b.setRequiredWeight(requiredWeight),
		b.setRequiredHeight(requiredHeight),
		b.setPickupLocation(pickupLocation),
		b.setDeliveryLocation(deliveryLocation),
		b.setBookingDate(bookingDate),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	if bill != nil {
		if err := bill.Validate(); err != nil {
			return nil, err
		}
	}
	if rating != nil {
		if err := rating.Validate(); err != nil {
			return nil, err
		}
	}

	b.dispatchDate = dispatchDate
	b.bill = bill
	b.driverConfirmed = driverConfirmed
	b.ownerConfirmed = ownerConfirmed
	b.readyForRating = readyForRating
	b.rating = rating
	b.deliveryDate = deliveryDate
	b.history = history
	return b, nil
}

// Validate ensures the Booking was created via a constructor function.
func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

// IsEqual compares two bookings by identity.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// FarmerID returns the farmer who created the booking.
func (b *Booking) FarmerID() kernel.UUID {
	return b.farmerID
}

// VehicleID returns the booked vehicle.
func (b *Booking) VehicleID() kernel.UUID {
	return b.vehicleID
}

// CropName returns the crop being moved.
func (b *Booking) CropName() string {
	return b.cropName
}

// RequiredWeight returns the reserved weight in kilograms.
func (b *Booking) RequiredWeight() float64 {
	return b.requiredWeight
}

// RequiredHeight returns the required height in feet, 0 when not specified.
func (b *Booking) RequiredHeight() float64 {
	return b.requiredHeight
}

// PickupLocation returns where the crop is collected.
func (b *Booking) PickupLocation() string {
	return b.pickupLocation
}

// DeliveryLocation returns where the crop is delivered.
func (b *Booking) DeliveryLocation() string {
	return b.deliveryLocation
}

// BookingDate returns when the booking was created.
func (b *Booking) BookingDate() time.Time {
	return b.bookingDate
}

// DispatchDate returns when the driver started bringing the crop, nil before
// that.
func (b *Booking) DispatchDate() *time.Time {
	return b.dispatchDate
}

// Status returns the booking's lifecycle status.
func (b *Booking) Status() Status {
	return b.status
}

// Bill returns the uploaded sale bill, nil before upload.
func (b *Booking) Bill() *Bill {
	return b.bill
}

// DriverConfirmed reports whether the driver confirmed payment.
func (b *Booking) DriverConfirmed() bool {
	return b.driverConfirmed
}

// OwnerConfirmed reports whether the owner confirmed payment.
func (b *Booking) OwnerConfirmed() bool {
	return b.ownerConfirmed
}

// ReadyForRating reports whether the booking completed and still awaits its
// rating.
func (b *Booking) ReadyForRating() bool {
	return b.readyForRating
}

// Rating returns the farmer's rating, nil until rated.
func (b *Booking) Rating() *Rating {
	return b.rating
}

// DeliveryDate returns when the booking completed, nil before completion.
func (b *Booking) DeliveryDate() *time.Time {
	return b.deliveryDate
}

// History returns the append-only audit trail, oldest first.
func (b *Booking) History() []HistoryEntry {
	return b.history
}

// RequestTransition moves the booking to the requested status on behalf of
// the assigned driver. Only the two pickup-side steps can be requested
// directly; any other target fails with an InvalidTransition error reporting
// the current status and the requestable successor. Moving to bringing stamps
// the dispatch date.
func (b *Booking) RequestTransition(target Status, actorID kernel.UUID, at time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := actorID.Validate(); err != nil {
		return err
	}

	requestable, ok := b.status.RequestableNext()
	if !ok || target != requestable {
		allowed := ""
		if ok {
			allowed = requestable.String()
		}
		return errs.NewInvalidTransitionError(b.status.String(), target.String(), allowed)
	}

	b.status = target
	if target == StatusBringing {
		b.dispatchDate = &at
	}
	b.appendHistory(
		fmt.Sprintf(actionStatusUpdatedTemplate, target), actorID, auth.RoleDriver, nil, nil, at)
	return nil
}

// AttachBill stores the sale bill with its precomputed settlement, resets
// both payment confirmation flags, and moves the booking to pending_payment.
// The booking must be exactly at pending_market.
func (b *Booking) AttachBill(bill Bill, at time.Time) error {
	if err := bill.Validate(); err != nil {
		return err
	}
	if b.status != StatusPendingMarket {
		return errs.NewInvalidStateError(
			"upload bill", b.status.String(), StatusPendingMarket.String())
	}

	amount := bill.Amount()
	b.bill = &bill
	b.driverConfirmed = false
	b.ownerConfirmed = false
	b.status = StatusPendingPayment
	b.appendHistory(ActionBillUploaded, bill.UploaderID(), auth.RoleDriver, &amount, nil, at)
	return nil
}

// ConfirmPayment records the caller's payment confirmation. Role must be
// driver or owner and the booking must be at pending_payment. Re-confirming
// an already confirmed role is a complete no-op. When the second flag is set
// the booking completes: the delivery date is stamped, the booking is marked
// ready for rating, and a single completion history entry is appended. The
// returned bool reports whether this call completed the booking.
func (b *Booking) ConfirmPayment(role auth.Role, actorID kernel.UUID, at time.Time) (bool, error) {
	if err := actorID.Validate(); err != nil {
		return false, err
	}
	if role != auth.RoleDriver && role != auth.RoleOwner {
		return false, errs.NewValueIsInvalidError("confirming role")
	}
	if b.status != StatusPendingPayment {
		return false, errs.NewInvalidStateError(
			"confirm payment", b.status.String(), StatusPendingPayment.String())
	}

	switch role {
	case auth.RoleDriver:
		if b.driverConfirmed {
			return false, nil
		}
		b.driverConfirmed = true
		b.appendHistory(ActionDriverConfirmed, actorID, role, nil, nil, at)
	case auth.RoleOwner:
		if b.ownerConfirmed {
			return false, nil
		}
		b.ownerConfirmed = true
		b.appendHistory(ActionOwnerConfirmed, actorID, role, nil, nil, at)
	}

	if b.driverConfirmed && b.ownerConfirmed {
		b.status = StatusCompleted
		b.deliveryDate = &at
		b.readyForRating = true
		b.appendHistory(ActionBookingCompleted, actorID, role, nil, nil, at)
		return true, nil
	}
	return false, nil
}

// Cancel withdraws the booking while it still only holds a reservation. Only
// pending bookings can be cancelled; cancellation is terminal.
func (b *Booking) Cancel(at time.Time) error {
	if b.status != StatusPending {
		return errs.NewInvalidStateError(
			"cancel booking", b.status.String(), StatusPending.String())
	}

	b.status = StatusCancelled
	b.appendHistory(ActionBookingCancelled, b.farmerID, auth.RoleFarmer, nil, nil, at)
	return nil
}

// Rate records the farmer's one-time rating. The booking must be completed
// with its bill present and not yet rated; rating clears the ready-for-rating
// flag.
func (b *Booking) Rate(driverRating int, ownerRating int, comment string, at time.Time) error {
	if b.status != StatusCompleted {
		return errs.NewInvalidStateError(
			"rate booking", b.status.String(), StatusCompleted.String())
	}
	if b.bill == nil {
		return ErrBillNotUploaded
	}
	if b.rating != nil {
		return ErrBookingAlreadyRated
	}

	rating, err := NewRating(driverRating, ownerRating, comment, at)
	if err != nil {
		return err
	}

	b.rating = &rating
	b.readyForRating = false
	return nil
}

func (b *Booking) appendHistory(
	action string, actorID kernel.UUID, role auth.Role,
	amount *float64, counterpartyID *kernel.UUID, at time.Time,
) {
	b.history = append(b.history,
		RestoreHistoryEntry(action, actorID, role, amount, counterpartyID, at))
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	b.farmerID = farmerID
	return nil
}

func (b *Booking) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	b.vehicleID = vehicleID
	return nil
}

func (b *Booking) setCropName(cropName string) error {
	if strings.TrimSpace(cropName) == "" {
		return errs.NewValueIsRequiredError("cropName")
	}
	b.cropName = cropName
	return nil
}

func (b *Booking) setRequiredWeight(requiredWeight float64) error {
	if requiredWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"requiredWeight", fmt.Errorf("%v is not greater than 0", requiredWeight))
	}
	b.requiredWeight = requiredWeight
	return nil
}

func (b *Booking) setRequiredHeight(requiredHeight float64) error {
	if requiredHeight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"requiredHeight", fmt.Errorf("%v is negative", requiredHeight))
	}
	b.requiredHeight = requiredHeight
	return nil
}

func (b *Booking) setPickupLocation(pickupLocation string) error {
	if strings.TrimSpace(pickupLocation) == "" {
		return errs.NewValueIsRequiredError("pickupLocation")
	}
	b.pickupLocation = pickupLocation
	return nil
}

func (b *Booking) setDeliveryLocation(deliveryLocation string) error {
	if strings.TrimSpace(deliveryLocation) == "" {
		return errs.NewValueIsRequiredError("deliveryLocation")
	}
	b.deliveryLocation = deliveryLocation
	return nil
}

func (b *Booking) setBookingDate(bookingDate time.Time) error {
	if bookingDate.IsZero() {
		return errs.NewValueIsRequiredError("bookingDate")
	}
	b.bookingDate = bookingDate
	return nil
}

func (b *Booking) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}
