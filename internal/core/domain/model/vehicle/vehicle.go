package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through the NewVehicle or RestoreVehicle factory functions.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is the aggregate root for a registered freight vehicle and the
// capacity ledger that guards its load. Remaining capacity is only ever
// mutated through Reserve and Release, which also maintain the booking
// cross-references and the capacity-derived status, so a single aggregate
// mutation persists atomically.
//
// Invariants:
//   - 0 <= remaining <= capacity weight
//   - status is Full exactly when remaining is exhausted after a ledger
//     operation, Available otherwise (unless operationally overridden)
//   - route has at least two stops; the last stop is the destination
type Vehicle struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	driverID      *kernel.UUID
	vehicleNumber string
	vehicleType   Type
	capacity      Capacity
	remaining     float64
	route         []string
	status        Status
	rent          string
	advance       float64
	bookingIDs    []kernel.UUID
	guard         guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle with full remaining capacity, Available
// status, no driver and no bookings.
func NewVehicle(
	id kernel.UUID, ownerID kernel.UUID, vehicleNumber string, vehicleType Type,
	capacity Capacity, route []string, rent string, advance float64,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setOwnerID(ownerID),
		vehicle.setVehicleNumber(vehicleNumber),
		vehicle.setVehicleType(vehicleType),
		vehicle.setCapacity(capacity),
		vehicle.setRoute(route),
		vehicle.setRent(rent),
		vehicle.setAdvance(advance),
	); err != nil {
		return nil, err
	}

	vehicle.remaining = capacity.Weight()
	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle from persistence, including its
// ledger state.
func RestoreVehicle(
	id kernel.UUID, ownerID kernel.UUID, driverID *kernel.UUID, vehicleNumber string,
	vehicleType Type, capacity Capacity, remaining float64, route []string,
	status Status, rent string, advance float64, bookingIDs []kernel.UUID,
) (*Vehicle, error) {
	vehicle, err := NewVehicle(id, ownerID, vehicleNumber, vehicleType, capacity, route, rent, advance)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		vehicle.setDriverID(driverID),
		vehicle.setRemaining(remaining),
		vehicle.setStatus(status),
		vehicle.setBookingIDs(bookingIDs),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// Validate ensures the Vehicle was created via a constructor function.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// OwnerID returns the owning account's identifier.
func (v *Vehicle) OwnerID() kernel.UUID {
	return v.ownerID
}

// DriverID returns the assigned driver's identifier, nil when no driver is
// assigned.
func (v *Vehicle) DriverID() *kernel.UUID {
	return v.driverID
}

// VehicleNumber returns the registration plate number.
func (v *Vehicle) VehicleNumber() string {
	return v.vehicleNumber
}

// VehicleType returns the body type.
func (v *Vehicle) VehicleType() Type {
	return v.vehicleType
}

// Capacity returns the total load capacity.
func (v *Vehicle) Capacity() Capacity {
	return v.capacity
}

// Remaining returns the unreserved weight capacity in kilograms.
func (v *Vehicle) Remaining() float64 {
	return v.remaining
}

// Route returns the ordered list of stops.
func (v *Vehicle) Route() []string {
	return v.route
}

// Destination returns the last stop of the route.
func (v *Vehicle) Destination() string {
	return v.route[len(v.route)-1]
}

// Status returns the vehicle's operational status.
func (v *Vehicle) Status() Status {
	return v.status
}

// Rent returns the owner's rent description, free text with an extractable
// numeric component, for example "10 per kg".
func (v *Vehicle) Rent() string {
	return v.rent
}

// Advance returns the advance amount collected at booking time.
func (v *Vehicle) Advance() float64 {
	return v.advance
}

// BookingIDs returns the bookings currently cross-referenced on this vehicle.
func (v *Vehicle) BookingIDs() []kernel.UUID {
	return v.bookingIDs
}

// HasBooking reports whether the booking is cross-referenced on this vehicle.
func (v *Vehicle) HasBooking(bookingID kernel.UUID) bool {
	for _, id := range v.bookingIDs {
		if id.IsEqual(bookingID) {
			return true
		}
	}
	return false
}

// Reserve takes weight out of the remaining capacity for a booking and
// records the cross-reference. It fails with an InsufficientCapacity error,
// carrying available and required weight, when the booking asks for more than
// is left. Remaining never goes below zero and the status is rederived from
// the new remaining value.
func (v *Vehicle) Reserve(bookingID kernel.UUID, weight float64) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not greater than 0", weight))
	}

	if weight > v.remaining {
		return errs.NewInsufficientCapacityError(v.remaining, weight)
	}

	v.remaining = max(0, v.remaining-weight)
	v.bookingIDs = append(v.bookingIDs, bookingID)
	v.rederiveStatus()
	return nil
}

// Release returns weight to the remaining capacity and removes the booking
// cross-reference. The increment is clamped to the total capacity, so a
// double release cannot inflate the ledger. Releasing a booking that is not
// referenced still clamps correctly and is not an error.
func (v *Vehicle) Release(bookingID kernel.UUID, weight float64) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is negative", weight))
	}

	v.remaining = min(v.capacity.Weight(), v.remaining+weight)
	v.removeBookingRef(bookingID)
	v.rederiveStatus()
	return nil
}

// AssignDriver attaches a driver account to the vehicle. Reassignment is
// allowed.
func (v *Vehicle) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	v.driverID = &driverID
	return nil
}

// ChangeStatus sets an operational status override, for example maintenance.
// The override lasts until the next ledger operation rederives the status.
func (v *Vehicle) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

// ChangeRent replaces the rent description. Bookings already billed keep the
// rent they were billed under.
func (v *Vehicle) ChangeRent(rent string) error {
	return v.setRent(rent)
}

// ChangeRoute replaces the route; the new last stop becomes the destination.
func (v *Vehicle) ChangeRoute(route []string) error {
	return v.setRoute(route)
}

// rederiveStatus recomputes the capacity-derived status after a ledger
// operation.
func (v *Vehicle) rederiveStatus() {
	if v.remaining <= 0 {
		v.status = StatusFull
	} else {
		v.status = StatusAvailable
	}
}

func (v *Vehicle) removeBookingRef(bookingID kernel.UUID) {
	kept := v.bookingIDs[:0]
	for _, id := range v.bookingIDs {
		if !id.IsEqual(bookingID) {
			kept = append(kept, id)
		}
	}
	v.bookingIDs = kept
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	v.ownerID = ownerID
	return nil
}

func (v *Vehicle) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	v.driverID = driverID
	return nil
}

func (v *Vehicle) setVehicleNumber(vehicleNumber string) error {
	if strings.TrimSpace(vehicleNumber) == "" {
		return errs.NewValueIsRequiredError("vehicleNumber")
	}
	v.vehicleNumber = vehicleNumber
	return nil
}

func (v *Vehicle) setVehicleType(vehicleType Type) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setCapacity(capacity Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setRemaining(remaining float64) error {
	if remaining < 0 || remaining > v.capacity.Weight() {
		return errs.NewValueIsOutOfRangeError("remaining", remaining, 0, v.capacity.Weight())
	}
	v.remaining = remaining
	return nil
}

func (v *Vehicle) setRoute(route []string) error {
	if len(route) < 2 {
		return errs.NewValueIsInvalidErrorWithCause(
			"route", fmt.Errorf("%d stops, at least 2 are required", len(route)))
	}
	for _, stop := range route {
		if strings.TrimSpace(stop) == "" {
			return errs.NewValueIsRequiredError("route stop")
		}
	}
	v.route = route
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

func (v *Vehicle) setRent(rent string) error {
	if strings.TrimSpace(rent) == "" {
		return errs.NewValueIsRequiredError("rent")
	}
	v.rent = rent
	return nil
}

func (v *Vehicle) setAdvance(advance float64) error {
	if advance < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"advance", fmt.Errorf("%v is negative", advance))
	}
	v.advance = advance
	return nil
}

func (v *Vehicle) setBookingIDs(bookingIDs []kernel.UUID) error {
	for _, id := range bookingIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	v.bookingIDs = bookingIDs
	return nil
}
