package commands

import (
	"errors"
	"fmt"
	"time"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a farmer's request to book weight capacity
// on a vehicle for a crop.
//
// Example:
//
//	cmd, err := NewCreateBookingCommand(
//	    actor, kernel.NewUUID(), vehicleID, "tomatoes", 600, 0,
//	    "Hosur farm", "KR Market", time.Now())
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	actor            auth.Principal
	bookingID        kernel.UUID
	vehicleID        kernel.UUID
	cropName         string
	requiredWeight   float64
	requiredHeight   float64
	pickupLocation   string
	deliveryLocation string
	bookingDate      time.Time

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a validated booking creation command.
func NewCreateBookingCommand(
	actor auth.Principal, bookingID kernel.UUID, vehicleID kernel.UUID, cropName string,
	requiredWeight float64, requiredHeight float64,
	pickupLocation string, deliveryLocation string, bookingDate time.Time,
) (CreateBookingCommand, error) {
	command := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setBookingID(bookingID),
		command.setVehicleID(vehicleID),
		command.setCropName(cropName),
		command.setRequiredWeight(requiredWeight),
		command.setRequiredHeight(requiredHeight),
		command.setPickupLocation(pickupLocation),
		command.setDeliveryLocation(deliveryLocation),
		command.setBookingDate(bookingDate),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// Actor returns the acting principal.
func (c CreateBookingCommand) Actor() auth.Principal {
	return c.actor
}

// BookingID returns the identifier for the new booking.
func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// VehicleID returns the vehicle to book.
func (c CreateBookingCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// CropName returns the crop being moved.
func (c CreateBookingCommand) CropName() string {
	return c.cropName
}

// RequiredWeight returns the weight to reserve in kilograms.
func (c CreateBookingCommand) RequiredWeight() float64 {
	return c.requiredWeight
}

// RequiredHeight returns the required height in feet, 0 when not specified.
func (c CreateBookingCommand) RequiredHeight() float64 {
	return c.requiredHeight
}

// PickupLocation returns where the crop is collected.
func (c CreateBookingCommand) PickupLocation() string {
	return c.pickupLocation
}

// DeliveryLocation returns where the crop is delivered.
func (c CreateBookingCommand) DeliveryLocation() string {
	return c.deliveryLocation
}

// BookingDate returns when the booking is made.
func (c CreateBookingCommand) BookingDate() time.Time {
	return c.bookingDate
}

func (c *CreateBookingCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CreateBookingCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *CreateBookingCommand) setCropName(cropName string) error {
	if cropName == "" {
		return errs.NewValueIsRequiredError("cropName")
	}
	c.cropName = cropName
	return nil
}

func (c *CreateBookingCommand) setRequiredWeight(requiredWeight float64) error {
	if requiredWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"requiredWeight", fmt.Errorf("%v is not greater than 0", requiredWeight))
	}
	c.requiredWeight = requiredWeight
	return nil
}

func (c *CreateBookingCommand) setRequiredHeight(requiredHeight float64) error {
	if requiredHeight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"requiredHeight", fmt.Errorf("%v is negative", requiredHeight))
	}
	c.requiredHeight = requiredHeight
	return nil
}

func (c *CreateBookingCommand) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		return errs.NewValueIsRequiredError("pickupLocation")
	}
	c.pickupLocation = pickupLocation
	return nil
}

func (c *CreateBookingCommand) setDeliveryLocation(deliveryLocation string) error {
	if deliveryLocation == "" {
		return errs.NewValueIsRequiredError("deliveryLocation")
	}
	c.deliveryLocation = deliveryLocation
	return nil
}

func (c *CreateBookingCommand) setBookingDate(bookingDate time.Time) error {
	if bookingDate.IsZero() {
		return errs.NewValueIsRequiredError("bookingDate")
	}
	c.bookingDate = bookingDate
	return nil
}
