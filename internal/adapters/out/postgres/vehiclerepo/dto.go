// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence, including the capacity ledger state and the
// booking cross-references.
package vehiclerepo

import (
	"encoding/json"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. The route is stored as a JSON array; remaining capacity and
// status change together under the row lock taken by GetForUpdate.
type VehicleDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	DriverID       *uuid.UUID      `gorm:"type:uuid;index"`
	VehicleNumber  string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	VehicleType    string          `gorm:"type:varchar(32);not null"`
	CapacityWeight float64         `gorm:"type:numeric;not null"`
	CapacityHeight float64         `gorm:"type:numeric;not null"`
	Remaining      float64         `gorm:"type:numeric;not null"`
	Route          string          `gorm:"type:jsonb;not null"`
	Status         string          `gorm:"type:varchar(16);not null;index"`
	Rent           string          `gorm:"type:varchar(255);not null"`
	Advance        float64         `gorm:"type:numeric;not null"`
	BookingRefs    []BookingRefDTO `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// BookingRefDTO cross-references a booking holding capacity on a vehicle.
type BookingRefDTO struct {
	VehicleID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides GORM's default naming to use "booking_refs".
func (BookingRefDTO) TableName() string {
	return "booking_refs"
}

func fromDomain(aggregate *vehicle.Vehicle) (VehicleDTO, error) {
	vehicleID := aggregate.ID().Bytes()

	route, err := json.Marshal(aggregate.Route())
	if err != nil {
		return VehicleDTO{}, err
	}

	var driverID *uuid.UUID
	if aggregate.DriverID() != nil {
		raw := aggregate.DriverID().Bytes()
		driverID = &raw
	}

	refs := make([]BookingRefDTO, 0, len(aggregate.BookingIDs()))
	for _, bookingID := range aggregate.BookingIDs() {
		refs = append(refs, BookingRefDTO{
			VehicleID: vehicleID,
			BookingID: bookingID.Bytes(),
		})
	}

	return VehicleDTO{
		ID:             vehicleID,
		OwnerID:        aggregate.OwnerID().Bytes(),
		DriverID:       driverID,
		VehicleNumber:  aggregate.VehicleNumber(),
		VehicleType:    aggregate.VehicleType().String(),
		CapacityWeight: aggregate.Capacity().Weight(),
		CapacityHeight: aggregate.Capacity().Height(),
		Remaining:      aggregate.Remaining(),
		Route:          string(route),
		Status:         aggregate.Status().String(),
		Rent:           aggregate.Rent(),
		Advance:        aggregate.Advance(),
		BookingRefs:    refs,
	}, nil
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		driver, idErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if idErr != nil {
			return nil, idErr
		}
		driverID = &driver
	}

	vehicleType, err := vehicle.NewTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}
	status, err := vehicle.NewStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	capacity, err := vehicle.NewCapacity(dto.CapacityWeight, dto.CapacityHeight)
	if err != nil {
		return nil, err
	}

	var route []string
	if err = json.Unmarshal([]byte(dto.Route), &route); err != nil {
		return nil, err
	}

	bookingIDs := make([]kernel.UUID, 0, len(dto.BookingRefs))
	for _, ref := range dto.BookingRefs {
		bookingID, idErr := kernel.UUIDFromBytes(ref.BookingID[:])
		if idErr != nil {
			return nil, idErr
		}
		bookingIDs = append(bookingIDs, bookingID)
	}

	return vehicle.RestoreVehicle(
		id, ownerID, driverID, dto.VehicleNumber, vehicleType, capacity,
		dto.Remaining, route, status, dto.Rent, dto.Advance, bookingIDs)
}
