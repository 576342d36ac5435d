package queries

import (
	"errors"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrGetVehicleQueryIsNotConstructed = errors.New(
	"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
)

// GetVehicleQuery retrieves a single vehicle with its ledger state.
type GetVehicleQuery struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehicleQuery creates a validated vehicle lookup query.
func NewGetVehicleQuery(vehicleID kernel.UUID) (GetVehicleQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleQuery{}, err
	}

	return GetVehicleQuery{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

// VehicleID returns the vehicle being looked up.
func (q GetVehicleQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}
