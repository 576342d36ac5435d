package queries

import (
	"errors"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery retrieves the vehicles visible to the acting principal.
// Owners see their fleet, drivers see the vehicles they are assigned to, and
// farmers see every registered vehicle.
type ListVehiclesQuery struct {
	actor auth.Principal

	guard guard.ConstructorGuard
}

// NewListVehiclesQuery creates a query scoped to the given principal.
func NewListVehiclesQuery(actor auth.Principal) (ListVehiclesQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListVehiclesQuery{}, err
	}

	return ListVehiclesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

// Actor returns the acting principal.
func (q ListVehiclesQuery) Actor() auth.Principal {
	return q.actor
}

// ListVehiclesQueryResponse is the vehicle read model, including the current
// capacity ledger state.
type ListVehiclesQueryResponse struct {
	ID             kernel.UUID
	OwnerID        kernel.UUID
	DriverID       *kernel.UUID
	VehicleNumber  string
	VehicleType    string
	CapacityWeight float64
	CapacityHeight float64
	Remaining      float64
	Route          []string
	Status         string
	Rent           string
	Advance        float64
}

// Destination returns the last stop of the vehicle's route, empty when the
// route is not populated.
func (r ListVehiclesQueryResponse) Destination() string {
	if len(r.Route) == 0 {
		return ""
	}
	return r.Route[len(r.Route)-1]
}
