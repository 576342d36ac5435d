package queries

import (
	"errors"

	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

var ErrSearchVehiclesQueryIsNotConstructed = errors.New(
	"SearchVehiclesQuery must be created via NewSearchVehiclesQuery constructor",
)

// SearchVehiclesQuery finds bookable vehicles heading to a destination. Only
// available vehicles with an assigned driver qualify; the destination is the
// last stop of the route and matches case-insensitively. When nothing matches
// the destination, all bookable vehicles come back as a fallback so the farmer
// still has options.
type SearchVehiclesQuery struct {
	destination string

	guard guard.ConstructorGuard
}

// NewSearchVehiclesQuery creates a validated destination search query.
func NewSearchVehiclesQuery(destination string) (SearchVehiclesQuery, error) {
	if destination == "" {
		return SearchVehiclesQuery{}, errs.NewValueIsRequiredError("destination")
	}

	return SearchVehiclesQuery{
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrSearchVehiclesQueryIsNotConstructed)
}

// Destination returns the destination being searched for.
func (q SearchVehiclesQuery) Destination() string {
	return q.destination
}
