package queries

import (
	"errors"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery retrieves every driver account. Owners use the list to pick
// a driver for assignment.
type ListDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewListDriversQuery creates a driver list query.
func NewListDriversQuery() (ListDriversQuery, error) {
	return ListDriversQuery{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

// ListDriversQueryResponse is one driver in the driver list read model.
type ListDriversQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Mobile        string
	AverageRating float64
	ReviewCount   int
}
