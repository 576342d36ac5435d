package queries

import (
	"errors"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves an account's own profile: identity fields plus the
// review aggregate and the individual reviews.
type GetProfileQuery struct {
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a validated profile query.
func NewGetProfileQuery(accountID kernel.UUID) (GetProfileQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}

	return GetProfileQuery{
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// AccountID returns the account whose profile is requested.
func (q GetProfileQuery) AccountID() kernel.UUID {
	return q.accountID
}

// GetProfileQueryResponse is the account profile read model.
type GetProfileQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Username      string
	Mobile        string
	Role          string
	AverageRating float64
	ReviewCount   int
	Reviews       []ReviewResponse
}
