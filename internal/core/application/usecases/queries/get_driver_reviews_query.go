package queries

import (
	"errors"
	"time"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrGetDriverReviewsQueryIsNotConstructed = errors.New(
	"GetDriverReviewsQuery must be created via NewGetDriverReviewsQuery constructor",
)

// GetDriverReviewsQuery retrieves a driver's review profile: the running
// average, the review count and the individual reviews.
type GetDriverReviewsQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverReviewsQuery creates a validated review profile query.
func NewGetDriverReviewsQuery(driverID kernel.UUID) (GetDriverReviewsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverReviewsQuery{}, err
	}

	return GetDriverReviewsQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverReviewsQueryIsNotConstructed)
}

// DriverID returns the driver whose profile is requested.
func (q GetDriverReviewsQuery) DriverID() kernel.UUID {
	return q.driverID
}

// ReviewResponse is one review in the profile read model.
type ReviewResponse struct {
	ReviewerID kernel.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// GetDriverReviewsQueryResponse is the driver review profile read model.
type GetDriverReviewsQueryResponse struct {
	DriverID      kernel.UUID
	Name          string
	AverageRating float64
	ReviewCount   int
	Reviews       []ReviewResponse
}
