package booking

import (
	"errors"
	"time"

	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

// ErrRatingIsNotConstructed indicates that a Rating was not created through
// the NewRating constructor.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating is the farmer's one-time rating of a completed booking: one score
// for the driver, one for the owner, and an optional comment.
type Rating struct {
	driverRating int
	ownerRating  int
	comment      string
	ratedAt      time.Time
	guard        guard.ConstructorGuard
}

// NewRating creates a validated Rating. Both scores must lie in [1, 5].
func NewRating(driverRating int, ownerRating int, comment string, ratedAt time.Time) (Rating, error) {
	if driverRating < MinRating || driverRating > MaxRating {
		return Rating{}, errs.NewValueIsOutOfRangeError("driverRating", driverRating, MinRating, MaxRating)
	}
	if ownerRating < MinRating || ownerRating > MaxRating {
		return Rating{}, errs.NewValueIsOutOfRangeError("ownerRating", ownerRating, MinRating, MaxRating)
	}
	if ratedAt.IsZero() {
		return Rating{}, errs.NewValueIsRequiredError("ratedAt")
	}

	return Rating{
		driverRating: driverRating,
		ownerRating:  ownerRating,
		comment:      comment,
		ratedAt:      ratedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Rating was created via NewRating.
func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// DriverRating returns the score given to the driver.
func (r Rating) DriverRating() int {
	return r.driverRating
}

// OwnerRating returns the score given to the owner.
func (r Rating) OwnerRating() int {
	return r.ownerRating
}

// Comment returns the optional comment.
func (r Rating) Comment() string {
	return r.comment
}

// RatedAt returns when the rating was recorded.
func (r Rating) RatedAt() time.Time {
	return r.ratedAt
}
