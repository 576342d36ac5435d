package account

import (
	"errors"
	"time"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

// ErrReviewIsNotConstructed indicates that a Review was not created through
// the NewReview constructor.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is an immutable entry on an account's profile left by the farmer of
// a completed booking.
type Review struct {
	reviewerID kernel.UUID
	rating     int
	comment    string
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewReview creates a validated review. Rating must lie in [1, 5].
func NewReview(reviewerID kernel.UUID, rating int, comment string, createdAt time.Time) (Review, error) {
	if err := reviewerID.Validate(); err != nil {
		return Review{}, err
	}
	if rating < MinRating || rating > MaxRating {
		return Review{}, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	if createdAt.IsZero() {
		return Review{}, errs.NewValueIsRequiredError("createdAt")
	}

	return Review{
		reviewerID: reviewerID,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Review was created via NewReview.
func (r Review) Validate() error {
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// ReviewerID returns the account that left the review.
func (r Review) ReviewerID() kernel.UUID {
	return r.reviewerID
}

// Rating returns the 1 to 5 rating value.
func (r Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r Review) Comment() string {
	return r.comment
}

// CreatedAt returns when the review was left.
func (r Review) CreatedAt() time.Time {
	return r.createdAt
}
