package queries

import (
	"context"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverReviewsQueryHandler reads a driver's review profile from the
// database. The profile aggregate values are stored on the account row, so no
// aggregation runs at read time.
type GetDriverReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverReviewsQueryHandler creates a handler for review profile
// queries.
func NewGetDriverReviewsQueryHandler(db *gorm.DB) GetDriverReviewsQueryHandler {
	return GetDriverReviewsQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFound error when no driver
// account exists under the given identifier. Reviews come back newest first.
func (h GetDriverReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverReviewsQuery,
) (GetDriverReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverReviewsQueryResponse{}, err
	}

	var resp GetDriverReviewsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT name, average_rating, review_count
		FROM accounts
		WHERE id = ? AND role = ?
	`, query.DriverID().String(), auth.RoleDriver.String()).Row()
	if err := row.Scan(&resp.Name, &resp.AverageRating, &resp.ReviewCount); err != nil {
		return GetDriverReviewsQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"driverId", query.DriverID(), err)
	}
	resp.DriverID = query.DriverID()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT reviewer_id, rating, comment, created_at
		FROM reviews
		WHERE account_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().String()).Rows()
	if err != nil {
		return GetDriverReviewsQueryResponse{}, err
	}
	defer rows.Close()

	resp.Reviews = make([]ReviewResponse, 0)
	for rows.Next() {
		var review ReviewResponse
		var reviewerID uuid.UUID

		if err = rows.Scan(&reviewerID, &review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			return GetDriverReviewsQueryResponse{}, err
		}
		if review.ReviewerID, err = kernel.UUIDFromBytes(reviewerID[:]); err != nil {
			return GetDriverReviewsQueryResponse{}, err
		}
		resp.Reviews = append(resp.Reviews, review)
	}

	if err = rows.Err(); err != nil {
		return GetDriverReviewsQueryResponse{}, err
	}

	return resp, nil
}
