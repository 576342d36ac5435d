package queries

import (
	"context"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileQueryHandler reads an account's profile from the database. The
// rating aggregate values are stored on the account row, so no aggregation
// runs at read time.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile queries.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFound error when no
// account exists under the given identifier. Reviews come back newest first.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	var resp GetProfileQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT name, username, mobile, role, average_rating, review_count
		FROM accounts
		WHERE id = ?
	`, query.AccountID().String()).Row()
	err := row.Scan(
		&resp.Name, &resp.Username, &resp.Mobile, &resp.Role,
		&resp.AverageRating, &resp.ReviewCount)
	if err != nil {
		return GetProfileQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"accountId", query.AccountID(), err)
	}
	resp.ID = query.AccountID()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT reviewer_id, rating, comment, created_at
		FROM reviews
		WHERE account_id = ?
		ORDER BY created_at DESC
	`, query.AccountID().String()).Rows()
	if err != nil {
		return GetProfileQueryResponse{}, err
	}
	defer rows.Close()

	resp.Reviews = make([]ReviewResponse, 0)
	for rows.Next() {
		var review ReviewResponse
		var reviewerID uuid.UUID

		if err = rows.Scan(&reviewerID, &review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			return GetProfileQueryResponse{}, err
		}
		if review.ReviewerID, err = kernel.UUIDFromBytes(reviewerID[:]); err != nil {
			return GetProfileQueryResponse{}, err
		}
		resp.Reviews = append(resp.Reviews, review)
	}

	if err = rows.Err(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	return resp, nil
}
