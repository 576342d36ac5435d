package queries

import (
	"context"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDriversQueryHandler reads the driver roster from the database.
type ListDriversQueryHandler struct {
	db *gorm.DB
}

// NewListDriversQueryHandler creates a handler for driver list queries.
func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

// Handle executes the query. Drivers come back sorted by name.
func (h ListDriversQueryHandler) Handle(
	ctx context.Context,
	query ListDriversQuery,
) ([]ListDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, mobile, average_rating, review_count
		FROM accounts
		WHERE role = ?
		ORDER BY name
	`, auth.RoleDriver.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]ListDriversQueryResponse, 0)
	for rows.Next() {
		var resp ListDriversQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.Name, &resp.Mobile, &resp.AverageRating, &resp.ReviewCount)
		if err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
