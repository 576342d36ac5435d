package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// SearchVehiclesQueryHandler finds bookable vehicles for a destination. The
// candidate set (available, driver assigned, most remaining capacity first)
// comes from SQL; the destination match runs over the decoded route because
// the destination is the last element of a JSON column.
type SearchVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewSearchVehiclesQueryHandler creates a handler for destination searches.
func NewSearchVehiclesQueryHandler(db *gorm.DB) SearchVehiclesQueryHandler {
	return SearchVehiclesQueryHandler{db: db}
}

// Handle executes the search. Vehicles whose last route stop matches the
// destination case-insensitively come back sorted by remaining capacity; when
// none match, every bookable vehicle comes back instead.
func (h SearchVehiclesQueryHandler) Handle(
	ctx context.Context,
	query SearchVehiclesQuery,
) ([]ListVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		vehicleColumns + `
		WHERE status = 'available' AND driver_id IS NOT NULL
		ORDER BY remaining DESC`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates, err := scanVehicleRows(rows)
	if err != nil {
		return nil, err
	}

	destination := strings.ToLower(strings.TrimSpace(query.Destination()))
	matches := make([]ListVehiclesQueryResponse, 0)
	for _, candidate := range candidates {
		if strings.ToLower(strings.TrimSpace(candidate.Destination())) == destination {
			matches = append(matches, candidate)
		}
	}

	if len(matches) == 0 {
		return candidates, nil
	}
	return matches, nil
}
