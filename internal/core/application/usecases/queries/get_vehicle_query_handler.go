package queries

import (
	"context"

	"farmfreight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVehicleQueryHandler reads one vehicle from the database. It shares the
// column list and row mapping with the vehicle list queries.
type GetVehicleQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleQueryHandler creates a handler for vehicle lookups.
func NewGetVehicleQueryHandler(db *gorm.DB) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{db: db}
}

// Handle executes the lookup. Fails with an ObjectNotFound error for an
// unknown vehicle identifier.
func (h GetVehicleQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleQuery,
) (ListVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListVehiclesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		vehicleColumns+`WHERE id = ?`, query.VehicleID().String()).Rows()
	if err != nil {
		return ListVehiclesQueryResponse{}, err
	}
	defer rows.Close()

	vehicles, err := scanVehicleRows(rows)
	if err != nil {
		return ListVehiclesQueryResponse{}, err
	}
	if len(vehicles) == 0 {
		return ListVehiclesQueryResponse{}, errs.NewObjectNotFoundError(
			"vehicleId", query.VehicleID())
	}

	return vehicles[0], nil
}
