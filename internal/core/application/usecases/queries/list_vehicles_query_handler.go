package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const vehicleColumns = `
	SELECT
		id,
		owner_id,
		driver_id,
		vehicle_number,
		vehicle_type,
		capacity_weight,
		capacity_height,
		remaining,
		route,
		status,
		rent,
		advance
	FROM vehicles
`

// ListVehiclesQueryHandler reads vehicles straight from the database. Role
// scoping happens in the WHERE clause: owners get their fleet, drivers their
// assignments, farmers the full list.
type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewListVehiclesQueryHandler creates a handler for vehicle list queries.
func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by vehicle number.
func (h ListVehiclesQueryHandler) Handle(
	ctx context.Context,
	query ListVehiclesQuery,
) ([]ListVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter, scoped, err := vehicleListFilter(query.Actor().Role())
	if err != nil {
		return nil, err
	}

	var rows *sql.Rows
	if scoped {
		rows, err = h.db.WithContext(ctx).Raw(
			vehicleColumns+filter, query.Actor().ID().String()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(vehicleColumns + filter).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVehicleRows(rows)
}

// vehicleListFilter returns the WHERE clause scoping the vehicle list to the
// acting role and whether the clause binds the actor id. Farmers browse the
// whole fleet, so their clause is unscoped.
func vehicleListFilter(role auth.Role) (string, bool, error) {
	switch role {
	case auth.RoleOwner:
		return `WHERE owner_id = ? ORDER BY vehicle_number`, true, nil
	case auth.RoleDriver:
		return `WHERE driver_id = ? ORDER BY vehicle_number`, true, nil
	case auth.RoleFarmer:
		return `ORDER BY vehicle_number`, false, nil
	default:
		return "", false, errs.NewValueIsInvalidError("role")
	}
}

// scanVehicleRows maps vehicle rows to the read model. Shared with the
// destination search query, which selects the same columns.
func scanVehicleRows(rows *sql.Rows) ([]ListVehiclesQueryResponse, error) {
	vehicles := make([]ListVehiclesQueryResponse, 0)
	for rows.Next() {
		var resp ListVehiclesQueryResponse
		var id, ownerID uuid.UUID
		var driverID uuid.NullUUID
		var route []byte

		err := rows.Scan(
			&id,
			&ownerID,
			&driverID,
			&resp.VehicleNumber,
			&resp.VehicleType,
			&resp.CapacityWeight,
			&resp.CapacityHeight,
			&resp.Remaining,
			&route,
			&resp.Status,
			&resp.Rent,
			&resp.Advance,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		if driverID.Valid {
			driver, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &driver
		}
		if len(route) > 0 {
			if err = json.Unmarshal(route, &resp.Route); err != nil {
				return nil, err
			}
		}

		vehicles = append(vehicles, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
