package queries

import (
	"context"
	"database/sql"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListBookingsQueryHandler reads bookings straight from the database. Uses
// direct SQL for read performance in the CQRS pattern; role scoping happens in
// the WHERE clause, never in application code after the fact.
type ListBookingsQueryHandler struct {
	db *gorm.DB
}

// NewListBookingsQueryHandler creates a handler for booking list queries.
func NewListBookingsQueryHandler(db *gorm.DB) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{db: db}
}

// Handle executes the query. Results come back newest booking first.
func (h ListBookingsQueryHandler) Handle(
	ctx context.Context,
	query ListBookingsQuery,
) ([]ListBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const columns = `
		SELECT
			id,
			vehicle_id,
			farmer_id,
			crop_name,
			required_weight,
			status,
			pickup_location,
			delivery_location,
			booking_date,
			dispatch_date,
			delivery_date,
			bill_amount,
			settlement_message,
			ready_for_rating
		FROM bookings
	`

	filter, err := bookingListFilter(query.Actor().Role())
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(columns+filter, query.Actor().ID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]ListBookingsQueryResponse, 0)
	for rows.Next() {
		var resp ListBookingsQueryResponse
		var id, vehicleID, farmerID uuid.UUID
		var dispatchDate, deliveryDate sql.NullTime
		var billAmount sql.NullFloat64
		var settlementMessage sql.NullString

		err = rows.Scan(
			&id,
			&vehicleID,
			&farmerID,
			&resp.CropName,
			&resp.RequiredWeight,
			&resp.Status,
			&resp.PickupLocation,
			&resp.DeliveryLocation,
			&resp.BookingDate,
			&dispatchDate,
			&deliveryDate,
			&billAmount,
			&settlementMessage,
			&resp.ReadyForRating,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		if resp.FarmerID, err = kernel.UUIDFromBytes(farmerID[:]); err != nil {
			return nil, err
		}
		if dispatchDate.Valid {
			resp.DispatchDate = &dispatchDate.Time
		}
		if deliveryDate.Valid {
			resp.DeliveryDate = &deliveryDate.Time
		}
		if billAmount.Valid {
			resp.BillAmount = &billAmount.Float64
		}
		resp.SettlementMessage = settlementMessage.String

		bookings = append(bookings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// bookingListFilter returns the WHERE clause scoping the booking list to the
// acting role. Every clause binds the actor id exactly once.
func bookingListFilter(role auth.Role) (string, error) {
	switch role {
	case auth.RoleFarmer:
		return `WHERE farmer_id = ? ORDER BY booking_date DESC`, nil
	case auth.RoleOwner:
		return `WHERE vehicle_id IN (SELECT id FROM vehicles WHERE owner_id = ?)
			ORDER BY booking_date DESC`, nil
	case auth.RoleDriver:
		return `WHERE vehicle_id IN (SELECT id FROM vehicles WHERE driver_id = ?)
			ORDER BY booking_date DESC`, nil
	default:
		return "", errs.NewValueIsInvalidError("role")
	}
}
