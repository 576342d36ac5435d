package queries

import (
	"context"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBookingHistoryQueryHandler reads a booking's audit trail from the
// database. Entries come back in recording order; a booking with no history
// rows still answers with an empty trail as long as the booking exists.
type GetBookingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetBookingHistoryQueryHandler creates a handler for history queries.
func NewGetBookingHistoryQueryHandler(db *gorm.DB) GetBookingHistoryQueryHandler {
	return GetBookingHistoryQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFound error for an
// unknown booking identifier.
func (h GetBookingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetBookingHistoryQuery,
) ([]BookingHistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var bookingID uuid.UUID
	row := h.db.WithContext(ctx).Raw(
		`SELECT id FROM bookings WHERE id = ?`, query.BookingID().String()).Row()
	if err := row.Scan(&bookingID); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("bookingId", query.BookingID(), err)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT action, actor_id, role, amount, counterparty_id, timestamp
		FROM booking_history
		WHERE booking_id = ?
		ORDER BY seq
	`, query.BookingID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]BookingHistoryEntryResponse, 0)
	for rows.Next() {
		var entry BookingHistoryEntryResponse
		var actorID uuid.UUID
		var counterpartyID uuid.NullUUID

		err = rows.Scan(
			&entry.Action, &actorID, &entry.Role,
			&entry.Amount, &counterpartyID, &entry.Timestamp)
		if err != nil {
			return nil, err
		}
		if entry.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}
		if counterpartyID.Valid {
			counterparty, idErr := kernel.UUIDFromBytes(counterpartyID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.CounterpartyID = &counterparty
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
