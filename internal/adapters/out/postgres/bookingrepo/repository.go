package bookingrepo

import (
	"context"
	"errors"

	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBookingRepository implements BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new booking to the database, history included.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("bookingId", err)
		}
		return errs.NewStorageUnavailableError("add booking", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing booking to the database. History rows upsert on
// their sequence number, so already persisted entries stay untouched and new
// entries append.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return errs.NewStorageUnavailableError("update booking", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bookingId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a booking by ID, history included.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a booking and locks its row until the transaction
// ends. Payment confirmation runs behind this lock so the dual confirmation
// race cannot complete a booking twice.
func (r *GormBookingRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	return r.get(ctx, id, true)
}

func (r *GormBookingRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") })
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "bookings"}})
	}

	var dto BookingDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bookingId", id.String())
		}
		return nil, errs.NewStorageUnavailableError("get booking", err)
	}

	return toDomain(dto)
}

// GetActiveByVehicle retrieves the vehicle's bookings in a non-terminal
// status, oldest first. Used to refuse vehicle removal while work is in
// flight.
func (r *GormBookingRepository) GetActiveByVehicle(
	ctx context.Context, vehicleID kernel.UUID,
) ([]*booking.Booking, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BookingDTO
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Where("vehicle_id = ? AND status NOT IN ?", vehicleID.Bytes(),
			[]string{booking.StatusCompleted.String(), booking.StatusCancelled.String()}).
		Order("booking_date").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageUnavailableError("get active bookings", err)
	}

	bookings := make([]*booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, aggregate)
	}

	return bookings, nil
}
