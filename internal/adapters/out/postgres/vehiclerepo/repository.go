package vehiclerepo

import (
	"context"
	"errors"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/core/domain/model/vehicle"
	"farmfreight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database. A taken vehicle number surfaces as
// a DuplicateKey error.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("vehicleNumber", err)
		}
		return errs.NewStorageUnavailableError("add vehicle", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle to the database. Booking refs are replaced
// wholesale so releases drop their rows instead of leaving orphans behind.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	refs := dto.BookingRefs
	dto.BookingRefs = nil

	result := r.db.WithContext(ctx).Omit("BookingRefs").Save(&dto)
	if result.Error != nil {
		return errs.NewStorageUnavailableError("update vehicle", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicleId", aggregate.ID().String())
	}

	if err = r.db.WithContext(ctx).
		Where("vehicle_id = ?", dto.ID).Delete(&BookingRefDTO{}).Error; err != nil {
		return errs.NewStorageUnavailableError("update vehicle refs", err)
	}
	if len(refs) > 0 {
		if err = r.db.WithContext(ctx).Create(&refs).Error; err != nil {
			return errs.NewStorageUnavailableError("update vehicle refs", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a vehicle and its booking refs from the database.
func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewStorageUnavailableError("delete vehicle", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicleId", id.String())
	}

	return nil
}

// Get retrieves a vehicle by ID, booking refs included.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a vehicle and locks its row until the transaction
// ends. Reserve and release run behind this lock so concurrent ledger
// operations on the same vehicle serialize at the database.
func (r *GormVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, id, true)
}

func (r *GormVehicleRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Preload("BookingRefs")
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "vehicles"}})
	}

	var dto VehicleDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicleId", id.String())
		}
		return nil, errs.NewStorageUnavailableError("get vehicle", err)
	}

	return toDomain(dto)
}
