package accountrepo

import (
	"context"
	"errors"

	"farmfreight/internal/core/domain/model/account"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database. A taken username surfaces as a
// DuplicateKey error.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("username", err)
		}
		return errs.NewStorageUnavailableError("add account", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account to the database, review rows included.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return errs.NewStorageUnavailableError("update account", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("accountId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by ID, review profile included.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("accountId", id.String())
		}
		return nil, errs.NewStorageUnavailableError("get account", err)
	}

	return toDomain(dto)
}

// GetByUsername retrieves an account by its unique login name.
func (r *GormAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto AccountDTO
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, errs.NewStorageUnavailableError("get account by username", err)
	}

	return toDomain(dto)
}
