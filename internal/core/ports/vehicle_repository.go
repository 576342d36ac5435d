package ports

import (
	"context"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates,
// including their capacity ledger state.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage. Fails with a
	// DuplicateKey error when the vehicle number is taken.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Delete removes a vehicle aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle aggregate and locks its row for the
	// remainder of the transaction. Reserve and release go through this so
	// concurrent ledger operations on one vehicle serialize at the database.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
}
