// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: authorization,
// validation, transaction management, and persistence.
package commands

import (
	"context"

	"farmfreight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a
	// transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a
	// transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// BookingRepoFactory provides access to the booking repository within a
	// transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// UoW manages transactions across the account, vehicle and booking
	// aggregates. Used for commands that coordinate changes between multiple
	// aggregate types, like reserving vehicle capacity while creating a
	// booking.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   bookingRepo := uow.BookingRepository()
	//   vehicleRepo := uow.VehicleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		AccountRepoFactory
		VehicleRepoFactory
		BookingRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
