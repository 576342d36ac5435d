package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and repositories bound to the running transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// AccountRepository returns an AccountRepository bound to the current
	// transaction.
	AccountRepository() AccountRepository

	// VehicleRepository returns a VehicleRepository bound to the current
	// transaction.
	VehicleRepository() VehicleRepository

	// BookingRepository returns a BookingRepository bound to the current
	// transaction.
	BookingRepository() BookingRepository
}
