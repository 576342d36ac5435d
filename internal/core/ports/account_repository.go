// Package ports defines repository interfaces for the farmfreight domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"farmfreight/internal/core/domain/model/account"
	"farmfreight/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates,
// including their review profiles.
type AccountRepository interface {
	// Add persists a new account aggregate to storage. Fails with a
	// DuplicateKey error when the username is taken.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier, review
	// profile included.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByUsername retrieves an account by its unique login name.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)
}
