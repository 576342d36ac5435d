package queries

import (
	"context"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAccountByUsernameQueryHandler reads one account row for credential
// verification at login.
type GetAccountByUsernameQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountByUsernameQueryHandler creates a handler for account lookups.
func NewGetAccountByUsernameQueryHandler(db *gorm.DB) GetAccountByUsernameQueryHandler {
	return GetAccountByUsernameQueryHandler{db: db}
}

// Handle executes the lookup. Fails with an ObjectNotFound error for an
// unknown username.
func (h GetAccountByUsernameQueryHandler) Handle(
	ctx context.Context,
	query GetAccountByUsernameQuery,
) (GetAccountByUsernameQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountByUsernameQueryResponse{}, err
	}

	var resp GetAccountByUsernameQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, username, password_hash, mobile, role
		FROM accounts
		WHERE username = ?
	`, query.Username()).Row()
	err := row.Scan(&id, &resp.Name, &resp.Username, &resp.PasswordHash, &resp.Mobile, &resp.Role)
	if err != nil {
		return GetAccountByUsernameQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"username", query.Username(), err)
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetAccountByUsernameQueryResponse{}, err
	}

	return resp, nil
}
