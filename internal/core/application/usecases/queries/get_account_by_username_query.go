package queries

import (
	"errors"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

var ErrGetAccountByUsernameQueryIsNotConstructed = errors.New(
	"GetAccountByUsernameQuery must be created via NewGetAccountByUsernameQuery constructor",
)

// GetAccountByUsernameQuery retrieves an account by its login name. The
// response carries the password hash for credential verification at the
// request layer; it must never be serialized outward.
type GetAccountByUsernameQuery struct {
	username string

	guard guard.ConstructorGuard
}

// NewGetAccountByUsernameQuery creates a validated account lookup query.
func NewGetAccountByUsernameQuery(username string) (GetAccountByUsernameQuery, error) {
	if username == "" {
		return GetAccountByUsernameQuery{}, errs.NewValueIsRequiredError("username")
	}

	return GetAccountByUsernameQuery{
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountByUsernameQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountByUsernameQueryIsNotConstructed)
}

// Username returns the login name being looked up.
func (q GetAccountByUsernameQuery) Username() string {
	return q.username
}

// GetAccountByUsernameQueryResponse is the account read model for
// authentication.
type GetAccountByUsernameQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Username     string
	PasswordHash string
	Mobile       string
	Role         string
}
