package auth

import (
	"errors"
	"fmt"

	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed indicates that a Principal was not created
// through the NewPrincipal constructor.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the authenticated identity a use case acts on behalf of. The
// engine never sees credentials or tokens, only a validated id/role pair
// produced by the request layer.
//
// Principal carries the authorization gate: stateless predicates over role and
// identity that fail with a Forbidden error before any mutation takes place.
type Principal struct {
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewPrincipal creates a validated Principal.
func NewPrincipal(id kernel.UUID, role Role) (Principal, error) {
	p := Principal{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setRole(role)); err != nil {
		return Principal{}, err
	}

	return p, nil
}

// Validate ensures the Principal was created via NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// ID returns the acting account's identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the acting account's role.
func (p Principal) Role() Role {
	return p.role
}

// RequireRole fails with a Forbidden error unless the principal holds the
// given role.
func (p Principal) RequireRole(role Role) error {
	if p.role != role {
		return errs.NewForbiddenError(
			fmt.Sprintf("role %s required, actor role is %s", role, p.role))
	}
	return nil
}

// RequireActor fails with a Forbidden error unless the principal is the given
// account. The subject names what is being protected in the error message.
func (p Principal) RequireActor(accountID kernel.UUID, subject string) error {
	if !p.id.IsEqual(accountID) {
		return errs.NewForbiddenError(fmt.Sprintf("actor is not the %s", subject))
	}
	return nil
}

func (p *Principal) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Principal) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
