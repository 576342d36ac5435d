package account

import (
	"errors"
	"time"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through the NewAccount or RestoreAccount factory functions.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is the aggregate root for a registered user: a farmer, a vehicle
// owner or a driver. Besides identity and credentials it carries the account's
// review profile, an append-only list of reviews with a derived average rating
// and review count.
//
// Invariants:
//   - username is non-empty (uniqueness is enforced by the storage adapter)
//   - role is one of farmer, owner, driver
//   - averageRating and reviewCount are always consistent with reviews
type Account struct {
	id            kernel.UUID
	name          string
	username      string
	passwordHash  string
	mobile        string
	role          auth.Role
	reviews       []Review
	averageRating float64
	reviewCount   int
	guard         guard.ConstructorGuard
}

// NewAccount creates a new Account with an empty review profile.
func NewAccount(
	id kernel.UUID, name string, username string, passwordHash string, mobile string, role auth.Role,
) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setName(name),
		account.setUsername(username),
		account.setPasswordHash(passwordHash),
		account.setMobile(mobile),
		account.setRole(role),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount reconstructs an Account from persistence, including its
// review profile. The derived average and count are recomputed from the
// restored reviews rather than trusted from storage.
func RestoreAccount(
	id kernel.UUID, name string, username string, passwordHash string, mobile string, role auth.Role,
	reviews []Review,
) (*Account, error) {
	account, err := NewAccount(id, name, username, passwordHash, mobile, role)
	if err != nil {
		return nil, err
	}

	for _, review := range reviews {
		if err := review.Validate(); err != nil {
			return nil, err
		}
	}
	account.reviews = reviews
	account.recomputeRating()

	return account, nil
}

// Validate ensures the Account was created via a constructor function.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by identity.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Username returns the unique login name.
func (a *Account) Username() string {
	return a.username
}

// PasswordHash returns the bcrypt hash of the account password.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Mobile returns the contact number.
func (a *Account) Mobile() string {
	return a.mobile
}

// Role returns the account's role.
func (a *Account) Role() auth.Role {
	return a.role
}

// Reviews returns the reviews left on this account, oldest first.
func (a *Account) Reviews() []Review {
	return a.reviews
}

// AverageRating returns the arithmetic mean of all review ratings, 0 when the
// account has no reviews.
func (a *Account) AverageRating() float64 {
	return a.averageRating
}

// ReviewCount returns the number of reviews on this account.
func (a *Account) ReviewCount() int {
	return a.reviewCount
}

// AddReview appends a review to the account's profile and recomputes the
// average rating and review count in the same mutation.
func (a *Account) AddReview(reviewerID kernel.UUID, rating int, comment string, at time.Time) error {
	review, err := NewReview(reviewerID, rating, comment, at)
	if err != nil {
		return err
	}

	a.reviews = append(a.reviews, review)
	a.recomputeRating()
	return nil
}

func (a *Account) recomputeRating() {
	a.reviewCount = len(a.reviews)
	if a.reviewCount == 0 {
		a.averageRating = 0
		return
	}

	sum := 0
	for _, review := range a.reviews {
		sum += review.rating
	}
	a.averageRating = float64(sum) / float64(a.reviewCount)
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	a.username = username
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValueIsRequiredError("mobile")
	}
	a.mobile = mobile
	return nil
}

func (a *Account) setRole(role auth.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
