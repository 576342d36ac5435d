package vehicle

import (
	"errors"
	"fmt"

	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

// ErrCapacityIsNotConstructed indicates that a Capacity was not created
// through the NewCapacity constructor.
var ErrCapacityIsNotConstructed = errors.New("Capacity must be created via NewCapacity constructor")

// Capacity is the load a vehicle can carry: weight in kilograms and an
// optional height limit in feet. Weight is the dimension the capacity ledger
// reserves against.
type Capacity struct {
	weight float64
	height float64
	guard  guard.ConstructorGuard
}

// NewCapacity creates a validated Capacity. Weight must be positive; height
// may be zero when the vehicle has no height limit.
func NewCapacity(weight float64, height float64) (Capacity, error) {
	if weight <= 0 {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause(
			"capacity weight",
			fmt.Errorf("%v is not greater than 0", weight),
		)
	}
	if height < 0 {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause(
			"capacity height",
			fmt.Errorf("%v is negative", height),
		)
	}

	return Capacity{
		weight: weight,
		height: height,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Capacity was created via NewCapacity.
func (c Capacity) Validate() error {
	return c.guard.Validate(ErrCapacityIsNotConstructed)
}

// Weight returns the weight capacity in kilograms.
func (c Capacity) Weight() float64 {
	return c.weight
}

// Height returns the height limit in feet, 0 when unset.
func (c Capacity) Height() float64 {
	return c.height
}
