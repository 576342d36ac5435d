// Package services provides domain services that implement business logic
// spanning more than one aggregate.
//
// The package includes:
//   - SettlementCalculator: computes the settlement stored on a bill from the
//     bill amount, the advance and the vehicle's rent description
package services
