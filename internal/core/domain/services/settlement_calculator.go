package services

import (
	"fmt"
	"regexp"
	"strconv"

	"farmfreight/internal/core/domain/model/booking"
)

// rentNumberPattern matches the first numeric token in a rent description,
// for example the 10 in "10 per kg".
var rentNumberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// SettlementCalculator is a domain service that computes the settlement when
// a sale bill is uploaded.
//
// Business rules:
//   - The rent amount is the first numeric token of the free-text rent
//     description; a description without digits counts as zero rent.
//   - final = bill amount - advance - rent.
//   - A positive final means the owner/driver side owes the farmer; a
//     negative one means the farmer still owes; zero means nobody owes.
//   - The result is stored immutably on the bill and never recomputed.
type SettlementCalculator struct{}

// NewSettlementCalculator creates a new SettlementCalculator instance.
func NewSettlementCalculator() SettlementCalculator {
	return SettlementCalculator{}
}

// Calculate computes the settlement for a bill amount against the advance
// already paid and the vehicle's rent description.
func (s SettlementCalculator) Calculate(billAmount float64, advance float64, rent string) (booking.Settlement, error) {
	final := billAmount - advance - s.ExtractRent(rent)

	switch {
	case final > 0:
		return booking.NewSettlement(final, 0,
			fmt.Sprintf("Owner/driver pays farmer ₹%v", final))
	case final < 0:
		owed := -final
		return booking.NewSettlement(0, owed,
			fmt.Sprintf("Farmer pays owner/driver ₹%v", owed))
	default:
		return booking.NewSettlement(0, 0, "No further payment needed")
	}
}

// ExtractRent returns the numeric rent amount from a rent description, 0 when
// the description carries no digits.
func (s SettlementCalculator) ExtractRent(rent string) float64 {
	token := rentNumberPattern.FindString(rent)
	if token == "" {
		return 0
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return value
}
