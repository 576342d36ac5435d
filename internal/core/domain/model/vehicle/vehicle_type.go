package vehicle

import "farmfreight/internal/pkg/errs"

// Type classifies the vehicle body.
type Type string

const (
	TypeTruck     Type = "Truck"
	TypeTractor   Type = "Tractor"
	TypeTempo     Type = "Tempo"
	TypeMiniTruck Type = "Mini Truck"
	TypeOther     Type = "Other"
)

// NewTypeFromString parses a vehicle type name. An empty string defaults to
// Truck.
func NewTypeFromString(s string) (Type, error) {
	if s == "" {
		return TypeTruck, nil
	}
	vehicleType := Type(s)
	if err := vehicleType.Validate(); err != nil {
		return "", err
	}
	return vehicleType, nil
}

// Validate reports whether the type is one of the known vehicle types.
func (t Type) Validate() error {
	switch t {
	case TypeTruck, TypeTractor, TypeTempo, TypeMiniTruck, TypeOther:
		return nil
	default:
		return errs.NewValueIsInvalidError("vehicle type")
	}
}

func (t Type) String() string {
	return string(t)
}
