package domain

import "sort"

type VehicleType string

const (
	VehicleScooter      VehicleType = "scooter"
	VehicleStandardBike VehicleType = "standard_bike"
	VehiclePremiumBike  VehicleType = "premium_bike"
	VehicleSuperPremium VehicleType = "super_premium"
)

// VehicleRates holds the per-hour rate card for one category. Floor and
// ceiling are operational guard rails on the rate card itself, not a runtime
// clamp on computed prices.
type VehicleRates struct {
	DisplayName string
	BaseRate    float64
	FloorRate   float64
	CeilingRate float64
}

var VehicleRateCard = map[VehicleType]VehicleRates{
	VehicleScooter: {
		DisplayName: "Scooter (Activa, Jupiter)",
		BaseRate:    60.0,
		FloorRate:   40.0,
		CeilingRate: 150.0,
	},
	VehicleStandardBike: {
		DisplayName: "Standard Bike (Pulsar, FZ)",
		BaseRate:    80.0,
		FloorRate:   50.0,
		CeilingRate: 200.0,
	},
	VehiclePremiumBike: {
		DisplayName: "Premium Bike (RE Classic, Dominar)",
		BaseRate:    150.0,
		FloorRate:   100.0,
		CeilingRate: 375.0,
	},
	VehicleSuperPremium: {
		DisplayName: "Super Premium (Himalayan, KTM 390)",
		BaseRate:    250.0,
		FloorRate:   160.0,
		CeilingRate: 625.0,
	},
}

// ParseVehicleType validates a raw category string at the input boundary.
func ParseVehicleType(raw string) (VehicleType, error) {
	v := VehicleType(raw)
	if _, ok := VehicleRateCard[v]; !ok {
		return "", &InvalidInputError{
			Field:   "vehicle_type",
			Value:   raw,
			Allowed: VehicleTypeNames(),
		}
	}
	return v, nil
}

// VehicleTypeNames returns all valid category names, sorted for stable
// error messages and API responses.
func VehicleTypeNames() []string {
	names := make([]string, 0, len(VehicleRateCard))
	for v := range VehicleRateCard {
		names = append(names, string(v))
	}
	sort.Strings(names)
	return names
}
