package domain

// PriceResult is the complete quote: the final price plus every intermediate
// quantity and the ordered explanation trail. Constructed once per call and
// never mutated afterward.
type PriceResult struct {
	FinalPrice          float64 `json:"final_price"`
	HourlyRate          float64 `json:"hourly_rate"`
	EffectiveHourlyRate float64 `json:"effective_hourly_rate"`

	VehicleType    VehicleType `json:"vehicle_type"`
	VehicleName    string      `json:"vehicle_name"`
	BaseRate       float64     `json:"base_rate"`
	DurationHours  int         `json:"duration_hours"`
	RentalDateTime string      `json:"rental_datetime"`

	Demand DemandResult `json:"demand"`

	SurgeMultiplier  float64 `json:"surge_multiplier"`
	OverrideFactor   float64 `json:"override_factor"`
	FinalMultiplier  float64 `json:"final_multiplier"`
	DurationDiscount float64 `json:"duration_discount"`

	OverridesDetected  []DetectedOverride `json:"overrides_detected"`
	OverrideWasCapped  bool               `json:"override_was_capped"`
	Warnings           []string           `json:"warnings"`
	Explanation        []string           `json:"explanation"`
}
