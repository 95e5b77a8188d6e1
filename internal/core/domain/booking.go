package domain

import "time"

// Booking is one historical rental record, the unit the profile analyzer
// aggregates over. The datagen tool and both booking sources (CSV, Postgres)
// produce this shape.
type Booking struct {
	BookingID      string
	BookedAt       time.Time
	RentalStart    time.Time
	DurationHours  int
	VehicleType    VehicleType
	PickupLocation string
	BaseRatePerHr  float64
	DayType        DayType
	IsHoliday      bool
	IsWeekend      bool
	Season         string
	Weather        string
}
