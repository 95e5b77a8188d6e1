// Package pricing composes the final quote: demand score to surge
// multiplier, auto-detected overrides, global clamping, duration discounts,
// and the explanation trail.
package pricing

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/port"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/calendar"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/demand"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/override"
)

// Global multiplier bounds. The surge multiplier is a linear map from demand
// score onto [MinMultiplier, MaxMultiplier]; overrides may push the raw
// product outside that range but the final multiplier is clamped back in.
const (
	MinMultiplier = 0.70
	MaxMultiplier = 2.00

	// BaselineDemand is the midpoint score; it lands at a multiplier of
	// 1.35, above cost by construction.
	BaselineDemand = 0.50

	// LowConfidenceDays is the lookahead beyond which quotes carry a
	// confidence warning.
	LowConfidenceDays = 90
)

// DiscountTier gives a flat rate reduction for rentals at or above a
// duration threshold.
type DiscountTier struct {
	ThresholdHours int
	Discount       float64
}

// DurationDiscountTiers are scanned longest-threshold-first; the first
// matching tier wins. Discounts apply to the already-surged rate.
var DurationDiscountTiers = []DiscountTier{
	{ThresholdHours: 24, Discount: 0.70},
	{ThresholdHours: 8, Discount: 0.80},
	{ThresholdHours: 4, Discount: 0.90},
}

// Engine is the pricing orchestrator. Stateless per call; the only shared
// state is the immutable profile and calendar data behind its collaborators.
type Engine struct {
	estimator port.DemandEstimator
	detector  *override.Detector
	cal       calendar.Calendar

	// now is swappable so warning paths are testable.
	now func() time.Time
}

func NewEngine(estimator port.DemandEstimator, detector *override.Detector, cal calendar.Calendar) *Engine {
	return &Engine{
		estimator: estimator,
		detector:  detector,
		cal:       cal,
		now:       time.Now,
	}
}

// Quote computes the dynamic price for a rental. It fails only on invalid
// input; everything downstream is total over its domain.
func (e *Engine) Quote(ctx context.Context, rentalAt time.Time, vehicleType string, durationHours int) (domain.PriceResult, error) {
	vtype, err := domain.ParseVehicleType(vehicleType)
	if err != nil {
		return domain.PriceResult{}, err
	}
	if durationHours < 1 {
		return domain.PriceResult{}, &domain.InvalidInputError{
			Field:   "duration_hours",
			Value:   durationHours,
			Allowed: []string{"integer >= 1"},
		}
	}

	warnings := e.bookingWarnings(rentalAt)

	demandResult := e.estimator.Estimate(rentalAt)

	surgeMultiplier := MinMultiplier + demandResult.Score*(MaxMultiplier-MinMultiplier)

	overrideFactor, detected, overrideCapped := e.detector.Detect(rentalAt, demandResult.DayType)

	rawMultiplier := surgeMultiplier * overrideFactor
	finalMultiplier := math.Max(MinMultiplier, math.Min(MaxMultiplier, rawMultiplier))

	durationDiscount := 1.0
	for _, tier := range DurationDiscountTiers {
		if durationHours >= tier.ThresholdHours {
			durationDiscount = tier.Discount
			break
		}
	}

	rates := domain.VehicleRateCard[vtype]
	effectiveHourly := rates.BaseRate * finalMultiplier * durationDiscount
	totalPrice := effectiveHourly * float64(durationHours)

	explanation := buildExplanation(rates, durationHours, demandResult,
		surgeMultiplier, overrideFactor, detected, overrideCapped,
		finalMultiplier, durationDiscount, effectiveHourly, totalPrice)

	if detected == nil {
		detected = []domain.DetectedOverride{}
	}
	if warnings == nil {
		warnings = []string{}
	}

	return domain.PriceResult{
		FinalPrice:          round2(totalPrice),
		HourlyRate:          rates.BaseRate,
		EffectiveHourlyRate: round2(effectiveHourly),
		VehicleType:         vtype,
		VehicleName:         rates.DisplayName,
		BaseRate:            rates.BaseRate,
		DurationHours:       durationHours,
		RentalDateTime:      rentalAt.Format("2006-01-02T15:04:05"),
		Demand:              demandResult,
		SurgeMultiplier:     demand.Round4(surgeMultiplier),
		OverrideFactor:      demand.Round4(overrideFactor),
		FinalMultiplier:     demand.Round4(finalMultiplier),
		DurationDiscount:    durationDiscount,
		OverridesDetected:   detected,
		OverrideWasCapped:   overrideCapped,
		Warnings:            warnings,
		Explanation:         explanation,
	}, nil
}

// bookingWarnings accumulates the non-fatal notes: past-dated rentals and
// far-future bookings with calendar-aware confidence tiers.
func (e *Engine) bookingWarnings(rentalAt time.Time) []string {
	var warnings []string

	now := e.now()
	if rentalAt.Before(now) {
		warnings = append(warnings, fmt.Sprintf(
			"Rental start %s is in the past; price shown for historical reference only.",
			rentalAt.Format("2006-01-02 15:04")))
	}

	daysAhead := int(midnight(rentalAt).Sub(midnight(now)).Hours() / 24)
	if daysAhead > LowConfidenceDays {
		switch {
		case e.cal.IsHoliday(rentalAt):
			name, _ := e.cal.HolidayName(rentalAt)
			warnings = append(warnings, fmt.Sprintf(
				"Booking is %d days ahead but %s is calendar-certain; high confidence pricing.",
				daysAhead, name))
		case calendar.MondayIndex(rentalAt.Weekday()) >= 5:
			warnings = append(warnings, fmt.Sprintf(
				"Booking is %d days ahead (>%d days). Weekend demand is predictable but seasonal factors may vary; medium confidence.",
				daysAhead, LowConfidenceDays))
		default:
			warnings = append(warnings, fmt.Sprintf(
				"Booking is %d days ahead (>%d days). Demand prediction confidence is lower for distant weekdays; weather and local events are uncertain.",
				daysAhead, LowConfidenceDays))
		}
	}

	return warnings
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
