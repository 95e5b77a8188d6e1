package pricing

import (
	"fmt"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var monthNames = [13]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// buildExplanation emits the ordered, human-readable pricing trail. Every
// intermediate quantity appears here; the trail is part of the contract, not
// incidental logging.
func buildExplanation(
	rates domain.VehicleRates,
	durationHours int,
	d domain.DemandResult,
	surge, overrideFactor float64,
	detected []domain.DetectedOverride,
	overrideCapped bool,
	finalMultiplier, durationDiscount, effectiveHourly, total float64,
) []string {
	steps := make([]string, 0, 12+len(detected))

	steps = append(steps, fmt.Sprintf("Vehicle: %s, base rate INR %.2f/hr", rates.DisplayName, rates.BaseRate))

	steps = append(steps, fmt.Sprintf("Day type: %s (%s), score %.2f",
		dayTypeLabel(d.DayType), weekdayNames[d.Weekday], d.DayTypeScore))

	steps = append(steps, fmt.Sprintf("Season (%s): score %.2f", monthNames[d.Month], d.SeasonScore))

	steps = append(steps, fmt.Sprintf("Time slot (%02d:00): score %.2f", d.Hour, d.TimeSlotScore))

	if d.IsHoliday && d.HolidayName != "" {
		steps = append(steps, "Holiday: "+d.HolidayName)
	}

	steps = append(steps, fmt.Sprintf("Blended demand score: %.2f (%s zone)", d.Score, d.Zone.Name))

	steps = append(steps, fmt.Sprintf("Surge multiplier: %.2fx", surge))

	if len(detected) > 0 {
		steps = append(steps, fmt.Sprintf("Auto-detected %d override(s):", len(detected)))
		for _, o := range detected {
			steps = append(steps, fmt.Sprintf("  [%s] %s: x%.2f (%s confidence), %s",
				o.Effect, o.Name, o.Factor, o.Confidence, o.Reason))
		}
		if overrideCapped {
			steps = append(steps, fmt.Sprintf("  Combined override factor capped at x%.2f", overrideFactor))
		}
	} else {
		steps = append(steps, "No contextual overrides detected for this date")
	}

	steps = append(steps, fmt.Sprintf("Final multiplier: %.2fx (bounds %.2f-%.2f)",
		finalMultiplier, MinMultiplier, MaxMultiplier))

	if durationDiscount < 1.0 {
		steps = append(steps, fmt.Sprintf("Duration discount (%dhrs): %d%% off",
			durationHours, int((1-durationDiscount)*100+0.5)))
	}

	steps = append(steps, fmt.Sprintf("Effective rate: INR %.2f/hr x %dhrs = INR %.2f",
		effectiveHourly, durationHours, total))

	return steps
}

// dayTypeLabel turns a day-type tag into its display form
// ("long_weekend" -> "Long Weekend").
func dayTypeLabel(dt domain.DayType) string {
	label := make([]byte, 0, len(dt))
	upper := true
	for i := 0; i < len(dt); i++ {
		ch := dt[i]
		if ch == '_' {
			label = append(label, ' ')
			upper = true
			continue
		}
		if upper && ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		upper = false
		label = append(label, ch)
	}
	return string(label)
}
