// Package override auto-detects contextual price adjustments from the rental
// date: festivals and holidays from the calendar, long weekends from the day
// classification, rain and heat from historical weather probabilities.
package override

import (
	"fmt"
	"strings"
	"time"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/calendar"
)

// MaxOverrideFactor saturates the combined override product symmetrically:
// surge stacks cap at the bound, discount stacks at its reciprocal.
const MaxOverrideFactor = 2.0

// Multiplicative factors per override kind.
const (
	FactorLongWeekend = 1.50
	FactorFestival    = 1.40
	FactorHoliday     = 1.30
	FactorHolidayEve  = 1.15
	FactorRain        = 0.85
	FactorHeavyRain   = 0.70
	FactorHeatwave    = 0.90
)

// Weather probability thresholds that trip a weather override.
const (
	heavyRainThreshold = 0.15
	rainThreshold      = 0.25
	heatThreshold      = 0.20
)

var factorTable = map[string]float64{
	"long_weekend":      FactorLongWeekend,
	"festival":          FactorFestival,
	"holiday":           FactorHoliday,
	"holiday_eve":       FactorHolidayEve,
	"rain_likely":       FactorRain,
	"heavy_rain_likely": FactorHeavyRain,
	"heatwave_likely":   FactorHeatwave,
}

// FactorFor resolves an override token to its factor. Unknown tokens are
// neutral (1.0), never an error.
func FactorFor(token string) float64 {
	if f, ok := factorTable[token]; ok {
		return f
	}
	return 1.0
}

// Combine multiplies override factors and saturates the product into
// [1/MaxOverrideFactor, MaxOverrideFactor]. The second return reports
// whether saturation clamped the product.
func Combine(factors ...float64) (float64, bool) {
	combined := 1.0
	for _, f := range factors {
		combined *= f
	}

	switch {
	case combined > MaxOverrideFactor:
		return MaxOverrideFactor, true
	case combined < 1.0/MaxOverrideFactor:
		return 1.0 / MaxOverrideFactor, true
	}
	return combined, false
}

// festivalKeywords mark calendar holidays that drive festival-level demand.
var festivalKeywords = []string{
	"diwali", "holi", "dussehra", "christmas", "pongal",
	"ganesh", "onam", "eid", "guru nanak",
}

// WeatherSource provides the per-month weather probability distribution.
type WeatherSource interface {
	WeatherByMonth(month time.Month) map[string]float64
}

type Detector struct {
	cal     calendar.Calendar
	weather WeatherSource
}

func NewDetector(cal calendar.Calendar, weather WeatherSource) *Detector {
	return &Detector{cal: cal, weather: weather}
}

// Detect evaluates every override rule independently: several may fire for
// one date. Returns the saturated combined factor, the fired overrides, and
// whether saturation kicked in.
func (d *Detector) Detect(rentalAt time.Time, dayType domain.DayType) (float64, []domain.DetectedOverride, bool) {
	var overrides []domain.DetectedOverride

	if dayType == domain.DayLongWeekend {
		overrides = append(overrides, domain.DetectedOverride{
			Name:       "Long Weekend",
			Factor:     FactorLongWeekend,
			Reason:     "Part of an extended weekend stretch (detected from calendar)",
			Confidence: domain.ConfidenceHigh,
			Effect:     domain.EffectSurge,
		})
	}

	if name, ok := d.cal.HolidayName(rentalAt); ok {
		if isFestival(name) {
			overrides = append(overrides, domain.DetectedOverride{
				Name:       "Festival: " + name,
				Factor:     FactorFestival,
				Reason:     fmt.Sprintf("%s is a major festival driving high rental demand", name),
				Confidence: domain.ConfidenceHigh,
				Effect:     domain.EffectSurge,
			})
		} else {
			overrides = append(overrides, domain.DetectedOverride{
				Name:       "Holiday: " + name,
				Factor:     FactorHoliday,
				Reason:     fmt.Sprintf("%s is a public holiday increasing leisure rentals", name),
				Confidence: domain.ConfidenceHigh,
				Effect:     domain.EffectSurge,
			})
		}
	} else if dayType == domain.DayHolidayEve {
		if name, ok := d.cal.HolidayName(rentalAt.AddDate(0, 0, 1)); ok {
			overrides = append(overrides, domain.DetectedOverride{
				Name:       "Eve of " + name,
				Factor:     FactorHolidayEve,
				Reason:     fmt.Sprintf("Day before %s brings early pickup demand", name),
				Confidence: domain.ConfidenceHigh,
				Effect:     domain.EffectSurge,
			})
		}
	}

	overrides = append(overrides, d.weatherOverrides(rentalAt.Month())...)

	factors := make([]float64, len(overrides))
	for i, o := range overrides {
		factors[i] = o.Factor
	}
	combined, capped := Combine(factors...)

	return combined, overrides, capped
}

// weatherOverrides checks the month's historical weather distribution.
// Heavy rain beats the general rain rule; the heat rule is evaluated
// independently, so a monsoon month can carry both a rain and a heat
// override.
func (d *Detector) weatherOverrides(month time.Month) []domain.DetectedOverride {
	probs := d.weather.WeatherByMonth(month)
	if probs == nil {
		return nil
	}

	var overrides []domain.DetectedOverride

	heavyRain := probs["heavy_rain"]
	rain := probs["rain"] + heavyRain

	if heavyRain > heavyRainThreshold {
		overrides = append(overrides, domain.DetectedOverride{
			Name:       "Heavy Rain Likely",
			Factor:     FactorHeavyRain,
			Reason:     fmt.Sprintf("Historical data: %.0f%% of bookings in month %d had heavy rain", heavyRain*100, month),
			Confidence: domain.ConfidenceMedium,
			Effect:     domain.EffectDiscount,
		})
	} else if rain > rainThreshold {
		overrides = append(overrides, domain.DetectedOverride{
			Name:       "Rain Likely",
			Factor:     FactorRain,
			Reason:     fmt.Sprintf("Historical data: %.0f%% of bookings in month %d had rain", rain*100, month),
			Confidence: domain.ConfidenceMedium,
			Effect:     domain.EffectDiscount,
		})
	}

	if hot := probs["hot"]; hot > heatThreshold {
		overrides = append(overrides, domain.DetectedOverride{
			Name:       "Heatwave Likely",
			Factor:     FactorHeatwave,
			Reason:     fmt.Sprintf("Historical data: %.0f%% of bookings in month %d had heatwave conditions", hot*100, month),
			Confidence: domain.ConfidenceMedium,
			Effect:     domain.EffectDiscount,
		})
	}

	return overrides
}

func isFestival(holidayName string) bool {
	lower := strings.ToLower(holidayName)
	for _, kw := range festivalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
