// Package demand blends profile lookups into a single demand score.
//
// Two interchangeable models exist: the single-dimension blend (day type,
// season, time slot) and the cross-dimensional blend over interaction
// matrices. Both return the same DemandResult shape.
package demand

import (
	"math"
	"time"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/calendar"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/profile"
)

// Single-dimension blend weights. Must sum to 1.0.
const (
	WeightDayType  = 0.45
	WeightSeason   = 0.30
	WeightTimeSlot = 0.25
)

// Model is the single-dimension demand scorer: a weighted blend of the
// day-type, monthly, and hourly profile scores.
type Model struct {
	cal        calendar.Calendar
	classifier *calendar.Classifier
	profiles   *profile.Store
}

func NewModel(cal calendar.Calendar, profiles *profile.Store) *Model {
	return &Model{
		cal:        cal,
		classifier: calendar.NewClassifier(cal, true),
		profiles:   profiles,
	}
}

func (m *Model) Estimate(rentalAt time.Time) domain.DemandResult {
	hour := rentalAt.Hour()
	month := rentalAt.Month()
	weekday := calendar.MondayIndex(rentalAt.Weekday())

	dayType := m.classifier.Classify(rentalAt)
	dayTypeScore := m.profiles.DayTypeScore(dayType)
	seasonScore := m.profiles.MonthlyScore(month)
	timeSlotScore := m.profiles.HourlyScore(hour)

	score := WeightDayType*dayTypeScore +
		WeightSeason*seasonScore +
		WeightTimeSlot*timeSlotScore

	holidayName, isHoliday := m.cal.HolidayName(rentalAt)

	return domain.DemandResult{
		Score:         Round4(clamp01(score)),
		Zone:          domain.ClassifyZone(score),
		DayType:       dayType,
		DayTypeScore:  Round4(dayTypeScore),
		SeasonScore:   Round4(seasonScore),
		TimeSlotScore: Round4(timeSlotScore),
		Hour:          hour,
		Month:         int(month),
		Weekday:       weekday,
		IsHoliday:     isHoliday,
		HolidayName:   holidayName,
	}
}

// Round4 rounds to the 4 decimal places scores and multipliers are
// documented to carry.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
