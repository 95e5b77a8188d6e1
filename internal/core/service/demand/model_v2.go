package demand

import (
	"time"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/calendar"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/profile"
)

// Cross-dimensional blend weights. Must sum to 1.0.
const (
	WeightCrossHourWeekday  = 0.35
	WeightCrossWeekdayMonth = 0.25
	WeightCrossHourDayType  = 0.25
	WeightWeather           = 0.15
)

// ModelV2 scores with interaction matrices instead of independent blends:
// "Friday 6 PM" carries its own score rather than Friday and 6 PM averaged.
// Its classifier runs without the exam-season tag; the cross matrices were
// derived without it.
type ModelV2 struct {
	cal        calendar.Calendar
	classifier *calendar.Classifier
	profiles   *profile.Store
}

func NewModelV2(cal calendar.Calendar, profiles *profile.Store) *ModelV2 {
	return &ModelV2{
		cal:        cal,
		classifier: calendar.NewClassifier(cal, false),
		profiles:   profiles,
	}
}

func (m *ModelV2) Estimate(rentalAt time.Time) domain.DemandResult {
	hour := rentalAt.Hour()
	month := rentalAt.Month()
	weekday := calendar.MondayIndex(rentalAt.Weekday())

	dayType := m.classifier.Classify(rentalAt)

	hourWeekday := m.profiles.HourByWeekdayScore(weekday, hour)
	weekdayMonth := m.profiles.WeekdayByMonthScore(weekday, month)
	hourDayType := m.profiles.HourByDayTypeScore(dayType, hour)
	weather := m.profiles.WeatherExpectation(month)

	score := WeightCrossHourWeekday*hourWeekday +
		WeightCrossWeekdayMonth*weekdayMonth +
		WeightCrossHourDayType*hourDayType +
		WeightWeather*weather

	holidayName, isHoliday := m.cal.HolidayName(rentalAt)

	// Component scores stay single-dimension so both models expose the
	// same breakdown to callers.
	return domain.DemandResult{
		Score:         Round4(clamp01(score)),
		Zone:          domain.ClassifyZone(score),
		DayType:       dayType,
		DayTypeScore:  Round4(m.profiles.DayTypeScore(dayType)),
		SeasonScore:   Round4(m.profiles.MonthlyScore(month)),
		TimeSlotScore: Round4(m.profiles.HourlyScore(hour)),
		Hour:          hour,
		Month:         int(month),
		Weekday:       weekday,
		IsHoliday:     isHoliday,
		HolidayName:   holidayName,
	}
}
