package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

func booking(day time.Time, hour int, dayType domain.DayType, weather string) domain.Booking {
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
	return domain.Booking{
		BookingID:   "BK-" + start.Format("20060102150405"),
		BookedAt:    start.Add(-48 * time.Hour),
		RentalStart: start,
		VehicleType: domain.VehicleScooter,
		DayType:     dayType,
		Weather:     weather,
	}
}

// Two Saturdays with three morning bookings each, one Tuesday with one.
// Saturday dominates every dimension, so it should own the 1.0 after
// max-normalization.
func sampleBookings() []domain.Booking {
	sat1 := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)
	sat2 := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	tue := time.Date(2025, time.June, 17, 0, 0, 0, 0, time.UTC)

	return []domain.Booking{
		booking(sat1, 9, domain.DaySaturday, "clear"),
		booking(sat1, 9, domain.DaySaturday, "clear"),
		booking(sat1, 17, domain.DaySaturday, "clear"),
		booking(sat2, 9, domain.DaySaturday, "rain"),
		booking(sat2, 9, domain.DaySaturday, "rain"),
		booking(sat2, 17, domain.DaySaturday, "rain"),
		booking(tue, 9, domain.DayRegularWeekday, "clear"),
	}
}

func TestBuildProfiles_Normalization(t *testing.T) {
	tables := BuildProfiles(sampleBookings())

	// day_of_week: Saturday averages 3/day, Tuesday 1/day.
	assert.Equal(t, 1.0, tables.DayOfWeek["5"])
	assert.InDelta(t, 1.0/3.0, tables.DayOfWeek["1"], 1e-4)

	// day_type mirrors the same split.
	assert.Equal(t, 1.0, tables.DayType["saturday"])
	assert.InDelta(t, 1.0/3.0, tables.DayType["regular_weekday"], 1e-4)

	// hourly: 5 bookings over 3 distinct days at 09:00, 2 over 2 days at
	// 17:00. Max is 5/3 per day.
	assert.Equal(t, 1.0, tables.Hourly["9"])
	assert.Equal(t, 0.6, tables.Hourly["17"])

	// Every normalized score stays in (0, 1].
	for key, v := range tables.Hourly {
		assert.Greater(t, v, 0.0, "hourly[%s]", key)
		assert.LessOrEqual(t, v, 1.0, "hourly[%s]", key)
	}
}

func TestBuildProfiles_WeatherDistribution(t *testing.T) {
	tables := BuildProfiles(sampleBookings())

	june := tables.WeatherByMonth["6"]
	require.NotNil(t, june)

	// 4 of 7 June bookings were clear, 3 had rain.
	assert.InDelta(t, 4.0/7.0, june["clear"], 1e-4)
	assert.InDelta(t, 3.0/7.0, june["rain"], 1e-4)

	total := 0.0
	for _, p := range june {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-3)
}

func TestBuildProfiles_WeatherImpact(t *testing.T) {
	tables := BuildProfiles(sampleBookings())

	clear := tables.WeatherImpact["clear"]
	rain := tables.WeatherImpact["rain"]

	// Clear days: 3 and 1 bookings. Rain day: 3 bookings.
	assert.Equal(t, 2, clear.NumDays)
	assert.Equal(t, 1, rain.NumDays)
	assert.Equal(t, 2.0, clear.AvgDailyBookings)
	assert.Equal(t, 1.0, clear.RatioVsClear)
	assert.Equal(t, 1.5, rain.RatioVsClear)
}

func TestBuildProfiles_Stats(t *testing.T) {
	tables := BuildProfiles(sampleBookings())

	require.NotNil(t, tables.Stats)
	assert.Equal(t, 7, tables.Stats.TotalBookings)
	assert.Equal(t, 3, tables.Stats.TotalDays)
	assert.InDelta(t, 2.33, tables.Stats.BaselineDailyBookings, 1e-9)
	assert.Equal(t, "2025-06-14", tables.Stats.DateRange.Start)
	assert.Equal(t, "2025-06-21", tables.Stats.DateRange.End)
}

func TestBuildProfiles_Empty(t *testing.T) {
	tables := BuildProfiles(nil)
	assert.Nil(t, tables.Hourly)
	assert.Nil(t, tables.Stats)
}

func TestBuildProfiles_CrossMatrices(t *testing.T) {
	tables := BuildProfiles(sampleBookings())

	// Saturday 09:00 is the hottest cell in hour_by_dow.
	require.NotNil(t, tables.HourByDOW["5"])
	assert.Equal(t, 1.0, tables.HourByDOW["5"]["9"])

	require.NotNil(t, tables.HourByDayType["saturday"])
	assert.Equal(t, 1.0, tables.HourByDayType["saturday"]["9"])
}
