package demand

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/calendar"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/profile"
)

func fallbackModel(t *testing.T) *Model {
	t.Helper()
	store := profile.Load(t.TempDir()+"/absent.json", zap.NewNop())
	require.True(t, store.UsingFallback())
	return NewModel(calendar.IndianHolidays(), store)
}

func TestModel_ScoreStaysInBounds(t *testing.T) {
	m := fallbackModel(t)

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 365; d++ {
		for _, hour := range []int{0, 6, 9, 14, 20, 23} {
			at := start.AddDate(0, 0, d).Add(time.Duration(hour) * time.Hour)
			res := m.Estimate(at)
			assert.GreaterOrEqual(t, res.Score, 0.0, "at %s", at)
			assert.LessOrEqual(t, res.Score, 1.0, "at %s", at)
			assert.NotEmpty(t, res.Zone.Name)
		}
	}
}

func TestModel_SaturdayOutscoresTuesday(t *testing.T) {
	m := fallbackModel(t)

	// Same hour and month, only the day of week differs.
	sat := m.Estimate(time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC))
	tue := m.Estimate(time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, domain.DaySaturday, sat.DayType)
	assert.Equal(t, domain.DayRegularWeekday, tue.DayType)
	assert.Greater(t, sat.Score, tue.Score)
}

func TestModel_WeightedBlend(t *testing.T) {
	m := fallbackModel(t)

	// Saturday Oct 18 2025 falls inside the Diwali long-weekend stretch:
	// 0.45*1.00 + 0.30*0.88 + 0.25*1.00 = 0.964.
	res := m.Estimate(time.Date(2025, time.October, 18, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, domain.DayLongWeekend, res.DayType)
	assert.Equal(t, 0.964, res.Score)
	assert.Equal(t, domain.ZoneSurge.Name, res.Zone.Name)
	assert.Equal(t, 1.0, res.DayTypeScore)
	assert.Equal(t, 0.88, res.SeasonScore)
	assert.Equal(t, 1.0, res.TimeSlotScore)
}

func TestModel_HolidayMetadata(t *testing.T) {
	m := fallbackModel(t)

	res := m.Estimate(time.Date(2026, time.January, 26, 11, 0, 0, 0, time.UTC))
	assert.True(t, res.IsHoliday)
	assert.Equal(t, "Republic Day", res.HolidayName)
	assert.Equal(t, 0, res.Weekday)
	assert.Equal(t, 1, res.Month)
	assert.Equal(t, 11, res.Hour)
}

func TestModelV2_SameResultShape(t *testing.T) {
	store := profile.Load(t.TempDir()+"/absent.json", zap.NewNop())
	v2 := NewModelV2(calendar.IndianHolidays(), store)

	at := time.Date(2025, time.October, 18, 9, 0, 0, 0, time.UTC)
	res := v2.Estimate(at)

	assert.GreaterOrEqual(t, res.Score, 0.0)
	assert.LessOrEqual(t, res.Score, 1.0)
	assert.NotEmpty(t, res.Zone.Name)
	assert.Equal(t, 9, res.Hour)
	assert.Equal(t, 10, res.Month)
}

func TestClassifyZone_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.Zone
	}{
		{0.0, domain.ZoneDead},
		{0.1499, domain.ZoneDead},
		{0.15, domain.ZoneLow},
		{0.3999, domain.ZoneLow},
		{0.40, domain.ZoneNormal},
		{0.5999, domain.ZoneNormal},
		{0.60, domain.ZoneHigh},
		{0.7999, domain.ZoneHigh},
		{0.80, domain.ZoneSurge},
		{1.0, domain.ZoneSurge},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want.Name, domain.ClassifyZone(tc.score).Name, "score %v", tc.score)
	}
}
