package pricing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/calendar"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/demand"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/override"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/profile"
)

// newTestEngine wires the fallback profiles into a full pipeline with a
// frozen clock. Fallback tables carry no weather data, so weather overrides
// never fire here and quotes are fully deterministic.
func newTestEngine(t *testing.T, now time.Time) *Engine {
	t.Helper()
	cal := calendar.IndianHolidays()
	store := profile.Load(t.TempDir()+"/absent.json", zap.NewNop())
	require.True(t, store.UsingFallback())

	e := NewEngine(demand.NewModel(cal, store), override.NewDetector(cal, store), cal)
	e.now = func() time.Time { return now }
	return e
}

var testClock = time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)

func TestQuote_RegularWeekday(t *testing.T) {
	e := newTestEngine(t, testClock)

	// Tuesday afternoon: day type 0.35, February 0.50, 14:00 slot 0.35.
	res, err := e.Quote(context.Background(), time.Date(2025, time.February, 11, 14, 0, 0, 0, time.UTC), "scooter", 2)
	require.NoError(t, err)

	assert.Equal(t, domain.DayRegularWeekday, res.Demand.DayType)
	assert.Equal(t, 0.395, res.Demand.Score)
	assert.Equal(t, domain.ZoneLow.Name, res.Demand.Zone.Name)
	assert.Equal(t, 1.2135, res.SurgeMultiplier)
	assert.Equal(t, 1.0, res.OverrideFactor)
	assert.Equal(t, 1.2135, res.FinalMultiplier)
	assert.Equal(t, 1.0, res.DurationDiscount)
	assert.Equal(t, 60.0, res.BaseRate)
	assert.Equal(t, 72.81, res.EffectiveHourlyRate)
	assert.Equal(t, 145.62, res.FinalPrice)
	assert.Empty(t, res.OverridesDetected)
	assert.False(t, res.OverrideWasCapped)
	assert.Empty(t, res.Warnings)
}

func TestQuote_DiwaliLongWeekend(t *testing.T) {
	e := newTestEngine(t, testClock)

	res, err := e.Quote(context.Background(), time.Date(2025, time.October, 20, 9, 0, 0, 0, time.UTC), "standard_bike", 24)
	require.NoError(t, err)

	assert.Equal(t, domain.DayLongWeekend, res.Demand.DayType)
	assert.Equal(t, 0.964, res.Demand.Score)
	assert.Equal(t, domain.ZoneSurge.Name, res.Demand.Zone.Name)
	assert.Equal(t, 1.9532, res.SurgeMultiplier)

	// Long weekend (1.5) stacked with the Diwali festival (1.4) saturates.
	require.Len(t, res.OverridesDetected, 2)
	assert.True(t, res.OverrideWasCapped)
	assert.Equal(t, 2.0, res.OverrideFactor)

	// The raw product blows past the ceiling; the final multiplier clamps.
	assert.Equal(t, 2.0, res.FinalMultiplier)

	assert.Equal(t, 0.70, res.DurationDiscount)
	assert.Equal(t, 112.0, res.EffectiveHourlyRate)
	assert.Equal(t, 2688.0, res.FinalPrice)
}

func TestQuote_DurationTiers(t *testing.T) {
	e := newTestEngine(t, testClock)
	at := time.Date(2025, time.February, 11, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		hours    int
		discount float64
	}{
		{1, 1.0},
		{2, 1.0},
		{3, 1.0},
		{4, 0.90},
		{7, 0.90},
		{8, 0.80},
		{23, 0.80},
		{24, 0.70},
		{48, 0.70},
	}
	for _, tc := range cases {
		res, err := e.Quote(context.Background(), at, "scooter", tc.hours)
		require.NoError(t, err)
		assert.Equal(t, tc.discount, res.DurationDiscount, "%d hours", tc.hours)
	}
}

func TestQuote_MultiplierStaysBounded(t *testing.T) {
	e := newTestEngine(t, testClock)

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 120; d++ {
		for _, hour := range []int{2, 9, 17, 22} {
			at := start.AddDate(0, 0, d).Add(time.Duration(hour) * time.Hour)
			res, err := e.Quote(context.Background(), at, "premium_bike", 6)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.FinalMultiplier, MinMultiplier, "at %s", at)
			assert.LessOrEqual(t, res.FinalMultiplier, MaxMultiplier, "at %s", at)
		}
	}
}

func TestQuote_Deterministic(t *testing.T) {
	e := newTestEngine(t, testClock)
	at := time.Date(2025, time.October, 20, 9, 0, 0, 0, time.UTC)

	first, err := e.Quote(context.Background(), at, "super_premium", 8)
	require.NoError(t, err)
	second, err := e.Quote(context.Background(), at, "super_premium", 8)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuote_InvalidInput(t *testing.T) {
	e := newTestEngine(t, testClock)
	at := time.Date(2025, time.June, 11, 10, 0, 0, 0, time.UTC)

	_, err := e.Quote(context.Background(), at, "rickshaw", 2)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))

	_, err = e.Quote(context.Background(), at, "scooter", 0)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))

	_, err = e.Quote(context.Background(), at, "scooter", -5)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))
}

func TestQuote_Warnings(t *testing.T) {
	e := newTestEngine(t, testClock)

	t.Run("past rental", func(t *testing.T) {
		res, err := e.Quote(context.Background(), time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC), "scooter", 2)
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "historical reference")
	})

	t.Run("distant holiday keeps high confidence", func(t *testing.T) {
		res, err := e.Quote(context.Background(), time.Date(2025, time.December, 25, 9, 0, 0, 0, time.UTC), "scooter", 2)
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "high confidence")
	})

	t.Run("distant weekend is medium confidence", func(t *testing.T) {
		res, err := e.Quote(context.Background(), time.Date(2025, time.September, 6, 9, 0, 0, 0, time.UTC), "scooter", 2)
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "medium confidence")
	})

	t.Run("distant weekday is low confidence", func(t *testing.T) {
		res, err := e.Quote(context.Background(), time.Date(2025, time.September, 10, 9, 0, 0, 0, time.UTC), "scooter", 2)
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "confidence is lower")
	})

	t.Run("near-term rental carries no warnings", func(t *testing.T) {
		res, err := e.Quote(context.Background(), time.Date(2025, time.February, 14, 9, 0, 0, 0, time.UTC), "scooter", 2)
		require.NoError(t, err)
		assert.Empty(t, res.Warnings)
	})
}

func TestQuote_ExplanationTrail(t *testing.T) {
	e := newTestEngine(t, testClock)

	res, err := e.Quote(context.Background(), time.Date(2025, time.October, 20, 9, 0, 0, 0, time.UTC), "premium_bike", 24)
	require.NoError(t, err)

	trail := strings.Join(res.Explanation, "\n")
	assert.Contains(t, trail, "Premium Bike")
	assert.Contains(t, trail, "Day type: Long Weekend (Monday)")
	assert.Contains(t, trail, "Season (Oct)")
	assert.Contains(t, trail, "Time slot (09:00)")
	assert.Contains(t, trail, "Holiday: Diwali")
	assert.Contains(t, trail, "Surge zone")
	assert.Contains(t, trail, "Auto-detected 2 override(s):")
	assert.Contains(t, trail, "capped at x2.00")
	assert.Contains(t, trail, "Final multiplier: 2.00x")
	assert.Contains(t, trail, "Duration discount (24hrs): 30% off")
	assert.Contains(t, trail, "INR 5040.00")
}

func TestQuote_ExplanationWithoutOverrides(t *testing.T) {
	e := newTestEngine(t, testClock)

	res, err := e.Quote(context.Background(), time.Date(2025, time.February, 11, 14, 0, 0, 0, time.UTC), "scooter", 2)
	require.NoError(t, err)

	trail := strings.Join(res.Explanation, "\n")
	assert.Contains(t, trail, "No contextual overrides detected")
}
