// Package profile loads the data-derived demand profile tables and exposes
// pure lookups over them. Tables are loaded once at startup and never mutated,
// so the store is safe for unlimited concurrent readers.
package profile

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

// Per-key lookup defaults when loaded data is missing an entry.
const (
	DefaultHourlyScore  = 0.3
	DefaultMonthlyScore = 0.5
	DefaultDayTypeScore = 0.35

	DefaultHourByWeekdayScore  = 0.35
	DefaultWeekdayByMonthScore = 0.40
	DefaultHourByDayTypeScore  = 0.40

	// NeutralWeatherScore is used when a month has no weather distribution
	// or no impact table exists.
	NeutralWeatherScore = 0.5
)

// WeatherImpact describes how one weather kind shifts daily demand relative
// to the clear-day baseline.
type WeatherImpact struct {
	AvgDailyBookings float64 `json:"avg_daily_bookings"`
	RatioVsClear     float64 `json:"ratio_vs_clear"`
	StdDev           float64 `json:"std_dev"`
	NumDays          int     `json:"num_days"`
}

// Stats is the metadata block the analyzer writes alongside the tables.
type Stats struct {
	TotalBookings         int     `json:"total_bookings"`
	TotalDays             int     `json:"total_days"`
	BaselineDailyBookings float64 `json:"baseline_daily_bookings"`
	Analyzer              string  `json:"analyzer,omitempty"`
	DateRange             struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"date_range"`
}

// Tables is the on-disk profile format. All scores are normalized to [0,1];
// weather_by_month values are probabilities summing to 1 per month. Keys are
// strings because the analyzer emits JSON objects; day-of-week keys are
// Monday-indexed (0=Mon .. 6=Sun).
type Tables struct {
	Hourly         map[string]float64            `json:"hourly,omitempty"`
	DayOfWeek      map[string]float64            `json:"day_of_week,omitempty"`
	Monthly        map[string]float64            `json:"monthly,omitempty"`
	DayType        map[string]float64            `json:"day_type,omitempty"`
	WeatherByMonth map[string]map[string]float64 `json:"weather_by_month,omitempty"`

	HourByDOW     map[string]map[string]float64 `json:"hour_by_dow,omitempty"`
	DOWByMonth    map[string]map[string]float64 `json:"dow_by_month,omitempty"`
	HourByDayType map[string]map[string]float64 `json:"hour_by_day_type,omitempty"`

	WeatherImpact map[string]WeatherImpact `json:"weather_impact,omitempty"`

	Stats *Stats `json:"stats,omitempty"`
}

// Store is the immutable, loaded-once profile table set.
type Store struct {
	tables        Tables
	usingFallback bool
}

// Load reads profile tables from path, falling back to the embedded
// rule-based tables when the file is absent or unreadable. Loading never
// fails; degraded mode is recorded and queryable via UsingFallback.
func Load(path string, logger *zap.Logger) *Store {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("profile data unavailable, falling back to embedded tables",
			zap.String("path", path), zap.Error(err))
		return &Store{tables: fallbackTables(), usingFallback: true}
	}

	var tables Tables
	if err := json.Unmarshal(raw, &tables); err != nil {
		logger.Warn("profile data unreadable, falling back to embedded tables",
			zap.String("path", path), zap.Error(err))
		return &Store{tables: fallbackTables(), usingFallback: true}
	}

	logger.Info("loaded demand profiles", zap.String("path", path))
	return &Store{tables: tables}
}

// NewFromTables builds a store around an in-memory table set. Used by tests
// and by callers that compute profiles themselves.
func NewFromTables(tables Tables) *Store {
	return &Store{tables: tables}
}

// UsingFallback reports degraded-accuracy mode (no external profile data).
func (s *Store) UsingFallback() bool { return s.usingFallback }

// HourlyScore returns the normalized demand intensity for an hour (0-23).
func (s *Store) HourlyScore(hour int) float64 {
	return lookup(s.tables.Hourly, strconv.Itoa(hour), DefaultHourlyScore)
}

// MonthlyScore returns the normalized demand intensity for a month.
func (s *Store) MonthlyScore(month time.Month) float64 {
	return lookup(s.tables.Monthly, strconv.Itoa(int(month)), DefaultMonthlyScore)
}

// DayTypeScore returns the normalized demand intensity for a day type.
// Unknown tags resolve to the default, never an error.
func (s *Store) DayTypeScore(dayType domain.DayType) float64 {
	return lookup(s.tables.DayType, string(dayType), DefaultDayTypeScore)
}

// HourByWeekdayScore looks up the hour-by-weekday cross matrix
// (weekday Monday-indexed).
func (s *Store) HourByWeekdayScore(weekday, hour int) float64 {
	return crossLookup(s.tables.HourByDOW, strconv.Itoa(weekday), strconv.Itoa(hour), DefaultHourByWeekdayScore)
}

// WeekdayByMonthScore looks up the weekday-by-month cross matrix.
func (s *Store) WeekdayByMonthScore(weekday int, month time.Month) float64 {
	return crossLookup(s.tables.DOWByMonth, strconv.Itoa(weekday), strconv.Itoa(int(month)), DefaultWeekdayByMonthScore)
}

// HourByDayTypeScore looks up the day-type-by-hour cross matrix.
func (s *Store) HourByDayTypeScore(dayType domain.DayType, hour int) float64 {
	return crossLookup(s.tables.HourByDayType, string(dayType), strconv.Itoa(hour), DefaultHourByDayTypeScore)
}

// WeatherByMonth returns the weather-kind probability distribution for a
// month, or nil when no data exists.
func (s *Store) WeatherByMonth(month time.Month) map[string]float64 {
	if s.tables.WeatherByMonth == nil {
		return nil
	}
	return s.tables.WeatherByMonth[strconv.Itoa(int(month))]
}

// WeatherExpectation blends the month's weather distribution with the
// per-weather demand ratios into a probability-weighted demand score,
// clamped to [0,1]. Clear weather is the 1.0 baseline; missing data yields
// the neutral default.
func (s *Store) WeatherExpectation(month time.Month) float64 {
	dist := s.WeatherByMonth(month)
	if len(dist) == 0 || len(s.tables.WeatherImpact) == 0 {
		return NeutralWeatherScore
	}

	total := 0.0
	for kind, prob := range dist {
		ratio := 1.0
		if impact, ok := s.tables.WeatherImpact[kind]; ok {
			ratio = impact.RatioVsClear
		}
		total += prob * ratio
	}
	return clamp01(total)
}

func lookup(table map[string]float64, key string, def float64) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return def
}

func crossLookup(matrix map[string]map[string]float64, dim1, dim2 string, def float64) float64 {
	if row, ok := matrix[dim1]; ok {
		if v, ok := row[dim2]; ok {
			return v
		}
	}
	return def
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
