// Package analytics derives the demand profile tables from booking history.
// Counts are averaged per distinct day so a category seen on few days is not
// drowned out, then max-normalized to [0,1].
package analytics

import (
	"math"
	"strconv"
	"time"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/calendar"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/profile"
)

const dayKeyLayout = "2006-01-02"

// BuildProfiles computes the full profile table set: single-dimension
// profiles, cross-dimensional matrices, weather distribution and impact,
// plus the stats block.
func BuildProfiles(bookings []domain.Booking) profile.Tables {
	if len(bookings) == 0 {
		return profile.Tables{}
	}

	hourly := newDimension()
	dayOfWeek := newDimension()
	monthly := newDimension()
	dayType := newDimension()

	hourByDOW := newMatrix()
	dowByMonth := newMatrix()
	hourByDayType := newMatrix()

	weatherCounts := map[string]map[string]int{}  // month -> weather -> bookings
	monthTotals := map[string]int{}               // month -> bookings
	dailyWeather := map[string]string{}           // day -> weather
	dailyBookings := map[string]int{}             // day -> bookings

	allDays := map[string]struct{}{}
	var minStart, maxStart time.Time

	for i, b := range bookings {
		day := b.RentalStart.Format(dayKeyLayout)
		hour := strconv.Itoa(b.RentalStart.Hour())
		dow := strconv.Itoa(calendar.MondayIndex(b.RentalStart.Weekday()))
		month := strconv.Itoa(int(b.RentalStart.Month()))
		dtype := string(b.DayType)

		hourly.add(hour, day)
		dayOfWeek.add(dow, day)
		monthly.add(month, day)
		dayType.add(dtype, day)

		hourByDOW.add(dow, hour, day)
		dowByMonth.add(dow, month, day)
		hourByDayType.add(dtype, hour, day)

		if weatherCounts[month] == nil {
			weatherCounts[month] = map[string]int{}
		}
		weatherCounts[month][b.Weather]++
		monthTotals[month]++

		dailyWeather[day] = b.Weather
		dailyBookings[day]++
		allDays[day] = struct{}{}

		if i == 0 || b.RentalStart.Before(minStart) {
			minStart = b.RentalStart
		}
		if i == 0 || b.RentalStart.After(maxStart) {
			maxStart = b.RentalStart
		}
	}

	weatherByMonth := map[string]map[string]float64{}
	for month, counts := range weatherCounts {
		dist := map[string]float64{}
		for weather, n := range counts {
			dist[weather] = round4(float64(n) / float64(monthTotals[month]))
		}
		weatherByMonth[month] = dist
	}

	stats := &profile.Stats{
		TotalBookings:         len(bookings),
		TotalDays:             len(allDays),
		BaselineDailyBookings: round2(float64(len(bookings)) / float64(len(allDays))),
		Analyzer:              "go",
	}
	stats.DateRange.Start = minStart.Format(dayKeyLayout)
	stats.DateRange.End = maxStart.Format(dayKeyLayout)

	return profile.Tables{
		Hourly:         hourly.normalized(),
		DayOfWeek:      dayOfWeek.normalized(),
		Monthly:        monthly.normalized(),
		DayType:        dayType.normalized(),
		WeatherByMonth: weatherByMonth,
		HourByDOW:      hourByDOW.normalized(),
		DOWByMonth:     dowByMonth.normalized(),
		HourByDayType:  hourByDayType.normalized(),
		WeatherImpact:  weatherImpact(dailyBookings, dailyWeather),
		Stats:          stats,
	}
}

// weatherImpact computes, per weather kind, the average and spread of daily
// booking counts and the ratio against the clear-day baseline.
func weatherImpact(dailyBookings map[string]int, dailyWeather map[string]string) map[string]profile.WeatherImpact {
	byWeather := map[string][]float64{}
	for day, count := range dailyBookings {
		w := dailyWeather[day]
		byWeather[w] = append(byWeather[w], float64(count))
	}

	avgs := map[string]float64{}
	for w, counts := range byWeather {
		avgs[w] = mean(counts)
	}

	clearAvg := avgs["clear"]
	impact := map[string]profile.WeatherImpact{}
	for w, counts := range byWeather {
		ratio := 1.0
		if clearAvg > 0 {
			ratio = round4(avgs[w] / clearAvg)
		}
		impact[w] = profile.WeatherImpact{
			AvgDailyBookings: round1(avgs[w]),
			RatioVsClear:     ratio,
			StdDev:           round1(stddev(counts)),
			NumDays:          len(counts),
		}
	}
	return impact
}

// dimension accumulates bookings per key with the set of distinct days the
// key was observed on.
type dimension struct {
	counts map[string]int
	days   map[string]map[string]struct{}
}

func newDimension() *dimension {
	return &dimension{counts: map[string]int{}, days: map[string]map[string]struct{}{}}
}

func (d *dimension) add(key, day string) {
	d.counts[key]++
	if d.days[key] == nil {
		d.days[key] = map[string]struct{}{}
	}
	d.days[key][day] = struct{}{}
}

// normalized returns avg-bookings-per-day per key scaled so the max is 1.0.
func (d *dimension) normalized() map[string]float64 {
	avg := map[string]float64{}
	maxVal := 0.0
	for key, count := range d.counts {
		v := float64(count) / float64(len(d.days[key]))
		avg[key] = v
		if v > maxVal {
			maxVal = v
		}
	}

	out := map[string]float64{}
	for key, v := range avg {
		if maxVal == 0 {
			out[key] = 0
			continue
		}
		out[key] = round4(v / maxVal)
	}
	return out
}

type matrix struct {
	cells map[string]*dimension
}

func newMatrix() *matrix {
	return &matrix{cells: map[string]*dimension{}}
}

func (m *matrix) add(dim1, dim2, day string) {
	if m.cells[dim1] == nil {
		m.cells[dim1] = newDimension()
	}
	m.cells[dim1].add(dim2, day)
}

// normalized scales the whole matrix against a single global max so cells
// stay comparable across rows.
func (m *matrix) normalized() map[string]map[string]float64 {
	avg := map[string]map[string]float64{}
	maxVal := 0.0
	for dim1, d := range m.cells {
		avg[dim1] = map[string]float64{}
		for dim2, count := range d.counts {
			v := float64(count) / float64(len(d.days[dim2]))
			avg[dim1][dim2] = v
			if v > maxVal {
				maxVal = v
			}
		}
	}

	if maxVal == 0 {
		return map[string]map[string]float64{}
	}
	out := map[string]map[string]float64{}
	for dim1, row := range avg {
		out[dim1] = map[string]float64{}
		for dim2, v := range row {
			out[dim1][dim2] = round4(v / maxVal)
		}
	}
	return out
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func stddev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	sum := 0.0
	for _, v := range vals {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
