// Package datagen produces the synthetic two-year booking dataset used to
// bootstrap demand profiles. Seeded and deterministic: the same seed always
// yields the same CSV.
package datagen

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/calendar"
)

const (
	baseDailyBookings = 250
	timestampLayout   = "2006-01-02T15:04:05"
)

var pickupLocations = []string{
	"Koramangala", "Indiranagar", "HSR Layout", "Whitefield",
	"Electronic City", "MG Road", "Jayanagar", "Marathahalli",
	"BTM Layout", "Banashankari",
}

var weatherBySeason = map[string][]weighted[string]{
	"summer":  {{"clear", 0.70}, {"hot", 0.25}, {"rain", 0.05}},
	"monsoon": {{"clear", 0.25}, {"rain", 0.55}, {"heavy_rain", 0.20}},
	"winter":  {{"clear", 0.80}, {"fog", 0.15}, {"rain", 0.05}},
	"festive": {{"clear", 0.85}, {"hot", 0.10}, {"rain", 0.05}},
}

var dayTypeBookingMultiplier = map[domain.DayType]float64{
	domain.DayLongWeekend:    3.5,
	domain.DayHoliday:        3.0,
	domain.DayBridgeStrong:   2.5,
	domain.DayHolidayEve:     2.0,
	domain.DaySaturday:       2.5,
	domain.DaySunday:         2.0,
	domain.DayFriday:         1.5,
	domain.DayBridgeWeak:     1.3,
	domain.DayRegularWeekday: 1.0,
	domain.DayExamWeekday:    0.6,
}

var seasonBookingMultiplier = map[string]float64{
	"summer":  1.5,
	"monsoon": 0.5,
	"festive": 1.6,
	"winter":  0.9,
}

var hourlyPickupWeights = []weighted[int]{
	{0, 0.01}, {1, 0.005}, {2, 0.005}, {3, 0.005}, {4, 0.01}, {5, 0.02},
	{6, 0.04}, {7, 0.10}, {8, 0.14}, {9, 0.12}, {10, 0.08}, {11, 0.06},
	{12, 0.05}, {13, 0.04}, {14, 0.04}, {15, 0.05}, {16, 0.06}, {17, 0.05},
	{18, 0.04}, {19, 0.03}, {20, 0.02}, {21, 0.015}, {22, 0.01}, {23, 0.005},
}

var durationChoices = []weighted[int]{
	{1, 0.05}, {2, 0.08}, {3, 0.08}, {4, 0.12}, {6, 0.10},
	{8, 0.22}, {12, 0.12}, {24, 0.15}, {48, 0.05}, {72, 0.03},
}

var vehicleChoices = []weighted[domain.VehicleType]{
	{domain.VehicleScooter, 0.40},
	{domain.VehicleStandardBike, 0.35},
	{domain.VehiclePremiumBike, 0.18},
	{domain.VehicleSuperPremium, 0.07},
}

var advanceDayChoices = []weighted[int]{
	{0, 0.35}, {1, 0.20}, {2, 0.15}, {3, 0.10}, {7, 0.10}, {14, 0.05}, {30, 0.05},
}

type weighted[T any] struct {
	value  T
	weight float64
}

type Generator struct {
	cal        calendar.Calendar
	classifier *calendar.Classifier
	rng        *rand.Rand
	counter    int
}

func New(cal calendar.Calendar, seed int64) *Generator {
	return &Generator{
		cal:        cal,
		classifier: calendar.NewClassifier(cal, true),
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Season buckets a date by month: summer Mar-May, monsoon Jun-Sep, festive
// Oct-Nov, winter Dec-Feb.
func Season(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return "summer"
	case time.June, time.July, time.August, time.September:
		return "monsoon"
	case time.October, time.November:
		return "festive"
	default:
		return "winter"
	}
}

// Generate produces bookings for every day in [start, end] inclusive.
func (g *Generator) Generate(start, end time.Time) []domain.Booking {
	var all []domain.Booking
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		all = append(all, g.generateDay(d)...)
	}
	return all
}

func (g *Generator) generateDay(d time.Time) []domain.Booking {
	season := Season(d)
	dayType := g.classifier.Classify(d)
	weather := pick(g.rng, weatherBySeason[season])

	weatherMult := 1.0
	switch weather {
	case "rain":
		weatherMult = 0.7
	case "heavy_rain":
		weatherMult = 0.4
	case "hot":
		weatherMult = 0.9
	}

	expected := baseDailyBookings * dayTypeBookingMultiplier[dayType] *
		seasonBookingMultiplier[season] * weatherMult
	count := int(expected * (0.80 + 0.40*g.rng.Float64()))
	if count < 1 {
		count = 1
	}

	bookings := make([]domain.Booking, 0, count)
	for i := 0; i < count; i++ {
		g.counter++

		hour := pick(g.rng, hourlyPickupWeights)
		minute := g.rng.Intn(60)
		rentalStart := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)

		advance := pick(g.rng, advanceDayChoices)
		bookedAt := rentalStart.AddDate(0, 0, -advance).Add(-time.Duration(g.rng.Intn(13)) * time.Hour)

		vehicle := pick(g.rng, vehicleChoices)

		bookings = append(bookings, domain.Booking{
			BookingID:      fmt.Sprintf("BK-%06d", g.counter),
			BookedAt:       bookedAt,
			RentalStart:    rentalStart,
			DurationHours:  pick(g.rng, durationChoices),
			VehicleType:    vehicle,
			PickupLocation: pickupLocations[g.rng.Intn(len(pickupLocations))],
			BaseRatePerHr:  domain.VehicleRateCard[vehicle].BaseRate,
			DayType:        dayType,
			IsHoliday:      g.cal.IsHoliday(d),
			IsWeekend:      calendar.MondayIndex(d.Weekday()) >= 5,
			Season:         season,
			Weather:        weather,
		})
	}

	return bookings
}

func pick[T any](rng *rand.Rand, choices []weighted[T]) T {
	total := 0.0
	for _, c := range choices {
		total += c.weight
	}
	r := rng.Float64() * total
	for _, c := range choices {
		r -= c.weight
		if r <= 0 {
			return c.value
		}
	}
	return choices[len(choices)-1].value
}

var csvHeader = []string{
	"booking_id", "booking_datetime", "rental_start", "duration_hours",
	"vehicle_type", "pickup_location", "base_price_per_hr", "day_type",
	"is_holiday", "is_weekend", "season", "weather",
}

// WriteCSV writes bookings in the format the analyzer's CSV source reads.
func WriteCSV(w io.Writer, bookings []domain.Booking) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, b := range bookings {
		record := []string{
			b.BookingID,
			b.BookedAt.Format(timestampLayout),
			b.RentalStart.Format(timestampLayout),
			strconv.Itoa(b.DurationHours),
			string(b.VehicleType),
			b.PickupLocation,
			strconv.FormatFloat(b.BaseRatePerHr, 'f', 2, 64),
			string(b.DayType),
			strconv.FormatBool(b.IsHoliday),
			strconv.FormatBool(b.IsWeekend),
			b.Season,
			b.Weather,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
