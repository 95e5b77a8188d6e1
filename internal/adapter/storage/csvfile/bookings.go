// Package csvfile reads booking history from a CSV export, the same shape
// the datagen tool writes.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

const timestampLayout = "2006-01-02T15:04:05"

type BookingFile struct {
	path string
}

func NewBookingFile(path string) *BookingFile {
	return &BookingFile{path: path}
}

func (f *BookingFile) Bookings(ctx context.Context) ([]domain.Booking, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open bookings csv: %w", err)
	}
	defer file.Close()

	return ReadBookings(file)
}

// ReadBookings parses a bookings CSV with a header row. Column order is
// fixed by the header, not positional.
func ReadBookings(r io.Reader) ([]domain.Booking, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	var bookings []domain.Booking
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		b, err := parseRecord(record, col)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func parseRecord(record []string, col map[string]int) (domain.Booking, error) {
	get := func(name string) string {
		if i, ok := col[name]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	bookedAt, err := time.Parse(timestampLayout, get("booking_datetime"))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("parse booking_datetime: %w", err)
	}
	rentalStart, err := time.Parse(timestampLayout, get("rental_start"))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("parse rental_start: %w", err)
	}
	duration, err := strconv.Atoi(get("duration_hours"))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("parse duration_hours: %w", err)
	}
	baseRate, err := strconv.ParseFloat(get("base_price_per_hr"), 64)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("parse base_price_per_hr: %w", err)
	}

	return domain.Booking{
		BookingID:      get("booking_id"),
		BookedAt:       bookedAt,
		RentalStart:    rentalStart,
		DurationHours:  duration,
		VehicleType:    domain.VehicleType(get("vehicle_type")),
		PickupLocation: get("pickup_location"),
		BaseRatePerHr:  baseRate,
		DayType:        domain.DayType(get("day_type")),
		IsHoliday:      get("is_holiday") == "true" || get("is_holiday") == "True",
		IsWeekend:      get("is_weekend") == "true" || get("is_weekend") == "True",
		Season:         get("season"),
		Weather:        get("weather"),
	}, nil
}
