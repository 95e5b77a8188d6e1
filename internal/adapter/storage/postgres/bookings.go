package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

// BookingStore reads rental history out of the bookings table for the
// profile analyzer. Read-only; the pricing pipeline itself never touches
// the database.
type BookingStore struct {
	pool *pgxpool.Pool
}

func NewBookingStore(pool *pgxpool.Pool) *BookingStore {
	return &BookingStore{pool: pool}
}

const bookingsQuery = `
SELECT booking_id, booking_datetime, rental_start, duration_hours,
       vehicle_type, pickup_location, base_price_per_hr, day_type,
       is_holiday, is_weekend, season, weather
FROM bookings
ORDER BY rental_start`

func (s *BookingStore) Bookings(ctx context.Context) ([]domain.Booking, error) {
	rows, err := s.pool.Query(ctx, bookingsQuery)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var vehicleType, dayType string
		if err := rows.Scan(
			&b.BookingID, &b.BookedAt, &b.RentalStart, &b.DurationHours,
			&vehicleType, &b.PickupLocation, &b.BaseRatePerHr, &dayType,
			&b.IsHoliday, &b.IsWeekend, &b.Season, &b.Weather,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.VehicleType = domain.VehicleType(vehicleType)
		b.DayType = domain.DayType(dayType)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}

	return bookings, nil
}
