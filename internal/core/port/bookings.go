package port

import (
	"context"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

// BookingSource streams historical rentals into the profile analyzer.
// Implementations: Postgres (pgx) and CSV export.
type BookingSource interface {
	Bookings(ctx context.Context) ([]domain.Booking, error)
}
