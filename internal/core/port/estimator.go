package port

import (
	"time"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

// DemandEstimator scores a rental datetime. The single-dimension and
// cross-dimensional models are interchangeable behind this interface; the
// composition root picks one.
type DemandEstimator interface {
	Estimate(rentalAt time.Time) domain.DemandResult
}
