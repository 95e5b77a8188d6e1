package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

// QuoteEngine is the slice of the pricing core the HTTP layer needs.
type QuoteEngine interface {
	Quote(ctx context.Context, rentalAt time.Time, vehicleType string, durationHours int) (domain.PriceResult, error)
}

// QuoteCache is an optional read-through cache for computed quotes. A nil
// cache disables caching entirely.
type QuoteCache interface {
	Get(ctx context.Context, key string) (domain.PriceResult, bool)
	Set(ctx context.Context, key string, result domain.PriceResult)
}

type PriceHandler struct {
	engine QuoteEngine
	cache  QuoteCache

	// backend keys cached quotes so instances running different demand
	// models never serve each other's entries.
	backend string
	logger  *zap.Logger
}

func NewPriceHandler(engine QuoteEngine, cache QuoteCache, backend string, logger *zap.Logger) *PriceHandler {
	return &PriceHandler{engine: engine, cache: cache, backend: backend, logger: logger}
}

type PriceRequest struct {
	RentalDateTime string `json:"rental_datetime" binding:"required"`
	VehicleType    string `json:"vehicle_type" binding:"required"`
	DurationHours  int    `json:"duration_hours" binding:"required"`
}

func (h *PriceHandler) CalculatePrice(c *gin.Context) {
	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rentalAt, err := time.Parse("2006-01-02T15:04:05", req.RentalDateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid datetime format: " + req.RentalDateTime + "; use ISO format YYYY-MM-DDTHH:MM:SS",
		})
		return
	}

	key := h.quoteKey(req)
	if h.cache != nil {
		if result, ok := h.cache.Get(c.Request.Context(), key); ok {
			c.JSON(http.StatusOK, result)
			return
		}
	}

	result, err := h.engine.Quote(c.Request.Context(), rentalAt, req.VehicleType, req.DurationHours)
	if err != nil {
		if domain.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("quote failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute price"})
		return
	}

	if h.cache != nil {
		h.cache.Set(c.Request.Context(), key, result)
	}

	c.JSON(http.StatusOK, result)
}

func (h *PriceHandler) quoteKey(req PriceRequest) string {
	return "quote:" + h.backend + ":" + req.VehicleType + ":" + req.RentalDateTime + ":" + strconv.Itoa(req.DurationHours)
}
