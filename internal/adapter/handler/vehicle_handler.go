package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

type VehicleInfo struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	BaseRate    float64 `json:"base_rate"`
	FloorRate   float64 `json:"floor_rate"`
	CeilingRate float64 `json:"ceiling_rate"`
}

type VehicleHandler struct{}

func NewVehicleHandler() *VehicleHandler {
	return &VehicleHandler{}
}

// ListVehicles returns the rate card: every category with its display name
// and the documentary floor/ceiling guards.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	names := domain.VehicleTypeNames()
	vehicles := make([]VehicleInfo, 0, len(names))
	for _, name := range names {
		rates := domain.VehicleRateCard[domain.VehicleType(name)]
		vehicles = append(vehicles, VehicleInfo{
			Type:        name,
			Name:        rates.DisplayName,
			BaseRate:    rates.BaseRate,
			FloorRate:   rates.FloorRate,
			CeilingRate: rates.CeilingRate,
		})
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}
