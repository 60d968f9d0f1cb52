package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bdanielcs/dashboard-backend-go/internal/models"
	"github.com/bdanielcs/dashboard-backend-go/internal/service"
	"github.com/bdanielcs/dashboard-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for the pickup map view.
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler.
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// GetPickups handles GET /api/v1/trips/pickups
func (h *TripHandler) GetPickups(c *gin.Context) {
	var filter models.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "miles must be an integer between 1 and 25")
		return
	}

	// Slider default from the original dashboard
	if filter.Miles == 0 {
		filter.Miles = 10
	}

	response.Success(c, h.service.Pickups(filter.Miles))
}
