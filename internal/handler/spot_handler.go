package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/parkit/parkit-backend-go/internal/service"
	"github.com/parkit/parkit-backend-go/pkg/response"
)

// SpotHandler handles HTTP requests for the parking catalog
type SpotHandler struct {
	spotService *service.SpotService
}

// NewSpotHandler creates a new spot handler
func NewSpotHandler(spotService *service.SpotService) *SpotHandler {
	return &SpotHandler{
		spotService: spotService,
	}
}

// ListSpots handles GET /api/v1/spots
func (h *SpotHandler) ListSpots(c *gin.Context) {
	city := c.Query("city")
	response.Success(c, h.spotService.ListSpots(city))
}

// GetSpot handles GET /api/v1/spots/:id
func (h *SpotHandler) GetSpot(c *gin.Context) {
	spot, err := h.spotService.GetSpot(c.Param("id"))
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, spot)
}

// GetNearest handles GET /api/v1/spots/nearest
func (h *SpotHandler) GetNearest(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lat parameter")
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lng parameter")
		return
	}

	limitStr := c.DefaultQuery("limit", "0")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	response.Success(c, h.spotService.Nearest(lat, lng, limit))
}

// GetCities handles GET /api/v1/cities
func (h *SpotHandler) GetCities(c *gin.Context) {
	response.Success(c, h.spotService.Cities())
}
