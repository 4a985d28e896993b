package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/parkit/parkit-backend-go/internal/service"
	"github.com/parkit/parkit-backend-go/pkg/response"
)

// PlaceHandler handles HTTP requests for destination search
type PlaceHandler struct {
	placeService *service.PlaceService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeService *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{
		placeService: placeService,
	}
}

// SearchPlaces handles GET /api/v1/places/search
func (h *PlaceHandler) SearchPlaces(c *gin.Context) {
	results := h.placeService.Search(c.Query("q"))
	response.Success(c, results)
}
