package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/parkit/parkit-backend-go/internal/service"
	"github.com/parkit/parkit-backend-go/pkg/response"
)

// PredictionHandler handles HTTP requests for availability predictions
type PredictionHandler struct {
	predictionService *service.PredictionService
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionService *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
	}
}

// GetPredictions handles GET /api/v1/predictions
// Query params hour (0-23) and day (0-6, 0=Sunday) select the moment to
// score; omitting both uses the current wall clock.
func (h *PredictionHandler) GetPredictions(c *gin.Context) {
	hourStr := c.Query("hour")
	dayStr := c.Query("day")

	// No explicit moment requested: predict for now
	if hourStr == "" && dayStr == "" {
		response.Success(c, h.predictionService.PredictCurrent())
		return
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		response.BadRequest(c, "Invalid hour parameter")
		return
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		response.BadRequest(c, "Invalid day parameter")
		return
	}

	results, err := h.predictionService.PredictFor(hour, day)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, results)
}

// GetCurrentPredictions handles GET /api/v1/predictions/current
func (h *PredictionHandler) GetCurrentPredictions(c *gin.Context) {
	response.Success(c, h.predictionService.PredictCurrent())
}

// GetTraffic handles GET /api/v1/traffic
func (h *PredictionHandler) GetTraffic(c *gin.Context) {
	response.Success(c, h.predictionService.CurrentConditions())
}
