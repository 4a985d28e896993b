package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parkit/parkit-backend-go/internal/config"
	"github.com/parkit/parkit-backend-go/internal/handler"
	"github.com/parkit/parkit-backend-go/internal/middleware"
	"github.com/parkit/parkit-backend-go/internal/service"
)

// SetupRouter wires the dashboard API
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "ParkIt Backend API is running",
		})
	})

	predictionHandler := handler.NewPredictionHandler(service.NewPredictionService())
	spotHandler := handler.NewSpotHandler(service.NewSpotService())
	placeHandler := handler.NewPlaceHandler(service.NewPlaceService())

	// API route group
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		spots := api.Group("/spots")
		{
			spots.GET("", spotHandler.ListSpots)
			spots.GET("/nearest", spotHandler.GetNearest)
			spots.GET("/:id", spotHandler.GetSpot)
		}

		predictions := api.Group("/predictions")
		{
			predictions.GET("", predictionHandler.GetPredictions)
			predictions.GET("/current", predictionHandler.GetCurrentPredictions)
		}

		api.GET("/traffic", predictionHandler.GetTraffic)
		api.GET("/places/search", placeHandler.SearchPlaces)
		api.GET("/cities", spotHandler.GetCities)
	}

	return r
}
