package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/parkit/parkit-backend-go/internal/api"
	"github.com/parkit/parkit-backend-go/internal/config"
)

func main() {
	cfg := config.Load()

	gin.SetMode(cfg.GinMode)
	router := api.SetupRouter(cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
