package main

import (
	"fmt"
	"os"

	"coal-benchmark/internal/api/handlers"
	"coal-benchmark/internal/api/middleware"
	"coal-benchmark/internal/config"
	"coal-benchmark/internal/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	defer logger.Sync()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.L().Fatalw("load config", "path", path, "error", err)
		}
		cfg = loaded
		logger.L().Infow("config loaded", "path", path)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	calculateHandler := handlers.NewCalculateHandler(cfg)
	compareHandler := handlers.NewCompareHandler(cfg)
	metaHandler := handlers.NewMetaHandler(cfg)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/calculate", calculateHandler.Calculate)
		api.POST("/calculate/modes", calculateHandler.Modes)
		api.POST("/calculate/heating", calculateHandler.Heating)
		api.POST("/calculate/annual", calculateHandler.Annual)
		api.POST("/calculate/sensitivity", calculateHandler.Sensitivity)

		api.POST("/compare", compareHandler.Compare)

		api.GET("/parameters/defaults", metaHandler.Defaults)
		api.GET("/corrections", metaHandler.Corrections)
	}

	addr := fmt.Sprintf(":%s", port)
	logger.L().Infow("starting API server", "addr", addr)
	if err := router.Run(addr); err != nil {
		logger.L().Fatalw("server failed", "error", err)
	}
}
