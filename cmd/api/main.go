package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/osahenru/atlas/app"
	"github.com/osahenru/atlas/app/api"
	"github.com/osahenru/atlas/app/countries"
	"github.com/osahenru/atlas/app/database"
	"github.com/osahenru/atlas/internal/artifact"
	"github.com/osahenru/atlas/internal/cache"
	"github.com/osahenru/atlas/internal/feeds"
	"github.com/osahenru/atlas/internal/logger"
	"github.com/osahenru/atlas/internal/render"
	"github.com/osahenru/atlas/internal/sanitizer"
)

// @title Atlas API
// @version 1.0
// @description Country data aggregation service: merges a public country
// @description directory with live exchange rates and serves the result.

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, cfg.LogLevel, logger.Fields{
		"service":     "atlas",
		"environment": cfg.Env,
	})

	imageCache := cache.New[[]byte](cfg.Countries.CacheBackend, cfg.Countries.RedisOptions())
	imageStore := artifact.NewImageStore(cfg.Countries.ImagePath, imageCache, cfg.Countries.ImageCacheTTL)

	r := gin.Default()
	r.Use(api.CorsMiddleware())

	apiV1 := r.Group("/api/v1")
	apiV1.GET("/healthz", api.HealthCheck)

	countries.Init(apiV1, countries.Dependencies{
		DB:       db,
		Logger:   appLogger,
		Feeds:    feeds.NewClient(cfg.Countries.FeedOptions()),
		Renderer: render.NewSummaryRenderer(),
		Images:   imageStore,
		Stripper: sanitizer.NewTextStripper(),
		Config:   &cfg.Countries,
	})

	appLogger.Info("starting Atlas API server", logger.Fields{
		"host": cfg.AppHost,
		"port": cfg.AppPort,
	})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
