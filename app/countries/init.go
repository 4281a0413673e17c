package countries

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/osahenru/atlas/internal/logger"
	"github.com/osahenru/atlas/internal/sanitizer"
)

// Dependencies represent the dependencies needed for the countries module
type Dependencies struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Feeds    FeedClient
	Renderer SummaryRenderer
	Images   ImageStore
	Stripper sanitizer.TextStripperer
	Config   *Config
}

// Init initializes the countries module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) {
	repo := NewRepository(deps.DB)
	statusRepo := NewStatusRepository(deps.DB)

	merger := NewMerger(deps.Stripper)
	refresher := NewRefreshOrchestrator(
		deps.Feeds,
		merger,
		repo,
		statusRepo,
		deps.Renderer,
		deps.Images,
		deps.Logger,
		deps.Config.TopCountries,
	)

	srvs := NewService(repo, statusRepo, refresher, deps.Images)
	handler := NewHandler(srvs)

	countriesGroup := r.Group("/countries")
	countriesGroup.POST("/refresh", handler.RefreshCountries)
	countriesGroup.GET("", handler.ListCountries)
	countriesGroup.GET("/image", handler.GetSummaryImage)
	countriesGroup.GET("/:name", handler.GetCountry)
	countriesGroup.DELETE("/:name", handler.DeleteCountry)

	r.GET("/status", handler.GetStatus)
}
