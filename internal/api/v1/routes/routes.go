package routes

import (
	"github.com/gin-gonic/gin"
	"suomicast/internal/api/middleware"
	"suomicast/internal/api/v1/handlers"
	"suomicast/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	// Apply global middleware for v1
	router.Use(middleware.RequestID())

	// Episode routes
	episodeHandler := handlers.NewEpisodeHandler(container.EpisodeService)
	episodes := router.Group("/episodes")
	{
		episodes.GET("", episodeHandler.List)
		episodes.GET("/current", episodeHandler.GetCurrent)
		episodes.GET("/:dateKey", episodeHandler.GetByDate)
		episodes.POST("/pending/apply", episodeHandler.ApplyPending)
		episodes.POST("/:dateKey/select", episodeHandler.Select)
		episodes.GET("/:dateKey/audio", episodeHandler.GetAudio)
	}

	// Player routes
	playerHandler := handlers.NewPlayerHandler(container.PlayerService)
	player := router.Group("/player")
	{
		player.GET("", playerHandler.GetState)
		player.POST("/time", playerHandler.UpdateTime)
		player.POST("/seek", playerHandler.Seek)
		player.POST("/media-time", playerHandler.ReconcileMediaTime)
		player.POST("/playing", playerHandler.SetPlaying)
		player.POST("/volume", playerHandler.SetVolume)
		player.POST("/overlay/close", playerHandler.CloseOverlay)
		player.POST("/segments/:id/click", playerHandler.ClickSegment)
	}

	// Translation routes. Registered unconditionally: with no translator the
	// service reports 503, never a bare 404.
	translationHandler := handlers.NewTranslationHandler(container.TranslationService)
	translations := router.Group("/translations")
	{
		translations.POST("", translationHandler.Translate)
		translations.GET("/languages", translationHandler.Languages)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	EpisodeService     services.EpisodeService
	PlayerService      services.PlayerService
	TranslationService services.TranslationService
}
