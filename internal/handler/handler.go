// Package handler contains the gin HTTP handlers.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swipesafe/backend/internal/llm"
	"github.com/swipesafe/backend/internal/middleware"
	"github.com/swipesafe/backend/internal/simulation"
)

// Handler bundles the shared read-only collaborators. synth may be nil when
// no speech provider is configured; audio requests then fail in-band.
type Handler struct {
	catalog   *simulation.Catalog
	responder *simulation.Responder
	synth     llm.Synthesizer
}

func New(catalog *simulation.Catalog, responder *simulation.Responder, synth llm.Synthesizer) *Handler {
	return &Handler{
		catalog:   catalog,
		responder: responder,
		synth:     synth,
	}
}

// RegisterRoutes wires the full route surface onto the engine.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found", "message": "Route not found"})
	})

	router.POST("/signup", Signup)
	router.POST("/login", Login)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/games/phishing", h.GetPhishingLevels)
		api.GET("/games/phishing/:id", h.GetPhishingLevel)
		api.GET("/games/password", h.GetPasswordLevels)
		api.GET("/games/sql", h.GetSQLLevels)
		api.POST("/game-state", h.SaveGameState)
	}

	scammer := api.Group("/scammer").Use(middleware.ProviderRateLimit())
	{
		scammer.POST("/greeting", h.GetScammerGreeting)
		scammer.POST("/respond", h.GetScammerResponse)
		scammer.POST("/audio", h.GenerateScammerAudio)
	}

	protected := api.Group("").Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", Profile)
		protected.GET("/history", GetCallHistory)
	}

	router.GET("/ws/call", h.HandleLiveCall)
}
