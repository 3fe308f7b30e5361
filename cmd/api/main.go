package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/swipesafe/backend/internal/auth"
	"github.com/swipesafe/backend/internal/config"
	"github.com/swipesafe/backend/internal/handler"
	"github.com/swipesafe/backend/internal/llm"
	"github.com/swipesafe/backend/internal/logger"
	"github.com/swipesafe/backend/internal/middleware"
	"github.com/swipesafe/backend/internal/simulation"
	"github.com/swipesafe/backend/internal/storage"
)

func main() {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Init(cfg.Environment)
	auth.Init(cfg.JWTSecretKey)

	if err := storage.Init(cfg.DBPath); err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer storage.Close()

	catalog := simulation.NewCatalog()
	responder := simulation.NewResponder(newTextGenerator(cfg))
	synth := newSynthesizer(cfg)

	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	handler.RegisterRoutes(router, handler.New(catalog, responder, synth))

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// newTextGenerator returns nil when no Gemini key is set, which puts the
// responder into scripted mode.
func newTextGenerator(cfg *config.AppConfig) simulation.TextGenerator {
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, using scripted responses")
		return nil
	}
	return llm.NewGeminiClient(&cfg.GeminiEnvConfig)
}

func newSynthesizer(cfg *config.AppConfig) llm.Synthesizer {
	switch cfg.TTSProvider {
	case "google":
		if cfg.GoogleCredentialFile == "" {
			log.Warn().Msg("GOOGLE_APPLICATION_CREDENTIALS not set, speech synthesis disabled")
			return nil
		}
		synth, err := llm.NewGoogleSynthesizer(context.Background(), cfg.GoogleCredentialFile)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Google TTS, speech synthesis disabled")
			return nil
		}
		return synth
	default:
		if cfg.ElevenLabsAPIKey == "" {
			log.Warn().Msg("ELEVENLABS_API_KEY not set, speech synthesis disabled")
			return nil
		}
		return llm.NewElevenLabsClient(&cfg.SpeechEnvConfig)
	}
}
