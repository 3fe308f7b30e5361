// Package config defines environment configuration structs and loaders.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig is the full process configuration, parsed once at startup.
type AppConfig struct {
	ServerEnvConfig
	GeminiEnvConfig
	SpeechEnvConfig
	AuthEnvConfig
	StorageEnvConfig
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ServerEnvConfig configures the HTTP server.
type ServerEnvConfig struct {
	Port        string `env:"PORT" envDefault:"5000"`
	Environment string `env:"ENVIRONMENT" envDefault:"prod"`
}

// GeminiEnvConfig targets the generative-text provider. An empty key is a
// valid configuration: the responder runs on its scripted fallback.
type GeminiEnvConfig struct {
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiBaseURL string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiModel   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"15s"`
}

// SpeechEnvConfig selects and targets the text-to-speech provider.
type SpeechEnvConfig struct {
	TTSProvider          string        `env:"TTS_PROVIDER" envDefault:"elevenlabs"`
	ElevenLabsAPIKey     string        `env:"ELEVENLABS_API_KEY"`
	ElevenLabsBaseURL    string        `env:"ELEVENLABS_BASE_URL" envDefault:"https://api.elevenlabs.io/v1"`
	ElevenLabsTimeout    time.Duration `env:"ELEVENLABS_TIMEOUT" envDefault:"30s"`
	GoogleCredentialFile string        `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// AuthEnvConfig holds the JWT signing secret for the history surface.
type AuthEnvConfig struct {
	JWTSecretKey string `env:"JWT_SECRET_KEY"`
}

// StorageEnvConfig locates the sqlite database file.
type StorageEnvConfig struct {
	DBPath string `env:"DB_PATH" envDefault:"./swipesafe.db"`
}
