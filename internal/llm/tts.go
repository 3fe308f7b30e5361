package llm

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/swipesafe/backend/internal/config"
	"github.com/swipesafe/backend/internal/simulation"
)

const elevenLabsModel = "eleven_turbo_v2_5"

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type speechRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// ElevenLabsClient synthesizes speech through the ElevenLabs REST API and
// returns it as a data URI for direct embedding.
type ElevenLabsClient struct {
	cfg    *config.SpeechEnvConfig
	client *resty.Client
}

func NewElevenLabsClient(cfg *config.SpeechEnvConfig) *ElevenLabsClient {
	client := resty.New().
		SetBaseURL(cfg.ElevenLabsBaseURL).
		SetTimeout(cfg.ElevenLabsTimeout).
		SetHeader("xi-api-key", cfg.ElevenLabsAPIKey)
	return &ElevenLabsClient{cfg: cfg, client: client}
}

func (e *ElevenLabsClient) Synthesize(ctx context.Context, text string, voice simulation.VoiceProfile) AudioResult {
	if text == "" {
		return audioFailed("No text provided")
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(speechRequest{
			Text:    text,
			ModelID: elevenLabsModel,
			VoiceSettings: voiceSettings{
				Stability:       0.65,
				SimilarityBoost: 0.85,
				Style:           0.4,
				UseSpeakerBoost: true,
			},
		}).
		Post("/text-to-speech/" + voice.VoiceID)
	if err != nil {
		log.Error().Err(err).Str("voice", voice.Type).Msg("text-to-speech request failed")
		return audioFailed(err.Error())
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("text-to-speech non-2xx")
		return audioFailed(fmt.Sprintf("ElevenLabs API error: %d", resp.StatusCode()))
	}

	encoded := base64.StdEncoding.EncodeToString(resp.Body())
	log.Debug().Int("bytes", len(resp.Body())).Str("voice", voice.Type).Msg("synthesized speech")
	return audioOK("data:audio/mpeg;base64,"+encoded, voice.Name)
}
