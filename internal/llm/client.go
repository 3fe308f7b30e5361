// Package llm wraps the external AI providers: Gemini text generation and
// the two text-to-speech backends.
package llm

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/swipesafe/backend/internal/config"
)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GeminiClient calls the Gemini generateContent REST API. It implements
// simulation.TextGenerator.
type GeminiClient struct {
	cfg    *config.GeminiEnvConfig
	client *resty.Client
}

func NewGeminiClient(cfg *config.GeminiEnvConfig) *GeminiClient {
	client := resty.New().
		SetBaseURL(cfg.GeminiBaseURL).
		SetTimeout(cfg.GeminiTimeout)
	return &GeminiClient{cfg: cfg, client: client}
}

// Generate sends one prompt and returns the first candidate's text. A single
// attempt, bounded by the configured timeout; no retry.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	var out generateResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.cfg.GeminiAPIKey).
		SetBody(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.cfg.GeminiModel))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("generateContent non-2xx")
		return "", fmt.Errorf("generateContent status %d", resp.StatusCode())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generateContent returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
