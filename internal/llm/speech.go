package llm

import (
	"context"

	"github.com/swipesafe/backend/internal/simulation"
)

// AudioResult is the tagged outcome of a synthesis attempt, shaped for
// in-band JSON reporting: provider failures are data, not HTTP errors.
type AudioResult struct {
	Success bool   `json:"success"`
	Audio   string `json:"audio,omitempty"` // data:audio/mpeg;base64,... payload
	Voice   string `json:"voice,omitempty"`
	Error   string `json:"error,omitempty"`
}

func audioOK(audio, voice string) AudioResult {
	return AudioResult{Success: true, Audio: audio, Voice: voice}
}

func audioFailed(reason string) AudioResult {
	return AudioResult{Success: false, Error: reason}
}

// Synthesizer turns one line of text into embeddable speech audio.
// Implementations make a single time-bounded provider call and report
// failure through the result, never through a panic or crash.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voice simulation.VoiceProfile) AudioResult
}
