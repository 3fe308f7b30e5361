package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipesafe/backend/internal/llm"
	"github.com/swipesafe/backend/internal/simulation"
)

type stubGenerator struct {
	text   string
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, nil
}

type fakeSynth struct {
	result    llm.AudioResult
	lastText  string
	lastVoice simulation.VoiceProfile
}

func (f *fakeSynth) Synthesize(_ context.Context, text string, voice simulation.VoiceProfile) llm.AudioResult {
	f.lastText = text
	f.lastVoice = voice
	return f.result
}

func TestGetScammerGreeting(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/scammer/greeting", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "default", body["voice"])
	assert.NotEmpty(t, body["greeting"])
	assert.NotEmpty(t, body["persona"])
	assert.NotEmpty(t, body["caller_name"])
	assert.NotEmpty(t, body["call_time"])
	assert.NotEmpty(t, body["difficulty"])

	// The returned scenario id must resolve back to the same persona.
	catalog := simulation.NewCatalog()
	scenario := catalog.Lookup(body["scenario_id"].(string))
	assert.Equal(t, scenario.Company, body["persona"])
	assert.Equal(t, string(scenario.Category), body["call_type"])
}

func TestGetScammerGreetingIDsFromCatalog(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	known := make(map[string]bool)
	for _, s := range simulation.NewCatalog().All() {
		known[s.ID] = true
	}

	for i := 0; i < 3; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/scammer/greeting", nil)
		require.Equal(t, http.StatusOK, w.Code)
		id, ok := decodeBody(t, w)["scenario_id"].(string)
		require.True(t, ok)
		assert.True(t, known[id], "unknown scenario id %q", id)
	}
}

func TestGetScammerResponseRequiresMessage(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/scammer/respond", map[string]any{
		"message": "", "scenario_id": "paypal_scam",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No message provided", body["error"])
}

func TestGetScammerResponseScripted(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/scammer/respond", map[string]any{
		"message":     "Who is this?",
		"scenario_id": "irs_scam",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "irs_scam", body["scenario_id"])
	assert.Equal(t,
		"I understand. Now I really need to proceed with verification. Can you provide that information?",
		body["response"])

	scenario := simulation.NewCatalog().Lookup("irs_scam")
	assert.Equal(t, scenario.Company, body["persona"])
}

func TestGetScammerResponseDefaultsScenario(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/scammer/respond", map[string]any{
		"message": "Hello?",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "paypal_scam", body["scenario_id"])
}

func TestGetScammerResponseUsesGenerator(t *testing.T) {
	gen := &stubGenerator{text: "Give me the card number right now."}
	router := newTestRouter(t, gen, nil)

	w := doJSON(t, router, http.MethodPost, "/api/scammer/respond", map[string]any{
		"message":     "Why do you need that?",
		"scenario_id": "paypal_scam",
		"conversation_history": []map[string]string{
			{"role": "assistant", "content": "This is PayPal Security."},
			{"role": "user", "content": "Hello?"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Give me the card number right now.", body["response"])
	assert.Contains(t, gen.prompt, "Why do you need that?")
	assert.Contains(t, gen.prompt, "This is PayPal Security.")
}

func TestGenerateScammerAudioRequiresText(t *testing.T) {
	router := newTestRouter(t, nil, &fakeSynth{})

	w := doJSON(t, router, http.MethodPost, "/api/scammer/audio", map[string]any{
		"text": "",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No text provided", body["error"])
}

func TestGenerateScammerAudioUnconfigured(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/scammer/audio", map[string]any{
		"text": "Hello there",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Speech synthesis is not configured", body["error"])
}

func TestGenerateScammerAudioSuccess(t *testing.T) {
	synth := &fakeSynth{result: llm.AudioResult{
		Success: true,
		Audio:   "data:audio/mpeg;base64,AAAA",
		Voice:   "Agent",
	}}
	router := newTestRouter(t, nil, synth)

	w := doJSON(t, router, http.MethodPost, "/api/scammer/audio", map[string]any{
		"text":       "Your account is locked.",
		"voice_type": "bank_fraud_alert",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "data:audio/mpeg;base64,AAAA", body["audio"])
	assert.Equal(t, "Agent", body["voice"])

	assert.Equal(t, "Your account is locked.", synth.lastText)
	assert.Equal(t, simulation.VoiceFemale, synth.lastVoice)
}

func TestGenerateScammerAudioProviderFailure(t *testing.T) {
	synth := &fakeSynth{result: llm.AudioResult{
		Success: false,
		Error:   "ElevenLabs API error: 401",
	}}
	router := newTestRouter(t, nil, synth)

	w := doJSON(t, router, http.MethodPost, "/api/scammer/audio", map[string]any{
		"text": "Hello there",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "ElevenLabs API error: 401", body["error"])
}
