package llm

import (
	"context"
	"encoding/base64"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/swipesafe/backend/internal/simulation"
)

const googleSynthesizeTimeout = 30 * time.Second

// GoogleSynthesizer is the Cloud Text-to-Speech alternative to ElevenLabs,
// selected with TTS_PROVIDER=google.
type GoogleSynthesizer struct {
	client *texttospeech.Client
}

func NewGoogleSynthesizer(ctx context.Context, credentialsFile string) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}
	return &GoogleSynthesizer{client: client}, nil
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string, voice simulation.VoiceProfile) AudioResult {
	if text == "" {
		return audioFailed("No text provided")
	}

	gender := texttospeechpb.SsmlVoiceGender_MALE
	if voice.Type == "female" {
		gender = texttospeechpb.SsmlVoiceGender_FEMALE
	}

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: "en-US",
			SsmlGender:   gender,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			// MP3 so the payload can ride in the same data URI as ElevenLabs output.
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	ctx, cancel := context.WithTimeout(ctx, googleSynthesizeTimeout)
	defer cancel()

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("voice", voice.Type).Msg("SynthesizeSpeech failed")
		return audioFailed(err.Error())
	}

	log.Debug().Int("bytes", len(resp.AudioContent)).Str("voice", voice.Type).Msg("synthesized speech")
	encoded := base64.StdEncoding.EncodeToString(resp.AudioContent)
	return audioOK("data:audio/mpeg;base64,"+encoded, voice.Name)
}

func (g *GoogleSynthesizer) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
