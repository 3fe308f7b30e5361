package simulation

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Turn is one entry of the client-supplied conversation transcript.
type Turn struct {
	Role    string `json:"role"` // "user" or "caller"
	Content string `json:"content"`
}

// TextGenerator is the narrow seam to the generative-text provider.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ReplySource int

const (
	SourceGenerated ReplySource = iota
	SourceScripted
)

// Reply is the next caller line, tagged with where it came from.
type Reply struct {
	Text   string
	Source ReplySource
}

// Only the most recent transcript turns are rendered into the prompt.
const contextWindow = 6

// Responder produces the next line of a simulated call. With no generator
// configured, or whenever the provider call fails or returns unusable text,
// it falls back to a scripted line; it never returns an error.
type Responder struct {
	generator TextGenerator
}

// NewResponder builds a Responder. generator may be nil, which pins the
// responder to its scripted fallback.
func NewResponder(generator TextGenerator) *Responder {
	return &Responder{generator: generator}
}

func (r *Responder) Reply(ctx context.Context, scenario Scenario, history []Turn, userMessage string) Reply {
	if r.generator != nil {
		prompt := buildPrompt(scenario, history, userMessage)
		text, err := r.generator.Generate(ctx, prompt)
		if err != nil {
			log.Warn().Err(err).Str("scenario", scenario.ID).Msg("text generation failed, using scripted reply")
		} else if trimmed := strings.TrimSpace(text); trimmed != "" {
			return Reply{Text: trimmed, Source: SourceGenerated}
		} else {
			log.Warn().Str("scenario", scenario.ID).Msg("text generation returned empty text, using scripted reply")
		}
	}
	return Reply{Text: scriptedReply(scenario.Category, len(history)), Source: SourceScripted}
}

// scriptedReply is the deterministic fallback: pure, total, keyed only on
// category and transcript length.
func scriptedReply(category Category, transcriptLen int) string {
	if transcriptLen < 4 {
		if category == CategoryLegitimate {
			return "Thank you for confirming that. Is there anything else I can help you with today?"
		}
		return "I understand. Now I really need to proceed with verification. Can you provide that information?"
	}
	return "Okay, thank you for that. Let me proceed with the next step."
}

func buildPrompt(scenario Scenario, history []Turn, userMessage string) string {
	turns := make([]Turn, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, Turn{Role: "user", Content: userMessage})
	if len(turns) > contextWindow {
		turns = turns[len(turns)-contextWindow:]
	}

	var convo strings.Builder
	for _, turn := range turns {
		role := scenario.CallerName
		if turn.Role == "user" {
			role = "User"
		}
		fmt.Fprintf(&convo, "%s: %s\n", role, turn.Content)
	}

	if scenario.Category == CategoryLegitimate {
		return fmt.Sprintf(`You are %s from %s, a legitimate customer support representative.
You are helpful, professional, and genuinely trying to help the customer.
You NEVER ask for passwords, full SSN, or sensitive banking information.
You only verify information that was already provided by the customer.
Keep responses VERY SHORT (1 sentence max).
Adapt to what the customer says and respond genuinely to their concerns.
If they seem confused or suspicious, reassure them and explain everything clearly.

Conversation so far:
%s
Respond briefly. Be helpful and honest.`, scenario.CallerName, scenario.Company, convo.String())
	}

	// The scam persona chases only the scenario's first two information
	// targets to keep the pressure focused.
	targets := scenario.InfoRequests
	if len(targets) > 2 {
		targets = targets[:2]
	}
	return fmt.Sprintf(`You are %s, a %s caller from %s.
Your ONLY goal is to get personal information (%s).
Be AGGRESSIVE, pushy, and create URGENCY. Use pressure tactics.
Sound like a real scammer - be manipulative and threatening.
Keep responses VERY SHORT (1 sentence max - like 10-15 words).
Interrupt them. Don't take no for an answer. Demand the information NOW.
If they refuse or hesitate, threaten consequences or say it's their last chance.

Conversation so far:
%s
Respond in 1 short sentence. Be aggressive and pushy. DEMAND what you need.`,
		scenario.CallerName, scenario.Category, scenario.Company, strings.Join(targets, ", "), convo.String())
}
