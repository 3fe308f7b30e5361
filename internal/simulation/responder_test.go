package simulation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func scamScenario() Scenario {
	return NewCatalog().Lookup("paypal_scam")
}

func legitScenario() Scenario {
	return NewCatalog().Lookup("legitimate_call")
}

func TestReplyUsesGeneratedText(t *testing.T) {
	gen := &stubGenerator{text: "  Give me the card number now.  "}
	r := NewResponder(gen)

	reply := r.Reply(context.Background(), scamScenario(), nil, "Who is this?")

	assert.Equal(t, SourceGenerated, reply.Source)
	assert.Equal(t, "Give me the card number now.", reply.Text)
}

func TestReplyFallsBackOnGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream timeout")}
	r := NewResponder(gen)

	reply := r.Reply(context.Background(), scamScenario(), nil, "Who is this?")

	assert.Equal(t, SourceScripted, reply.Source)
	assert.NotEmpty(t, reply.Text)
}

func TestReplyFallsBackOnBlankText(t *testing.T) {
	gen := &stubGenerator{text: "   \n\t  "}
	r := NewResponder(gen)

	reply := r.Reply(context.Background(), scamScenario(), nil, "Who is this?")

	assert.Equal(t, SourceScripted, reply.Source)
}

func TestReplyNilGeneratorIsScripted(t *testing.T) {
	r := NewResponder(nil)

	reply := r.Reply(context.Background(), scamScenario(), nil, "Who is this?")

	assert.Equal(t, SourceScripted, reply.Source)
	assert.Equal(t,
		"I understand. Now I really need to proceed with verification. Can you provide that information?",
		reply.Text)
}

func TestScriptedReplyByCategoryAndLength(t *testing.T) {
	r := NewResponder(nil)
	ctx := context.Background()

	early := r.Reply(ctx, legitScenario(), nil, "Hello?")
	assert.Equal(t,
		"Thank you for confirming that. Is there anything else I can help you with today?",
		early.Text)

	long := make([]Turn, 4)
	late := r.Reply(ctx, legitScenario(), long, "Okay")
	assert.Equal(t, "Okay, thank you for that. Let me proceed with the next step.", late.Text)

	lateScam := r.Reply(ctx, scamScenario(), long, "Okay")
	assert.Equal(t, late.Text, lateScam.Text)
}

func TestScriptedReplyDeterministic(t *testing.T) {
	r := NewResponder(nil)
	ctx := context.Background()

	first := r.Reply(ctx, scamScenario(), nil, "Hello?")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Reply(ctx, scamScenario(), nil, "Hello?"))
	}
}

func TestPromptWindowsHistory(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	r := NewResponder(gen)

	history := []Turn{
		{Role: "user", Content: "oldest line"},
		{Role: "assistant", Content: "reply one"},
		{Role: "user", Content: "line two"},
		{Role: "assistant", Content: "reply two"},
		{Role: "user", Content: "line three"},
		{Role: "assistant", Content: "reply three"},
	}
	r.Reply(context.Background(), scamScenario(), history, "newest line")

	assert.NotContains(t, gen.prompt, "oldest line")
	assert.Contains(t, gen.prompt, "newest line")
	assert.Contains(t, gen.prompt, "reply three")
}

func TestPromptDoesNotMutateHistory(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	r := NewResponder(gen)

	history := make([]Turn, 0, 8)
	history = append(history, Turn{Role: "user", Content: "first"})
	r.Reply(context.Background(), scamScenario(), history, "second")

	require.Len(t, history, 1)
	assert.Equal(t, "first", history[0].Content)
}

func TestScamPromptNamesTargets(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	r := NewResponder(gen)

	scenario := scamScenario()
	r.Reply(context.Background(), scenario, nil, "Hello?")

	assert.Contains(t, gen.prompt, scenario.CallerName)
	assert.Contains(t, gen.prompt, scenario.Company)
	// Only the first two information targets drive the persona.
	assert.Contains(t, gen.prompt, strings.Join(scenario.InfoRequests[:2], ", "))
	assert.NotContains(t, gen.prompt, scenario.InfoRequests[3])
}

func TestScamPromptIncludesConversation(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	r := NewResponder(gen)

	history := []Turn{
		{Role: "user", Content: "please stop calling me"},
	}
	r.Reply(context.Background(), scamScenario(), history, "who are you really")

	assert.Contains(t, gen.prompt, "please stop calling me")
	assert.Contains(t, gen.prompt, "who are you really")
	assert.NotContains(t, gen.prompt, "MISSING")
}

func TestLegitimatePromptIsHelpful(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	r := NewResponder(gen)

	r.Reply(context.Background(), legitScenario(), nil, "Hello?")

	assert.Contains(t, gen.prompt, "legitimate customer support representative")
	assert.NotContains(t, gen.prompt, "AGGRESSIVE")
}
