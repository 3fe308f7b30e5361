package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/swipesafe/backend/internal/simulation"
)

type respondRequest struct {
	Message             string            `json:"message"`
	ScenarioID          string            `json:"scenario_id"`
	ConversationHistory []simulation.Turn `json:"conversation_history"`
}

type audioRequest struct {
	Text      string `json:"text"`
	VoiceType string `json:"voice_type"`
}

// GetScammerGreeting starts a new simulated call with a random persona.
func (h *Handler) GetScammerGreeting(c *gin.Context) {
	scenario := h.catalog.Random()

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"greeting":    scenario.Opening,
		"persona":     scenario.Company,
		"caller_name": scenario.CallerName,
		"call_time":   time.Now().Format("03:04 PM"),
		"scenario_id": scenario.ID,
		"call_type":   scenario.Category,
		"difficulty":  scenario.Difficulty,
		"voice":       "default",
	})
}

// GetScammerResponse produces the caller's next line. Provider failures are
// absorbed by the responder; the only client-visible error is an empty
// message.
func (h *Handler) GetScammerResponse(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No message provided"})
		return
	}
	if req.ScenarioID == "" {
		req.ScenarioID = "paypal_scam"
	}

	scenario := h.catalog.Lookup(req.ScenarioID)
	reply := h.responder.Reply(c.Request.Context(), scenario, req.ConversationHistory, req.Message)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"response":    reply.Text,
		"persona":     scenario.Company,
		"scenario_id": req.ScenarioID,
	})
}

// GenerateScammerAudio voices one line. The voice_type field carries the
// scenario id; the voice table resolves it. Synthesis failures are reported
// in-band with HTTP 200.
func (h *Handler) GenerateScammerAudio(c *gin.Context) {
	var req audioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No text provided"})
		return
	}

	if h.synth == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Speech synthesis is not configured"})
		return
	}

	voice := simulation.VoiceFor(req.VoiceType)
	result := h.synth.Synthesize(c.Request.Context(), req.Text, voice)
	c.JSON(http.StatusOK, result)
}
