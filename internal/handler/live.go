package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/swipesafe/backend/internal/auth"
	"github.com/swipesafe/backend/internal/simulation"
	"github.com/swipesafe/backend/internal/storage"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type liveFrame struct {
	Response   string `json:"response"`
	ScenarioID string `json:"scenario_id"`
	Persona    string `json:"persona"`
	Audio      string `json:"audio,omitempty"`
}

// HandleLiveCall runs a simulated call over a WebSocket. Authentication uses
// the token query parameter because browsers cannot set headers on WebSocket
// upgrades.
func (h *Handler) HandleLiveCall(c *gin.Context) {
	tokenString := c.Query("token")
	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	username := claims.Username

	var scenario simulation.Scenario
	if key := c.Query("scenario"); key != "" {
		scenario = h.catalog.Lookup(key)
	} else {
		scenario = h.catalog.Random()
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("user", username).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	log.Info().Str("user", username).Str("scenario", scenario.ID).Msg("live call started")

	h.runLiveSession(conn, username, scenario)
}

func (h *Handler) runLiveSession(conn *websocket.Conn, username string, scenario simulation.Scenario) {
	ctx := context.Background()

	if err := conn.WriteJSON(h.liveFrame(ctx, scenario, scenario.Opening)); err != nil {
		log.Error().Err(err).Str("user", username).Msg("failed to send greeting")
		return
	}

	history := []simulation.Turn{
		{Role: "assistant", Content: scenario.Opening},
	}

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		reply := h.responder.Reply(ctx, scenario, history, string(message))
		history = append(history,
			simulation.Turn{Role: "user", Content: string(message)},
			simulation.Turn{Role: "assistant", Content: reply.Text},
		)

		if err := conn.WriteJSON(h.liveFrame(ctx, scenario, reply.Text)); err != nil {
			log.Error().Err(err).Str("user", username).Msg("failed to send reply")
			break
		}
	}

	h.saveLiveSession(username, scenario, len(history))
	log.Info().Str("user", username).Str("scenario", scenario.ID).Msg("live call ended")
}

func (h *Handler) liveFrame(ctx context.Context, scenario simulation.Scenario, text string) liveFrame {
	frame := liveFrame{
		Response:   text,
		ScenarioID: scenario.ID,
		Persona:    scenario.Company,
	}
	if h.synth != nil {
		if result := h.synth.Synthesize(ctx, text, simulation.VoiceFor(scenario.ID)); result.Success {
			frame.Audio = result.Audio
		}
	}
	return frame
}

func (h *Handler) saveLiveSession(username string, scenario simulation.Scenario, turns int) {
	userID, err := storage.GetUserIDByUsername(username)
	if err != nil {
		log.Error().Err(err).Str("user", username).Msg("failed to look up user for session record")
		return
	}
	sessionID := uuid.New().String()
	if err := storage.CreateSessionRecord(userID, sessionID, scenario.ID, turns); err != nil {
		log.Error().Err(err).Str("user", username).Msg("failed to save session record")
	}
}
