package models

import "time"

// SessionRecord is the stored outcome of one completed live-call session.
type SessionRecord struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	SessionID  string    `json:"session_id"`
	ScenarioID string    `json:"scenario_id"`
	Turns      int       `json:"turns"`
	CreatedAt  time.Time `json:"created_at"`
}
