package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SaveGameState acknowledges a client progress payload. Progress lives on the
// client; the server echoes back what it received.
func (h *Handler) SaveGameState(c *gin.Context) {
	var state map[string]any
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Game state saved",
		"data":    state,
	})
}
