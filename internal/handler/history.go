package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swipesafe/backend/internal/models"
	"github.com/swipesafe/backend/internal/storage"
)

type HistoryResponse struct {
	History []models.SessionRecord `json:"history"`
}

// GetCallHistory lists the user's past simulated calls, newest first.
func GetCallHistory(c *gin.Context) {
	username := c.GetString("username")

	userID, err := storage.GetUserIDByUsername(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	records, err := storage.GetSessionRecordsByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: records})
}
