package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/swipesafe/backend/internal/games"
)

func (h *Handler) GetPhishingLevels(c *gin.Context) {
	c.JSON(http.StatusOK, games.PhishingLevels())
}

func (h *Handler) GetPhishingLevel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Level not found"})
		return
	}
	level, ok := games.PhishingLevelByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Level not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": level})
}

func (h *Handler) GetPasswordLevels(c *gin.Context) {
	c.JSON(http.StatusOK, games.PasswordLevels())
}

func (h *Handler) GetSQLLevels(c *gin.Context) {
	c.JSON(http.StatusOK, games.SQLLevels())
}
