package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery converts handler panics into a 500 response carrying the panic
// text, so clients see the cause instead of a dropped connection.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Server Error",
			"message": fmt.Sprintf("%v", recovered),
		})
	})
}
