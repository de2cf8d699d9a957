package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers panics into a JSON {"error": ...} response.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[API] panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		if msg, ok := recovered.(string); ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
		}
		c.Abort()
	})
}
