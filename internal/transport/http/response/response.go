package response

import "github.com/gin-gonic/gin"

// Error writes the flat error envelope used across the whole API. No
// internal detail (SQL text, stack traces) ever goes through here; the
// services log causes and hand the transport a user-safe message.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
