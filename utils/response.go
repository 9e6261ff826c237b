package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONError sends the platform error body: {"error": <category>, "description": <message>}
func JSONError(c *gin.Context, status int, category, description string) {
	c.JSON(status, gin.H{
		"error":       category,
		"description": description,
	})
}
