package server

import (
	"net/http"
	"strings"
	"time"

	"gearshare/services/sharing/helpers"
	"gearshare/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// RequireIdentity rejects requests without the trusted caller-id header.
func RequireIdentity(c *gin.Context) {
	if strings.TrimSpace(c.GetHeader(helpers.IdentityHeader)) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Validation error",
			helpers.IdentityHeader+" header is required")
		c.Abort()
		return
	}
	c.Next()
}
