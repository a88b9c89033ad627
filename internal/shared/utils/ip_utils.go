package utils

import (
	"github.com/gin-gonic/gin"
)

// ExtractClientIP returns the caller address used for logging and as the
// rate limit key. X-Forwarded-For and X-Real-IP only count when the peer is
// one of the engine's trusted proxies (gin.Engine.SetTrustedProxies).
func ExtractClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
