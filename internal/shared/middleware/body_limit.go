package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
)

// MaxBodySize caps the request body; reads past the limit fail, which the
// JSON binding reports as a bad request.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.Header("Connection", "close")
			response.AbortFail(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
