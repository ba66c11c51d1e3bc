package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Cache sets Cache-Control by route family. Pages reflect live article
// status so browsers revalidate them; embedded assets may be reused for an hour.
func Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		switch {
		case strings.HasPrefix(path, "/api/"), strings.HasSuffix(path, "/events"), path == "/health":
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
		case strings.HasPrefix(path, "/static/"):
			c.Header("Cache-Control", "public, max-age=3600, must-revalidate")
		default:
			c.Header("Cache-Control", "no-cache")
		}

		c.Next()
	}
}

// CORS opens the read-only JSON routes to other origins
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Expose-Headers", "X-Request-ID, Content-Disposition")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
