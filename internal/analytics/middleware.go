package analytics

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var untrackedPrefixes = []string{
	"/static/",
	"/admin",
	"/healthz",
	"/favicon",
	"/privacy",
	"/out/",
}

// Middleware records page visits in the background once the request has
// been handled. Only successful responses from registered routes count, so
// 404s and scanner traffic are ignored. Static assets, admin pages and
// requests sending DNT: 1 are not recorded.
func Middleware(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || !tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		if c.FullPath() == "" || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.TrackVisit(ctx, ip, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
	}
}

func tracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}
