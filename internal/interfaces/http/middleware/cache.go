package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"gearshop/internal/infrastructure/cache"
	"gearshop/internal/shared/logger"
)

type cachingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheResponse serves GET responses from the cache when present and
// stores successful responses on miss. Entries expire on TTL only, so
// writes may be invisible until the entry lapses.
func CacheResponse(store cache.ResponseCache, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		body, hit, err := store.Get(c.Request.Context(), key)
		if err != nil {
			log.Warnw("response cache unavailable", "key", key, "error", err)
		} else if hit {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		writer := &cachingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			if err := store.Set(c.Request.Context(), key, writer.body.Bytes()); err != nil {
				log.Warnw("failed to store cached response", "key", key, "error", err)
			}
		}
	}
}
