package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube-be/services"
)

// IndexCachePrefix is the key prefix for the cached home feed. Only the index
// route mounts CachePage; every other page renders fresh.
const IndexCachePrefix = "index_page"

// CachePage replays the stored response when a fresh entry exists, otherwise
// it captures the rendered page and stores it for ttl. Only successful GET
// responses are cached; data changes inside the window are deliberately not
// visible until the entry expires.
func CachePage(store services.PageCache, ttl time.Duration, keyPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := keyPrefix + ":" + c.Request.URL.RequestURI()
		if page, ok := store.Get(key); ok {
			c.Data(page.Status, page.ContentType, page.Body)
			c.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK {
			store.Set(key, &services.CachedPage{
				Status:      writer.Status(),
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			}, ttl)
		}
	}
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (cw *captureWriter) Write(data []byte) (int, error) {
	cw.body.Write(data)
	return cw.ResponseWriter.Write(data)
}

func (cw *captureWriter) WriteString(data string) (int, error) {
	cw.body.WriteString(data)
	return cw.ResponseWriter.WriteString(data)
}
