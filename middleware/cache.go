package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"guest-admin/config"
)

// bodyCapture copies the response body while it is written to the client.
type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache serves aggregate GET responses from redis. Keys carry a
// generation number, so InvalidateOnWrite drops every cached view with a
// single INCR. A nil client disables caching.
type ResponseCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewResponseCache(rdb *redis.Client, prefix string, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ResponseCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (rc *ResponseCache) Enabled() bool {
	return rc != nil && rc.rdb != nil
}

func (rc *ResponseCache) generationKey() string {
	return rc.prefix + ":gen"
}

func (rc *ResponseCache) key(ctx context.Context, c *gin.Context) string {
	gen, err := rc.rdb.Get(ctx, rc.generationKey()).Int64()
	if err != nil && err != redis.Nil {
		config.Log.Warn("cache generation lookup failed", zap.Error(err))
	}
	sum := sha1.Sum([]byte(c.FullPath() + "?" + c.Request.URL.RawQuery))
	return fmt.Sprintf("%s:%d:%x", rc.prefix, gen, sum[:])
}

// Cache stores 200 responses for the configured TTL and marks responses
// with X-Cache HIT or MISS.
func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rc.Enabled() || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rc.key(ctx, c)
		if body, err := rc.rdb.Get(ctx, key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = w
		c.Header("X-Cache", "MISS")
		c.Next()

		if w.Status() == http.StatusOK && w.buf.Len() > 0 {
			if err := rc.rdb.Set(context.Background(), key, w.buf.Bytes(), rc.ttl).Err(); err != nil {
				config.Log.Warn("cache store failed", zap.String("path", c.FullPath()), zap.Error(err))
			}
		}
	}
}

// InvalidateOnWrite bumps the cache generation after write requests. A
// server error may follow a partial write, so it bumps too; client errors
// never reach storage and do not.
func (rc *ResponseCache) InvalidateOnWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if !rc.Enabled() || !shouldInvalidate(c.Request.Method, c.FullPath(), c.Writer.Status()) {
			return
		}
		if err := rc.rdb.Incr(context.Background(), rc.generationKey()).Err(); err != nil {
			config.Log.Warn("cache invalidation failed", zap.Error(err))
		}
	}
}

// readOnlyRoutes accept POST but never write.
var readOnlyRoutes = map[string]bool{
	"/api/validate/:entity": true,
}

func shouldInvalidate(method, route string, status int) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	if readOnlyRoutes[route] {
		return false
	}
	return status < http.StatusBadRequest || status >= http.StatusInternalServerError
}
