package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rendyak/karirku/internal/metrics"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// rateLimit keeps one token bucket per client IP. Entries are never evicted;
// the expected client population is tiny.
func rateLimit(perSecond float64, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		mu.Lock()
		limiter, ok := limiters[c.ClientIP()]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
			limiters[c.ClientIP()] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
			return
		}
		c.Next()
	}
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())

		log.Debugf("%s %s -> %d in %v", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start))
	}
}
