package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader       = "X-Request-Id"
	maxTrackedClients     = 10_000
	clientLimiterIdleTime = 10 * time.Minute
	clientSweepInterval   = time.Minute
)

// CORSMiddleware allows browser clients from any origin to call the service
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Api-Key, "+requestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", requestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request.Header.Set(requestIDHeader, id)
		c.Next()
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter applies a global and a per-client request limit. Idle clients are swept at most once
// per clientSweepInterval, and only while more than maxTrackedClients are tracked.
type rateLimiter struct {
	global    *rate.Limiter
	mut       sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
	rps       rate.Limit
	burst     int
	metrics   MetricsHandler
}

func newRateLimiter(rps float64, burst int, metrics MetricsHandler) *rateLimiter {
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		global:  rate.NewLimiter(rate.Limit(rps), burst),
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
		metrics: metrics,
	}
}

func (rl *rateLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			rl.metrics.RecordRateLimited()
			log.Debug("request rate limited", "client", c.ClientIP(), "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func (rl *rateLimiter) allow(client string) bool {
	if !rl.global.Allow() {
		return false
	}

	rl.mut.Lock()
	defer rl.mut.Unlock()

	now := time.Now()
	item, found := rl.clients[client]
	if !found {
		item = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[client] = item
	}
	item.lastSeen = now

	if len(rl.clients) > maxTrackedClients && now.Sub(rl.lastSweep) >= clientSweepInterval {
		rl.cleanup(now.Add(-clientLimiterIdleTime))
		rl.lastSweep = now
	}

	return item.limiter.Allow()
}

// cleanup must be called with the mutex held
func (rl *rateLimiter) cleanup(threshold time.Time) {
	for client, item := range rl.clients {
		if item.lastSeen.Before(threshold) {
			delete(rl.clients, client)
		}
	}
}
