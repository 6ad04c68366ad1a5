package middleware

import (
	"GameAdmin/internal/shared/transport"
	"GameAdmin/internal/shared/transport/http/dto"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 1024
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPLimiter 为每个客户端 IP 维护一个令牌桶。
type IPLimiter struct {
	mu      sync.Mutex
	rps     rate.Limit
	burst   int
	entries map[string]*limiterEntry
	now     func() time.Time
}

func NewIPLimiter(rps float64, burst int) *IPLimiter {
	return &IPLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		entries: make(map[string]*limiterEntry),
		now:     time.Now,
	}
}

func (l *IPLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.entries) >= limiterSweepSize {
		l.sweep(now)
	}
	e, ok := l.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.entries[ip] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (l *IPLimiter) sweep(now time.Time) {
	for ip, e := range l.entries {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(l.entries, ip)
		}
	}
}

// RateLimit 超限时调用 onLimit；onLimit 为空时返回 429 JSON。
func RateLimit(l *IPLimiter, onLimit gin.HandlerFunc) gin.HandlerFunc {
	if onLimit == nil {
		onLimit = func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Error(transport.RateLimited, "too many requests"))
		}
	}
	return func(c *gin.Context) {
		if l.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		transport.SetErrorReason(c.Request.Context(), "RATE_LIMITED")
		onLimit(c)
		c.Abort()
	}
}
