package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"recruitai-backend/internal/delivery/http/response"
	"recruitai-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis, also separates local buckets
	KeyPrefix string
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
}

// maxLocalKeys bounds the in-process bucket map; it is cleared when full.
const maxLocalKeys = 10_000

// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns {count, ttl}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimiter counts requests in Redis when a client is given, so limits hold
// across instances, and in process otherwise or when Redis fails.
type RateLimiter struct {
	config RateLimitConfig
	client *goredis.Client

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

func NewRateLimiter(client *goredis.Client, config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.Limit < 1 {
		config.Limit = 1
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	return &RateLimiter{
		config: config,
		client: client,
		local:  make(map[string]*rate.Limiter),
	}
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.config.KeyPrefix + l.config.KeyFunc(c)

		allowed, remaining, resetAt := l.allow(c.Request.Context(), key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if !allowed {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			logger.Log.Warn("Rate limit exceeded", "key", key, "path", c.FullPath())
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (l *RateLimiter) allow(ctx context.Context, key string) (bool, int, time.Time) {
	if l.client != nil {
		count, resetAt, err := l.checkRedis(ctx, key)
		if err == nil {
			remaining := l.config.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			return count <= l.config.Limit, remaining, resetAt
		}
		// Fail open onto the local limiter
		logger.Log.Warn("Redis rate limit unavailable, using local limiter", "error", err)
	}
	return l.checkLocal(key)
}

// checkRedis runs the atomic increment script
func (l *RateLimiter) checkRedis(ctx context.Context, key string) (int, time.Time, error) {
	ttlSeconds := int(l.config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := l.client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// checkLocal uses a token bucket refilling Limit tokens per Window.
func (l *RateLimiter) checkLocal(key string) (bool, int, time.Time) {
	l.mu.Lock()
	limiter, ok := l.local[key]
	if !ok {
		if len(l.local) >= maxLocalKeys {
			l.local = make(map[string]*rate.Limiter)
		}
		every := l.config.Window / time.Duration(l.config.Limit)
		limiter = rate.NewLimiter(rate.Every(every), l.config.Limit)
		l.local[key] = limiter
	}
	l.mu.Unlock()

	now := time.Now()
	allowed := limiter.AllowN(now, 1)
	tokens := int(limiter.TokensAt(now))
	if tokens < 0 {
		tokens = 0
	}
	resetAt := now.Add(time.Duration(float64(l.config.Limit-tokens) / float64(limiter.Limit()) * float64(time.Second)))
	return allowed, tokens, resetAt
}
