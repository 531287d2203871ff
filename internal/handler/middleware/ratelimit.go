package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"agora-server/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Token bucket in Redis, atomic via Lua. Refill is computed lazily from
// the elapsed time since the last request, so idle buckets cost nothing.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local refill = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local now_ms = tonumber(ARGV[4])
local ttl_ms = tonumber(ARGV[5])

local bucket = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(bucket[1])
local ts = tonumber(bucket[2])

if tokens == nil then
  tokens = capacity
  ts = now_ms
end

local elapsed = math.max(0, now_ms - ts)
local refilled = math.floor(elapsed / interval_ms) * refill
if refilled > 0 then
  tokens = math.min(capacity, tokens + refilled)
  ts = ts + math.floor(elapsed / interval_ms) * interval_ms
end

local allowed = 0
if tokens > 0 then
  tokens = tokens - 1
  allowed = 1
end

redis.call('HMSET', key, 'tokens', tokens, 'ts', ts)
redis.call('PEXPIRE', key, ttl_ms)
return allowed
`)

type RateLimiter struct {
	client *redis.Client
	cfg    config.RedisConfig
}

func NewRateLimiter(client *redis.Client, cfg config.RedisConfig) *RateLimiter {
	return &RateLimiter{client: client, cfg: cfg}
}

// Limit throttles by client IP within the given route scope. Redis being
// unreachable fails open: availability beats throttling here.
func (r *RateLimiter) Limit(scope string) gin.HandlerFunc {
	if r.client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := "ratelimit:" + scope + ":" + c.ClientIP()

		allowed, err := tokenBucketScript.Run(c.Request.Context(), r.client, []string{key},
			r.cfg.RateLimitCapacity,
			r.cfg.RateLimitRefill,
			r.cfg.RateLimitInterval.Milliseconds(),
			time.Now().UnixMilli(),
			r.cfg.RateLimitTTL.Milliseconds(),
		).Int()
		if err != nil {
			slog.Warn("rate limit check failed, allowing request", "error", err.Error())
			c.Next()
			return
		}

		if allowed == 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
