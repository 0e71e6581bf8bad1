package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/helpdesk-labs/ticket-tracker/internal/config"
	apperrors "github.com/helpdesk-labs/ticket-tracker/pkg/util"
)

// tokenBucketScript refills and consumes atomically so concurrent
// requests against the same bucket cannot overdraw it.
var tokenBucketScript = redis.NewScript(`
    local key = KEYS[1]
    local now_ms = tonumber(ARGV[1])
    local capacity = tonumber(ARGV[2])
    local refill_tokens = tonumber(ARGV[3])
    local interval_ms = tonumber(ARGV[4])
    local ttl_seconds = tonumber(ARGV[5])

    local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
    local tokens = tonumber(state[1])
    local last_refill = tonumber(state[2])

    if tokens == nil or last_refill == nil then
        tokens = capacity
        last_refill = now_ms
    end

    if interval_ms > 0 and refill_tokens > 0 then
        local elapsed = math.max(0, now_ms - last_refill)
        local intervals = math.floor(elapsed / interval_ms)
        if intervals > 0 then
            tokens = math.min(capacity, tokens + (intervals * refill_tokens))
            last_refill = last_refill + (intervals * interval_ms)
        end
    end

    local allowed = 0
    if tokens > 0 then
        allowed = 1
        tokens = tokens - 1
    end

    redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
    redis.call('EXPIRE', key, ttl_seconds)
    return allowed
`)

// NewRateLimiter returns a per-IP token bucket backed by Redis. When the
// limiter is disabled or Redis is unavailable the request passes through;
// throttling is protection, not a correctness requirement.
func NewRateLimiter(cfg config.RateLimitConfig, client *redis.Client) fiber.Handler {
	if !cfg.Enabled || client == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	intervalMS := cfg.RefillInterval().Milliseconds()
	ttlSeconds := int64(2 * cfg.Capacity * int(cfg.RefillIntervalS+1))
	if ttlSeconds <= 0 {
		ttlSeconds = 60
	}

	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s", c.IP())
		allowed, err := tokenBucketScript.Run(c.Context(), client,
			[]string{key},
			time.Now().UnixMilli(),
			cfg.Capacity,
			cfg.RefillTokens,
			intervalMS,
			ttlSeconds,
		).Int()
		if err != nil {
			return c.Next()
		}
		if allowed == 0 {
			return apperrors.NewTooManyRequests("too many requests")
		}
		return c.Next()
	}
}
