package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/storage/redis"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group. The
// webhook route is deliberately absent: provider redeliveries must not be
// throttled, the signature check is the gate there.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"auth":        {Limit: 10, Window: time.Minute},
		"keys":        {Limit: 10, Window: time.Minute},
		"deposit":     {Limit: 30, Window: time.Minute},
		"transfer":    {Limit: 60, Window: time.Minute},
		"wallet_read": {Limit: 120, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := extractIdentifier(c)
		key := fmt.Sprintf("%s:%s", identifier, group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source. Authenticated
// routes run the limiter after Authenticate, so the counter is per user;
// public routes fall back to the client IP.
func extractIdentifier(c *gin.Context) string {
	if principal, ok := PrincipalFrom(c); ok {
		return principal.UserID.String()
	}
	return c.ClientIP()
}
