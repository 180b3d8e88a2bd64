package middleware

import (
	"fmt"
	"net"
	"net/http"

	"hospital-management-api/config"
	"hospital-management-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware counts requests per client IP in a fixed redis window.
// When redis is unreachable the limiter fails open; losing rate limiting is
// preferable to losing the API.
type RateLimitMiddleware struct {
	redisClient *redis.Client
	log         *logrus.Logger
	cfg         config.RateLimitConfig
}

func NewRateLimitMiddleware(redisClient *redis.Client, log *logrus.Logger, cfg config.RateLimitConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redisClient: redisClient,
		log:         log,
		cfg:         cfg,
	}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := fmt.Sprintf("ratelimit:%s", clientIP(r))

		count, err := m.redisClient.Incr(r.Context(), key).Result()
		if err != nil {
			m.log.Warnf("Rate limiter unavailable: %+v", err)
			next.ServeHTTP(w, r)
			return
		}

		if count == 1 {
			if err := m.redisClient.Expire(r.Context(), key, m.cfg.Window).Err(); err != nil {
				m.log.Warnf("Failed to set rate limit window: %+v", err)
			}
		}

		if count > int64(m.cfg.Max) {
			response.TooManyRequests(w, "Too many requests from this IP, please try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
