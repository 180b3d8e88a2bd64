package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management-api/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// With redis unreachable the limiter must fail open rather than reject traffic.
func TestRateLimitFailsOpenWithoutRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	log := logrus.New()
	log.SetOutput(io.Discard)

	m := NewRateLimitMiddleware(client, log, config.RateLimitConfig{Window: time.Minute, Max: 1})

	reached := false
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
