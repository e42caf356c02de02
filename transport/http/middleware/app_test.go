package middleware_test

import (
	"cinema/config"
	otelMocks "cinema/infras/otel/mocks"
	"cinema/shared/cache"
	cacheMocks "cinema/shared/cache/mocks"
	"cinema/transport/http/middleware"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limited(t *testing.T, enable bool, setup func(m *cacheMocks.MockRedisCache)) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.WindowSeconds = 60

	store := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	if setup != nil {
		setup(store)
	}

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, store)

	return app.Tracing(app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))
}

func TestRateLimit(t *testing.T) {
	const (
		readKey  = "limiter:read:10.0.0.1:test-agent"
		writeKey = "limiter:write:10.0.0.1:test-agent"
	)

	tests := []struct {
		name          string
		method        string
		enable        bool
		setup         func(m *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:     "disabled",
			enable:   false,
			wantCode: http.StatusNoContent,
		},
		{
			name:   "first request in window",
			enable: true,
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), readKey, gomock.Any()).Return(fmt.Errorf("missing: %w", cache.Nil))
				m.EXPECT().Save(gomock.Any(), readKey, 1, 60).Return(nil)
			},
			wantCode:      http.StatusNoContent,
			wantRemaining: "2",
		},
		{
			name:   "limit exceeded",
			enable: true,
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), readKey, gomock.Any()).DoAndReturn(func(_ any, _ string, value any) error {
					*value.(*int) = 3

					return nil
				})
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:   "writes counted in their own window",
			method: http.MethodPost,
			enable: true,
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), writeKey, gomock.Any()).DoAndReturn(func(_ any, _ string, value any) error {
					*value.(*int) = 1

					return nil
				})
				m.EXPECT().Save(gomock.Any(), writeKey, 2, 60).Return(nil)
			},
			wantCode:      http.StatusNoContent,
			wantRemaining: "1",
		},
		{
			name:   "counter save failure lets the request through",
			enable: true,
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), readKey, gomock.Any()).Return(fmt.Errorf("missing: %w", cache.Nil))
				m.EXPECT().Save(gomock.Any(), readKey, 1, 60).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "cache outage lets the request through",
			enable: true,
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), readKey, gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}

			request := httptest.NewRequest(method, "/v1/reservations", nil)
			request.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
			request.Header.Set("User-Agent", "test-agent")

			recorder := httptest.NewRecorder()
			limited(t, tt.enable, tt.setup).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get("X-RateLimit-Remaining"))
		})
	}
}
