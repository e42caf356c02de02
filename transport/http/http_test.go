package http_test

import (
	"cinema/config"
	jwtMocks "cinema/infras/jwt/mocks"
	otelMocks "cinema/infras/otel/mocks"
	"cinema/permissions"
	cacheMocks "cinema/shared/cache/mocks"
	transport "cinema/transport/http"
	"cinema/transport/http/middleware"
	"cinema/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://tickets.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	app := middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl))
	authRole := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), ot, permissions.Get(), cfg)

	return transport.New(cfg, router.New(router.DomainHandlers{}), app, authRole, nil, ot, nil)
}

func TestServeHTTP(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantCode: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/v1/tickets", wantCode: http.StatusNotFound},
		{name: "guest cannot schedule", method: http.MethodPost, path: "/v1/screenings", wantCode: http.StatusUnauthorized},
		{name: "guest cannot list reservations", method: http.MethodGet, path: "/v1/reservations", wantCode: http.StatusUnauthorized},
	}

	server := newServer(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}

	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestCORSPreflight(t *testing.T) {
	request := httptest.NewRequest(http.MethodOptions, "/v1/movies", nil)
	request.Header.Set("Origin", "https://tickets.example.com")
	request.Header.Set("Access-Control-Request-Method", http.MethodGet)

	recorder := httptest.NewRecorder()
	newServer(t).ServeHTTP(recorder, request)

	assert.Equal(t, "https://tickets.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
}
