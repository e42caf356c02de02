package handler

import (
	"cinema/config"
	"cinema/di"
	"cinema/shared/logger"
	"cinema/transport/http"
	nethttp "net/http"
	"sync"
)

var (
	server *http.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built on the first request and
// reused for as long as the instance stays warm.
func Handler(w nethttp.ResponseWriter, r *nethttp.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetOutput(cfg)
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
