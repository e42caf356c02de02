//go:build wireinject
// +build wireinject

package di

import (
	"cinema/config"
	"cinema/infras/jwt"
	"cinema/infras/kafka"
	"cinema/infras/otel"
	"cinema/infras/postgres"
	"cinema/infras/redis"
	"cinema/infras/s3"
	"cinema/permissions"
	"cinema/shared/cache"
	"cinema/shared/event"
	"cinema/transport/http"
	"cinema/transport/http/middleware"
	"cinema/transport/http/router"

	movieRepository "cinema/internal/domains/movie/repository"
	movieService "cinema/internal/domains/movie/service"
	reservationRepository "cinema/internal/domains/reservation/repository"
	reservationService "cinema/internal/domains/reservation/service"
	roomRepository "cinema/internal/domains/room/repository"
	roomService "cinema/internal/domains/room/service"
	screeningRepository "cinema/internal/domains/screening/repository"
	screeningService "cinema/internal/domains/screening/service"

	movieHandler "cinema/internal/handlers/movie"
	reservationHandler "cinema/internal/handlers/reservation"
	roomHandler "cinema/internal/handlers/room"
	screeningHandler "cinema/internal/handlers/screening"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.NewPublisher,
)

var repositories = wire.NewSet(
	roomRepository.New,
	movieRepository.New,
	screeningRepository.New,
	reservationRepository.New,
)

var domains = wire.NewSet(
	roomService.New,
	movieService.New,
	screeningService.New,
	reservationService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	movieHandler.New,
	screeningHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
