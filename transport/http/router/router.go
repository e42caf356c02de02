package router

import (
	"cinema/internal/handlers/movie"
	"cinema/internal/handlers/reservation"
	"cinema/internal/handlers/room"
	"cinema/internal/handlers/screening"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room        room.Handler
	Movie       movie.Handler
	Screening   screening.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Movie.Router(routerGroup)
		r.DomainHandlers.Screening.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
