package router

import (
	"hoteldash/internal/handlers/booking"
	"hoteldash/internal/handlers/guest"
	"hoteldash/internal/handlers/hotel"
	"hoteldash/internal/handlers/room"
	"hoteldash/internal/handlers/statistics"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Hotel      hotel.Handler
	Guest      guest.Handler
	Room       room.Handler
	Booking    booking.Handler
	Statistics statistics.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Statistics.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
