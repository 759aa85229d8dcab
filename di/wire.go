//go:build wireinject
// +build wireinject

package di

import (
	"hoteldash/config"
	"hoteldash/infras/kafka"
	"hoteldash/infras/otel"
	"hoteldash/infras/postgres"
	"hoteldash/infras/redis"
	"hoteldash/infras/s3"
	"hoteldash/shared/cache"
	"hoteldash/transport/http"
	"hoteldash/transport/http/middleware"
	"hoteldash/transport/http/router"

	bookingRepository "hoteldash/internal/domains/booking/repository"
	bookingService "hoteldash/internal/domains/booking/service"
	guestRepository "hoteldash/internal/domains/guest/repository"
	guestService "hoteldash/internal/domains/guest/service"
	hotelRepository "hoteldash/internal/domains/hotel/repository"
	hotelService "hoteldash/internal/domains/hotel/service"
	roomRepository "hoteldash/internal/domains/room/repository"
	roomService "hoteldash/internal/domains/room/service"
	statisticsRepository "hoteldash/internal/domains/statistics/repository"
	statisticsService "hoteldash/internal/domains/statistics/service"

	bookingHandler "hoteldash/internal/handlers/booking"
	guestHandler "hoteldash/internal/handlers/guest"
	hotelHandler "hoteldash/internal/handlers/hotel"
	roomHandler "hoteldash/internal/handlers/room"
	statisticsHandler "hoteldash/internal/handlers/statistics"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var statisticsDomain = wire.NewSet(
	statisticsRepository.New,
	statisticsService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	guestDomain,
	roomDomain,
	bookingDomain,
	statisticsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
	statisticsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
