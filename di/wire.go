//go:build wireinject
// +build wireinject

package di

import (
	"roomcal/config"
	"roomcal/infras/backend"
	"roomcal/infras/kafka"
	"roomcal/infras/otel"
	"roomcal/infras/redis"
	"roomcal/internal/workers/refresh"
	"roomcal/shared/cache"
	"roomcal/transport/http"
	"roomcal/transport/http/middleware"
	"roomcal/transport/http/router"

	bookingRepository "roomcal/internal/domains/booking/repository"
	bookingService "roomcal/internal/domains/booking/service"
	calendarService "roomcal/internal/domains/calendar/service"
	navigationService "roomcal/internal/domains/navigation/service"
	roomRepository "roomcal/internal/domains/room/repository"
	roomService "roomcal/internal/domains/room/service"

	bookingHandler "roomcal/internal/handlers/booking"
	calendarHandler "roomcal/internal/handlers/calendar"
	navigationHandler "roomcal/internal/handlers/navigation"
	roomHandler "roomcal/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
	backend.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	calendarService.New,
	navigationService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	calendarHandler.New,
	navigationHandler.New,
	router.New,
)

var workers = wire.NewSet(
	refresh.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		workers,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeCalendar() calendarService.Calendar {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		roomDomain,
		bookingDomain,
		calendarService.New,
	)

	return nil
}
