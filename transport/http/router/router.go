package router

import (
	"roomcal/config"
	"roomcal/internal/handlers/booking"
	"roomcal/internal/handlers/calendar"
	"roomcal/internal/handlers/navigation"
	"roomcal/internal/handlers/room"
	"roomcal/shared/constant"
	"roomcal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type DomainHandlers struct {
	Room       room.Handler
	Booking    booking.Handler
	Calendar   calendar.Handler
	Navigation navigation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.Middleware.RequestID)
	router.Use(r.Middleware.Tracing)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(r.corsOptions()))
	}

	router.Use(r.Middleware.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
		r.DomainHandlers.Navigation.Router(routerGroup)
	})
}

func (r *Router) corsOptions() cors.Options {
	cfg := r.Config.App.CORS

	options := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{constant.RequestHeaderRequestID, constant.RequestHeaderContentDisposition},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAgeSeconds,
	}

	if len(options.AllowedOrigins) == 0 {
		options.AllowedOrigins = []string{constant.Asterix}
	}

	return options
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
		Config:         config,
	}
}
