package room

import (
	"net/http"
	"roomcal/infras/otel"
	"roomcal/internal/domains/room/service"
	"roomcal/shared/constant"
	"roomcal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/status-link", handler.GetStatusLink)
	})
}

// GetRooms lists the room registry.
// @Summary Get all rooms
// @Description Retrieve every bookable room with its seat capacity, in display order.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.GetAll(ctx))
}

// GetStatusLink returns where booking statuses can be checked.
// @Summary Get the booking status link
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.StatusLinkResponse] "Status link"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/status-link [get]
func (handler *Handler) GetStatusLink(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatusLink")
	defer scope.End()

	link, err := handler.service.StatusLink(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("status link requested but not configured")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, link)
}
