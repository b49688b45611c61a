package navigation

import (
	"net/http"
	"roomcal/infras/otel"
	bookingDto "roomcal/internal/domains/booking/model/dto"
	"roomcal/internal/domains/navigation/service"
	"roomcal/shared/constant"
	"roomcal/shared/failure"
	"roomcal/shared/logger"
	"roomcal/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Navigation
	otel    otel.Otel
}

func New(service service.Navigation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/navigation", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetView)
		routerGroup.Post("/page/{page}", handler.SwitchPage)
		routerGroup.Post("/month/{step}", handler.StepMonth)
		routerGroup.Post("/filters/{room}", handler.ToggleFilter)
		routerGroup.Get("/days/{date}", handler.SelectDay)
		routerGroup.Post("/submit", handler.Submit)
	})
}

// GetView returns the current view state.
// @Summary Get the current view
// @Tags Navigation
// @Produce json
// @Success 200 {object} response.Data[dto.ViewResponse] "Current view"
// @Router /v1/navigation [get]
func (handler *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetView")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.View(ctx))
}

// SwitchPage shows the booking form or the calendar. Showing the calendar reloads bookings.
// @Summary Switch page
// @Tags Navigation
// @Produce json
// @Param page path string true "Page" Enums(booking, calendar)
// @Success 200 {object} response.Data[dto.ViewResponse] "Updated view"
// @Failure 404 {object} response.Error
// @Router /v1/navigation/page/{page} [post]
func (handler *Handler) SwitchPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SwitchPage")
	defer scope.End()

	page := chi.URLParam(r, constant.RequestParamPage)

	view, err := handler.service.SwitchPage(ctx, page)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("page", page).Msg("failed to switch page")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// StepMonth moves the displayed month back or forward by one.
// @Summary Step the displayed month
// @Tags Navigation
// @Produce json
// @Param step path int true "Step" Enums(-1, 1)
// @Success 200 {object} response.Data[dto.ViewResponse] "Updated view"
// @Failure 400 {object} response.Error
// @Router /v1/navigation/month/{step} [post]
func (handler *Handler) StepMonth(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StepMonth")
	defer scope.End()

	step, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamStep))
	if err != nil {
		response.WithError(w, failure.InvalidStepParam)

		return
	}

	view, err := handler.service.StepMonth(ctx, step)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// ToggleFilter turns one room filter on or off.
// @Summary Toggle a room filter
// @Tags Navigation
// @Produce json
// @Param room path string true "Room name or label"
// @Success 200 {object} response.Data[dto.ViewResponse] "Updated view"
// @Failure 404 {object} response.Error
// @Router /v1/navigation/filters/{room} [post]
func (handler *Handler) ToggleFilter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleFilter")
	defer scope.End()

	room := chi.URLParam(r, constant.RequestParamRoom)

	view, err := handler.service.ToggleFilter(ctx, room)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("room", room).Msg("failed to toggle filter")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// SelectDay details one date from the loaded bookings.
// @Summary Select a day
// @Tags Navigation
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[model.Detail] "Day detail"
// @Failure 400 {object} response.Error
// @Router /v1/navigation/days/{date} [get]
func (handler *Handler) SelectDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectDay")
	defer scope.End()

	detail, err := handler.service.SelectDay(ctx, chi.URLParam(r, constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, detail)
}

// Submit sends the booking form and records the outcome in the view status.
// @Summary Submit the booking form
// @Description Form bodies use the sheet's keys (fullName, bookingDate, startTime, ...); JSON bodies use snake_case.
// @Tags Navigation
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param request body bookingDto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} response.Data[dto.ViewResponse] "Updated view"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.DataWithError[dto.ViewResponse] "Rejected, with the updated view"
// @Failure 502 {object} response.DataWithError[dto.ViewResponse] "Backend failure, with the updated view"
// @Router /v1/navigation/submit [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	req := bookingDto.CreateBookingRequest{}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	view, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Str("room", req.Room).Msg("booking submission failed")

		response.WithJSONAndError(w, err, view)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}
