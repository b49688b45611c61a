package booking

import (
	"net/http"
	"roomcal/infras/otel"
	"roomcal/internal/domains/booking/model/dto"
	"roomcal/internal/domains/booking/service"
	"roomcal/shared/constant"
	"roomcal/shared/logger"
	"roomcal/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/refresh", handler.RefreshBookings)
	})
}

// CreateBooking forwards a booking request to the reservation backend.
// @Summary Submit a booking
// @Description Validate a booking and forward it to the reservation sheet. Form bodies use the
// @Description sheet's keys (fullName, bookingDate, startTime, ...); JSON bodies use snake_case.
// @Tags Booking
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Message "Booking submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error "Rejected by the backend"
// @Failure 502 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := req.FromRequest(request); err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Str("room", req.Room).Msg("failed to submit booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking submitted for " + req.Room)

	response.WithMessage(writer, http.StatusCreated, res.Message)
}

// GetBookings returns the normalized booking set.
// @Summary Get all bookings
// @Description Retrieve every booking known to the reservation sheet, normalized.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 502 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// RefreshBookings reloads the booking set from the backend, bypassing the cache.
// @Summary Refresh bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Fresh list of bookings"
// @Failure 502 {object} response.Error
// @Router /v1/bookings/refresh [post]
func (handler *Handler) RefreshBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshBookings")
	defer scope.End()

	bookings, err := handler.service.Refresh(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to refresh bookings")

		response.WithError(w, err)

		return
	}

	res := dto.GetBookingsResponse{}
	res.FromModels(bookings)

	response.WithJSON(w, http.StatusOK, res)
}
