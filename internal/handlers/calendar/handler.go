package calendar

import (
	"net/http"
	"roomcal/infras/otel"
	"roomcal/internal/domains/calendar/model/dto"
	"roomcal/internal/domains/calendar/service"
	"roomcal/shared"
	"roomcal/shared/constant"
	"roomcal/shared/failure"
	"roomcal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	maxYear = 9999
)

type Handler struct {
	service service.Calendar
	otel    otel.Otel
}

func New(service service.Calendar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/days/{date}", handler.GetDay)
		routerGroup.Get("/{year}/{month}", handler.GetMonth)
		routerGroup.Get("/{year}/{month}/ics", handler.GetMonthICS)
	})
}

// GetMonth renders a month grid.
// @Summary Get a month grid
// @Description Render 42 day cells for a month with per-room seat availability. Without rooms the configured default filters apply; an empty rooms value disables every filter.
// @Tags Calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param rooms query []string false "Active rooms, by name or label" collectionFormat(multi)
// @Success 200 {object} response.Data[model.Month] "Month grid"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/calendar/{year}/{month} [get]
func (handler *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonth")
	defer scope.End()

	year, month, err := yearMonth(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.MonthRequest{Year: year, Month: month}

	if values, ok := r.URL.Query()[constant.RequestParamRooms]; ok {
		req.Rooms = make([]string, 0, len(values))

		for _, value := range values {
			if value != constant.Empty {
				req.Rooms = append(req.Rooms, value)
			}
		}
	}

	grid, err := handler.service.Month(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("year", year).Int("month", month).Msg("failed to build month")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, grid)
}

// GetDay details one date across every room.
// @Summary Get a day detail
// @Tags Calendar
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[model.Detail] "Day detail"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/calendar/days/{date} [get]
func (handler *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDay")
	defer scope.End()

	date := chi.URLParam(r, constant.RequestParamDate)

	detail, err := handler.service.Day(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to build day detail")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, detail)
}

// GetMonthICS exports a month of bookings as an iCalendar file.
// @Summary Export a month as iCalendar
// @Tags Calendar
// @Produce text/calendar
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/calendar/{year}/{month}/ics [get]
func (handler *Handler) GetMonthICS(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthICS")
	defer scope.End()

	year, month, err := yearMonth(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	file, err := handler.service.ICS(ctx, year, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("year", year).Int("month", month).Msg("failed to export month")

		response.WithError(w, err)

		return
	}

	response.WithCalendar(w, file.Name, file.Content)
}

func yearMonth(r *http.Request) (year, month int, err error) {
	year, ok := shared.ParseIntInRange(chi.URLParam(r, constant.RequestParamYear), 1, maxYear)
	if !ok {
		return 0, 0, failure.InvalidYearParam
	}

	month, ok = shared.ParseIntInRange(chi.URLParam(r, constant.RequestParamMonth), 1, 12)
	if !ok {
		return 0, 0, failure.InvalidMonthParam
	}

	return year, month, nil
}
