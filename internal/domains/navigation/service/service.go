package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"roomcal/config"
	"roomcal/infras/otel"
	bookingModel "roomcal/internal/domains/booking/model"
	bookingDto "roomcal/internal/domains/booking/model/dto"
	bookingService "roomcal/internal/domains/booking/service"
	"roomcal/internal/domains/calendar/builder"
	calendarModel "roomcal/internal/domains/calendar/model"
	"roomcal/internal/domains/navigation/model"
	"roomcal/internal/domains/navigation/model/dto"
	roomModel "roomcal/internal/domains/room/model"
	roomService "roomcal/internal/domains/room/service"
	"roomcal/shared/constant"
	"roomcal/shared/failure"
	"roomcal/shared/timezone"
	"roomcal/shared/validator"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Navigation owns the single view state of the widget. All methods are safe for
// concurrent use; backend calls run without holding the state lock.
type Navigation interface {
	View(ctx context.Context) dto.ViewResponse
	SwitchPage(ctx context.Context, page string) (dto.ViewResponse, error)
	StepMonth(ctx context.Context, step int) (dto.ViewResponse, error)
	ToggleFilter(ctx context.Context, room string) (dto.ViewResponse, error)
	SelectDay(ctx context.Context, date string) (calendarModel.Detail, error)
	Submit(ctx context.Context, req bookingDto.CreateBookingRequest) (dto.ViewResponse, error)
}

type serviceImpl struct {
	mu    sync.Mutex
	state model.State

	bookings bookingService.Booking
	registry *roomModel.Registry
	builder  *builder.Builder
	today    func() string
	otel     otel.Otel
}

func New(bookings bookingService.Booking, rooms roomService.Room, registry *roomModel.Registry, cfg *config.Config, otel otel.Otel) Navigation {
	return NewWithClock(bookings, rooms, registry, cfg, otel, timezone.Now)
}

// NewWithClock starts the view on the month of now().
func NewWithClock(bookings bookingService.Booking, rooms roomService.Room, registry *roomModel.Registry, cfg *config.Config, otel otel.Otel, now func() time.Time) Navigation {
	start := now()

	return &serviceImpl{
		state: model.State{
			Page:    model.PageBooking,
			Year:    start.Year(),
			Month:   int(start.Month()) - 1,
			Filters: rooms.DefaultFilters(context.Background()),
		},
		bookings: bookings,
		registry: registry,
		builder:  builder.New(registry, cfg.App.Locale),
		today:    func() string { return now().Format(constant.ISODateFormat) },
		otel:     otel,
	}
}

func (s *serviceImpl) View(ctx context.Context) dto.ViewResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".View")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view()
}

// SwitchPage changes page. Entering the calendar always reloads the booking set first.
func (s *serviceImpl) SwitchPage(ctx context.Context, value string) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SwitchPage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	page, ok := model.ParsePage(value)
	if !ok {
		return res, failure.NotFound("page not found") // nolint:wrapcheck
	}

	s.mu.Lock()
	s.state.Page = page
	s.mu.Unlock()

	if page == model.PageCalendar {
		s.fetch(ctx)
	}

	return s.View(ctx), nil
}

// fetch replaces the booking set on success. On failure the previous set is kept and
// the error is shown instead of the grid. Concurrent fetches are not merged: the one
// that completes last wins.
func (s *serviceImpl) fetch(ctx context.Context) {
	s.mu.Lock()
	s.state.Fetching++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state.Fetching--
		s.mu.Unlock()
	}()

	bookings, err := s.bookings.Refresh(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Msg("calendar fetch failed, keeping previous bookings")

		s.state.CalendarError = err.Error()

		return
	}

	s.state.Bookings = bookings
	s.state.CalendarError = constant.Empty
}

func (s *serviceImpl) StepMonth(ctx context.Context, step int) (res dto.ViewResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StepMonth")
	defer scope.End()

	if step != -1 && step != 1 {
		return res, failure.InvalidStepParam
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.StepMonth(step)

	return s.view(), nil
}

// ToggleFilter flips one room filter and re-renders from the loaded set without refetching.
func (s *serviceImpl) ToggleFilter(ctx context.Context, room string) (res dto.ViewResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleFilter")
	defer scope.End()

	name, ok := s.registry.Resolve(room)
	if !ok {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ToggleFilter(name)
	s.state.Filters = s.registry.Ordered(s.state.Filters)

	return s.view(), nil
}

// SelectDay details date from the loaded set, across every room regardless of filters.
func (s *serviceImpl) SelectDay(ctx context.Context, date string) (res calendarModel.Detail, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectDay")
	defer scope.End()

	if validator.ValidateVar(date, constant.ValidateTagISODate) != nil {
		return res, failure.InvalidDateParam
	}

	s.mu.Lock()
	onDate := bookingModel.OnDate(s.state.Bookings, date)
	s.mu.Unlock()

	return s.builder.BuildDetail(date, onDate), nil
}

// Submit forwards a booking and records the outcome as the status message. The
// returned error carries the HTTP code; the view always reflects the outcome.
func (s *serviceImpl) Submit(ctx context.Context, req bookingDto.CreateBookingRequest) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	s.state.Submitting++
	s.state.Status = nil
	s.mu.Unlock()

	submitted, err := s.submit(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state.Status = &model.Status{Message: err.Error(), Success: false}
	} else {
		s.state.Status = &model.Status{Message: submitted.Message, Success: true}
	}

	return s.view(), err
}

func (s *serviceImpl) submit(ctx context.Context, req bookingDto.CreateBookingRequest) (bookingDto.SubmitResponse, error) {
	defer func() {
		s.mu.Lock()
		s.state.Submitting--
		s.mu.Unlock()
	}()

	return s.bookings.Submit(ctx, req) // nolint:wrapcheck
}

// view renders the current state. Callers hold s.mu.
func (s *serviceImpl) view() dto.ViewResponse {
	res := dto.ViewResponse{
		Page:          s.state.Page,
		Year:          s.state.Year,
		Month:         s.state.Month,
		Label:         builder.MonthLabel(s.locale(), s.state.Year, s.state.Month),
		ActiveFilters: append([]string{}, s.state.Filters...),
		Loading: dto.Loading{
			Fetch:  s.state.Fetching > 0,
			Submit: s.state.Submitting > 0,
		},
		CalendarError: s.state.CalendarError,
		BookingCount:  len(s.state.Bookings),
	}

	if s.state.Status != nil {
		status := *s.state.Status
		res.Status = &status
	}

	if s.state.Page != model.PageCalendar || s.state.CalendarError != constant.Empty {
		return res
	}

	grid, err := s.builder.BuildMonth(s.state.Year, s.state.Month, s.state.Bookings, s.state.Filters, s.today())
	if err != nil {
		log.Error().Err(err).Int("month", s.state.Month).Msg("failed to build month grid")

		return res
	}

	res.Grid = &grid

	return res
}

func (s *serviceImpl) locale() string {
	return s.builder.Locale()
}
