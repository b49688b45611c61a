package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"roomcal/config"
	"roomcal/infras/otel"
	bookingModel "roomcal/internal/domains/booking/model"
	bookingService "roomcal/internal/domains/booking/service"
	"roomcal/internal/domains/calendar/builder"
	"roomcal/internal/domains/calendar/model"
	"roomcal/internal/domains/calendar/model/dto"
	roomModel "roomcal/internal/domains/room/model"
	roomService "roomcal/internal/domains/room/service"
	"roomcal/shared/constant"
	"roomcal/shared/failure"
	"roomcal/shared/timezone"
	"roomcal/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	minYear = 1
	maxYear = 9999
)

// Calendar renders views from the shared booking set without keeping any view state.
type Calendar interface {
	Month(ctx context.Context, req dto.MonthRequest) (model.Month, error)
	Day(ctx context.Context, date string) (model.Detail, error)
	ICS(ctx context.Context, year, month int) (dto.ICSFile, error)
}

type serviceImpl struct {
	bookings bookingService.Booking
	rooms    roomService.Room
	builder  *builder.Builder
	cfg      *config.Config
	otel     otel.Otel
}

func New(bookings bookingService.Booking, rooms roomService.Room, registry *roomModel.Registry, cfg *config.Config, otel otel.Otel) Calendar {
	return &serviceImpl{
		bookings: bookings,
		rooms:    rooms,
		builder:  builder.New(registry, cfg.App.Locale),
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Month(ctx context.Context, req dto.MonthRequest) (res model.Month, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Month")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateMonth(req.Year, req.Month); err != nil {
		return res, err
	}

	active := s.rooms.DefaultFilters(ctx)
	if req.Rooms != nil {
		active, err = s.rooms.ResolveFilters(ctx, req.Rooms)
		if err != nil {
			return res, err // nolint:wrapcheck
		}
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	res, err = s.builder.BuildMonth(req.Year, req.Month-1, bookings, active, timezone.Today())
	if err != nil {
		log.Error().Err(err).Int("year", req.Year).Int("month", req.Month).Msg("failed to build month")

		return res, failure.InvalidMonthParam
	}

	return res, nil
}

func (s *serviceImpl) Day(ctx context.Context, date string) (res model.Detail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Day")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if validator.ValidateVar(date, constant.ValidateTagISODate) != nil {
		return res, failure.InvalidDateParam
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.builder.BuildDetail(date, bookingModel.OnDate(bookings, date)), nil
}

// ICS exports the bookings of year/month (1-based) as an iCalendar file.
func (s *serviceImpl) ICS(ctx context.Context, year, month int) (res dto.ICSFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ICS")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateMonth(year, month); err != nil {
		return res, err
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	content, err := s.builder.BuildICS(s.cfg.App.Name, year, month-1, bookings, timezone.GetLocation(), timezone.Now())
	if err != nil {
		return res, failure.InvalidMonthParam
	}

	res.Name = dto.ICSFileName(year, month)
	res.Content = content

	return res, nil
}

func validateMonth(year, month int) error {
	if year < minYear || year > maxYear {
		return failure.InvalidYearParam
	}

	if month < 1 || month > 12 {
		return failure.InvalidMonthParam
	}

	return nil
}
