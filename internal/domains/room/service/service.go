package service

import (
	"context"
	"roomcal/config"
	"roomcal/infras/otel"
	"roomcal/internal/domains/room/model"
	"roomcal/internal/domains/room/model/dto"
	"roomcal/shared/constant"
	"roomcal/shared/failure"

	"github.com/rs/zerolog/log"
)

type Room interface {
	GetAll(ctx context.Context) dto.GetRoomsResponse
	StatusLink(ctx context.Context) (dto.StatusLinkResponse, error)
	// DefaultFilters are the rooms active when a view does not choose any.
	DefaultFilters(ctx context.Context) []string
	// ResolveFilters maps room names or labels to registered names, in registry order.
	ResolveFilters(ctx context.Context, values []string) ([]string, error)
}

type serviceImpl struct {
	registry *model.Registry
	cfg      *config.Config
	otel     otel.Otel
}

func New(registry *model.Registry, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		registry: registry,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRooms")
	defer scope.End()

	res.FromModels(s.registry.Rooms())

	return res
}

// StatusLink returns the spreadsheet view where booking statuses are tracked.
func (s *serviceImpl) StatusLink(ctx context.Context) (res dto.StatusLinkResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StatusLink")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if s.cfg.Backend.StatusURL == constant.Empty {
		return res, failure.NotFound("status link is not configured") // nolint:wrapcheck
	}

	res.URL = s.cfg.Backend.StatusURL

	return res, nil
}

func (s *serviceImpl) DefaultFilters(_ context.Context) []string {
	if len(s.cfg.App.DefaultFilters) == 0 {
		return s.registry.Names()
	}

	names, err := s.registry.ResolveAll(s.cfg.App.DefaultFilters)
	if err != nil {
		log.Warn().Err(err).Strs("filters", s.cfg.App.DefaultFilters).Msg("ignoring invalid default filters")

		return s.registry.Names()
	}

	return names
}

func (s *serviceImpl) ResolveFilters(ctx context.Context, values []string) (res []string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveFilters")
	defer scope.End()

	res, err = s.registry.ResolveAll(values)
	if err != nil {
		scope.TraceError(err)

		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	return res, nil
}
