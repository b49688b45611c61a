package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomcal/config"
	"roomcal/infras/kafka"
	"roomcal/infras/otel"
	"roomcal/internal/domains/booking/model"
	"roomcal/internal/domains/booking/model/dto"
	"roomcal/internal/domains/booking/repository"
	"roomcal/shared"
	"roomcal/shared/cache"
	"roomcal/shared/constant"
	"roomcal/shared/failure"
	"roomcal/shared/timezone"
	"roomcal/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefixBooking = "booking"
	cacheKeyAll        = "all"
)

type Booking interface {
	// List returns the booking set, from cache when available.
	List(ctx context.Context) ([]model.Booking, error)
	// Refresh always fetches from the backend and replaces the cached set.
	Refresh(ctx context.Context) ([]model.Booking, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	Submit(ctx context.Context, req dto.CreateBookingRequest) (dto.SubmitResponse, error)
	// Invalidate drops the cached booking set.
	Invalidate(ctx context.Context)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cachePrefixBooking, cacheKeyAll)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	return s.Refresh(ctx)
}

func (s *serviceImpl) Refresh(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.FetchAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return nil, failure.BadGateway(fmt.Errorf("failed to load bookings: %w", err)) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cachePrefixBooking, cacheKeyAll)
	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	bookings, err := s.List(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(bookings)

	return res, nil
}

// Submit validates and forwards a booking. Transport and payload failures map to 502,
// a rejection by the backend to 422 with its message.
func (s *serviceImpl) Submit(ctx context.Context, req dto.CreateBookingRequest) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	result, err := s.repo.Submit(ctx, req.ToForm())
	if err != nil {
		log.Error().Err(err).Str("room", req.Room).Msg("failed to submit booking")

		return res, failure.BadGateway(fmt.Errorf("submission failed: %w", err)) // nolint:wrapcheck
	}

	if !result.Succeeded() {
		log.Warn().Str("result", result.Result).Str("message", result.Message).Msg("booking rejected by backend")

		return res, failure.Rejected(result.RejectionMessage()) // nolint:wrapcheck
	}

	s.Invalidate(ctx)
	s.publishSubmitted(ctx, req)

	res.Message = dto.MessageSubmitted

	return res, nil
}

func (s *serviceImpl) Invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cachePrefixBooking)
}

func (s *serviceImpl) publishSubmitted(ctx context.Context, req dto.CreateBookingRequest) {
	event := dto.SubmittedEvent{
		Room:         req.Room,
		Date:         req.BookingDate,
		Participants: req.Participants,
		SubmittedAt:  timezone.Timestamp(),
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, kafka.Message{Key: req.BookingDate, Value: event})
	if err != nil {
		log.Error().Err(err).Str("topic", s.cfg.Kafka.Topic).Msg("failed to publish booking submitted event")
	}
}
