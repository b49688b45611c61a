package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roomcal/config"
	"roomcal/infras/kafka"
	kafkaMocks "roomcal/infras/kafka/mocks"
	"roomcal/infras/otel/mocks"
	bookingMocks "roomcal/internal/domains/booking/mocks"
	"roomcal/internal/domains/booking/model"
	"roomcal/internal/domains/booking/model/dto"
	"roomcal/internal/domains/booking/repository"
	"roomcal/internal/domains/booking/service"
	cacheMocks "roomcal/shared/cache/mocks"
	"roomcal/shared/failure"
)

type fixture struct {
	repo  *bookingMocks.MockBooking
	cache *cacheMocks.MockRedisCache
	kafka *kafkaMocks.MockClient
	svc   service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300
	cfg.Kafka.Topic = "booking.submitted"

	f := fixture{
		repo:  bookingMocks.NewMockBooking(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, f.kafka, mocks.NewOtel())

	return f
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		FullName:     "Somchai",
		Participants: 20,
		BookingDate:  "2024-01-05",
		StartTime:    "09:00",
		EndTime:      "12:00",
		Room:         "ห้องประชุม A",
	}
}

func TestBookingService_List(t *testing.T) {
	bookings := []model.Booking{{Name: "a", Date: "2024-01-05", Participants: 10}}

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "booking:all", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*[]model.Booking) = bookings

				return nil
			})

		res, err := f.svc.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, bookings, res)
	})

	t.Run("cache miss fetches and saves", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "booking:all", gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().FetchAll(gomock.Any()).Return(bookings, nil)
		f.cache.EXPECT().Save(gomock.Any(), "booking:all", bookings, 300).Return(nil)

		res, err := f.svc.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, bookings, res)
	})

	t.Run("cache save failure is not fatal", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().FetchAll(gomock.Any()).Return(bookings, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		res, err := f.svc.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, bookings, res)
	})
}

func TestBookingService_Refresh(t *testing.T) {
	t.Run("fetch error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FetchAll(gomock.Any()).Return(nil, repository.ErrNotArray)

		res, err := f.svc.Refresh(context.Background())

		assert.Nil(t, res)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
		assert.Equal(t, "failed to load bookings: backend did not return an array", err.Error())
	})

	t.Run("bypasses cache", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FetchAll(gomock.Any()).Return([]model.Booking{}, nil)
		f.cache.EXPECT().Save(gomock.Any(), "booking:all", gomock.Any(), 300).Return(nil)

		res, err := f.svc.Refresh(context.Background())

		require.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	f.repo.EXPECT().FetchAll(gomock.Any()).Return([]model.Booking{{Name: "a"}, {Name: "b"}}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "b", res.Bookings[1].Name)
}

func TestBookingService_Submit(t *testing.T) {
	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func(f fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "success invalidates cache and publishes",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Submit(gomock.Any(), validRequest().ToForm()).Return(dto.SubmitResult{Result: "success"}, nil)
				f.cache.EXPECT().Clear(gomock.Any(), "booking").Return(nil)
				f.kafka.EXPECT().
					SendMessages(gomock.Any(), "booking.submitted", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						event, ok := messages[0].Value.(dto.SubmittedEvent)
						assert.True(t, ok)
						assert.Equal(t, "ห้องประชุม A", event.Room)
						assert.Equal(t, 20, event.Participants)

						return nil
					})
			},
		},
		{
			name: "publish failure is not fatal",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitResult{Result: "success"}, nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
				f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "invalid request",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.Participants = 0

				return req
			},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "rejected with message",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitResult{Result: "error", Message: "room closed"}, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "room closed",
		},
		{
			name: "rejected without message",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitResult{Result: "error"}, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "an error occurred",
		},
		{
			name: "transport failure",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitResult{}, errors.New("HTTP error: 500"))
			},
			wantCode: http.StatusBadGateway,
			wantMsg:  "submission failed: HTTP error: 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Submit(context.Background(), tt.req())

			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, dto.MessageSubmitted, res.Message)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}
