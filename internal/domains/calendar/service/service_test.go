package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roomcal/config"
	"roomcal/infras/otel/mocks"
	bookingMocks "roomcal/internal/domains/booking/mocks"
	bookingModel "roomcal/internal/domains/booking/model"
	"roomcal/internal/domains/calendar/model/dto"
	"roomcal/internal/domains/calendar/service"
	roomModel "roomcal/internal/domains/room/model"
	roomService "roomcal/internal/domains/room/service"
	"roomcal/shared/failure"
)

var bookings = []bookingModel.Booking{
	{Name: "training", Room: "ห้องประชุม A", Participants: 40, Date: "2024-01-05", StartTime: "09:00", EndTime: "12:00"},
	{Name: "assembly", Room: "หอประชุม", Participants: 100, Date: "2024-01-05"},
	{Name: "later", Room: "ห้องประชุม B", Participants: 10, Date: "2024-02-01"},
}

func setup(t *testing.T, cfg *config.Config) (*bookingMocks.MockBookingService, service.Calendar) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockBookings := bookingMocks.NewMockBookingService(ctrl)

	registry, err := roomModel.NewRegistry(roomModel.DefaultRooms()...)
	require.NoError(t, err)

	otel := mocks.NewOtel()
	rooms := roomService.New(registry, cfg, otel)

	return mockBookings, service.New(mockBookings, rooms, registry, cfg, otel)
}

func thaiConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "roomcal"
	cfg.App.Locale = "th"

	return cfg
}

func TestCalendarService_Month(t *testing.T) {
	t.Run("default filters", func(t *testing.T) {
		mockBookings, svc := setup(t, thaiConfig())
		mockBookings.EXPECT().List(gomock.Any()).Return(bookings, nil)

		month, err := svc.Month(context.Background(), dto.MonthRequest{Year: 2024, Month: 1})

		require.NoError(t, err)
		assert.Equal(t, 0, month.Month)
		assert.Equal(t, "มกราคม 2567", month.Label)
		assert.Len(t, month.ActiveRooms, 3)

		cell := month.Cells[5]
		require.Equal(t, "2024-01-05", cell.Date)
		assert.Equal(t, 2, cell.BookingCount)
		assert.Len(t, cell.Seats, 3)
	})

	t.Run("explicit filters", func(t *testing.T) {
		mockBookings, svc := setup(t, thaiConfig())
		mockBookings.EXPECT().List(gomock.Any()).Return(bookings, nil)

		month, err := svc.Month(context.Background(), dto.MonthRequest{Year: 2024, Month: 1, Rooms: []string{"A"}})

		require.NoError(t, err)
		assert.Equal(t, []string{"ห้องประชุม A"}, month.ActiveRooms)
		require.Len(t, month.Cells[5].Seats, 1)
		assert.Equal(t, 20, month.Cells[5].Seats[0].Remaining)
	})

	t.Run("no filters", func(t *testing.T) {
		mockBookings, svc := setup(t, thaiConfig())
		mockBookings.EXPECT().List(gomock.Any()).Return(bookings, nil)

		month, err := svc.Month(context.Background(), dto.MonthRequest{Year: 2024, Month: 1, Rooms: []string{}})

		require.NoError(t, err)
		assert.Empty(t, month.ActiveRooms)
		assert.Equal(t, 2, month.Cells[5].BookingCount)
		assert.Empty(t, month.Cells[5].Seats)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, svc := setup(t, thaiConfig())

		_, err := svc.Month(context.Background(), dto.MonthRequest{Year: 2024, Month: 1, Rooms: []string{"library"}})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("invalid month and year", func(t *testing.T) {
		_, svc := setup(t, thaiConfig())

		_, err := svc.Month(context.Background(), dto.MonthRequest{Year: 2024, Month: 13})
		assert.Equal(t, failure.InvalidMonthParam, err)

		_, err = svc.Month(context.Background(), dto.MonthRequest{Year: 0, Month: 1})
		assert.Equal(t, failure.InvalidYearParam, err)
	})

	t.Run("load failure", func(t *testing.T) {
		mockBookings, svc := setup(t, thaiConfig())
		mockBookings.EXPECT().List(gomock.Any()).Return(nil, failure.BadGateway(errors.New("failed to load bookings: response is not JSON")))

		_, err := svc.Month(context.Background(), dto.MonthRequest{Year: 2024, Month: 1})

		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
		assert.Equal(t, "failed to load bookings: response is not JSON", err.Error())
	})
}

func TestCalendarService_Day(t *testing.T) {
	mockBookings, svc := setup(t, thaiConfig())
	mockBookings.EXPECT().List(gomock.Any()).Return(bookings, nil)

	detail, err := svc.Day(context.Background(), "2024-01-05")

	require.NoError(t, err)
	assert.Equal(t, "5 มกราคม 2567", detail.Label)
	require.Len(t, detail.Bookings, 2)
	assert.Equal(t, "training", detail.Bookings[0].Name)
	require.Len(t, detail.Seats, 3)
	assert.Equal(t, 400, detail.Seats[2].Remaining)

	for _, date := range []string{"05/01/2024", " 2024-01-05", ""} {
		_, err = svc.Day(context.Background(), date)
		assert.Equal(t, failure.InvalidDateParam, err, date)
	}
}

func TestCalendarService_ICS(t *testing.T) {
	mockBookings, svc := setup(t, thaiConfig())
	mockBookings.EXPECT().List(gomock.Any()).Return(bookings, nil)

	file, err := svc.ICS(context.Background(), 2024, 1)

	require.NoError(t, err)
	assert.Equal(t, "bookings-2024-01.ics", file.Name)
	assert.True(t, strings.HasPrefix(file.Content, "BEGIN:VCALENDAR"))
	assert.Equal(t, 2, strings.Count(file.Content, "BEGIN:VEVENT"))

	_, err = svc.ICS(context.Background(), 2024, 0)
	assert.Equal(t, failure.InvalidMonthParam, err)
}
