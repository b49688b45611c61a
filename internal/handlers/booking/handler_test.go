package booking_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "roomcal/infras/otel/mocks"
	"roomcal/internal/domains/booking/mocks"
	"roomcal/internal/domains/booking/model/dto"
	"roomcal/internal/handlers/booking"
	"roomcal/shared/failure"
)

func setup(t *testing.T) (*mocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_CreateBooking(t *testing.T) {
	body := `{"full_name":"Somchai","participants":20,"booking_date":"2024-01-05","start_time":"09:00","end_time":"12:00","room":"A"}`

	tests := []struct {
		name     string
		mock     func(svc *mocks.MockBookingService)
		wantCode int
		wantBody string
	}{
		{
			name: "submitted",
			mock: func(svc *mocks.MockBookingService) {
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitResponse{Message: dto.MessageSubmitted}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"message":"booking submitted successfully"}`,
		},
		{
			name: "rejected",
			mock: func(svc *mocks.MockBookingService) {
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitResponse{}, failure.Rejected(dto.MessageSubmitFallback))
			},
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"error":"an error occurred"}`,
		},
		{
			name: "backend unreachable",
			mock: func(svc *mocks.MockBookingService) {
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitResponse{}, failure.BadGateway(errors.New("submission failed: HTTP error: 503")))
			},
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"submission failed: HTTP error: 503"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.mock(svc)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_CreateBookingForm(t *testing.T) {
	svc, router := setup(t)
	svc.EXPECT().Submit(gomock.Any(), dto.CreateBookingRequest{
		FullName:     "Somchai",
		Department:   "HR",
		Participants: 20,
		BookingDate:  "2024-01-05",
		StartTime:    "09:00",
		EndTime:      "12:00",
		Room:         "A",
	}).Return(dto.SubmitResponse{Message: dto.MessageSubmitted}, nil)

	form := url.Values{
		"fullName":     {"Somchai"},
		"department":   {" HR "},
		"participants": {"20"},
		"bookingDate":  {"2024-01-05"},
		"startTime":    {"09:00"},
		"endTime":      {"12:00"},
		"room":         {"A"},
	}

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"booking submitted successfully"}`, rec.Body.String())
}

func TestHandler_GetBookings(t *testing.T) {
	svc, router := setup(t)
	svc.EXPECT().GetAll(gomock.Any()).Return(dto.GetBookingsResponse{Bookings: []dto.BookingResponse{}, TotalData: 0}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"bookings":[],"total_data":0}}`, rec.Body.String())
}
