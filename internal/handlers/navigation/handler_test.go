package navigation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "roomcal/infras/otel/mocks"
	bookingDto "roomcal/internal/domains/booking/model/dto"
	"roomcal/internal/domains/navigation/mocks"
	"roomcal/internal/domains/navigation/model"
	"roomcal/internal/domains/navigation/model/dto"
	"roomcal/internal/handlers/navigation"
	"roomcal/shared/failure"
)

func setup(t *testing.T) (*mocks.MockNavigation, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockNavigation(ctrl)

	handler := navigation.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_SwitchPage(t *testing.T) {
	svc, router := setup(t)
	svc.EXPECT().SwitchPage(gomock.Any(), "calendar").Return(dto.ViewResponse{Page: model.PageCalendar}, nil)
	svc.EXPECT().SwitchPage(gomock.Any(), "settings").Return(dto.ViewResponse{}, failure.NotFound("page not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/navigation/page/calendar", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/navigation/page/settings", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_StepMonth(t *testing.T) {
	svc, router := setup(t)
	svc.EXPECT().StepMonth(gomock.Any(), -1).Return(dto.ViewResponse{Year: 2023, Month: 11}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/navigation/month/-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/navigation/month/back", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Submit(t *testing.T) {
	form := "fullName=Somchai&participants=10&bookingDate=2024-01-05&startTime=09:00&endTime=12:00&room=A"

	t.Run("rejected keeps the view", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Submit(gomock.Any(), bookingDto.CreateBookingRequest{
			FullName:     "Somchai",
			Participants: 10,
			BookingDate:  "2024-01-05",
			StartTime:    "09:00",
			EndTime:      "12:00",
			Room:         "A",
		}).
			Return(dto.ViewResponse{Status: &model.Status{Message: "room is full"}}, failure.Rejected("room is full"))

		req := httptest.NewRequest(http.MethodPost, "/navigation/submit", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body struct {
			Data  dto.ViewResponse `json:"data"`
			Error string           `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "room is full", body.Error)
		require.NotNil(t, body.Data.Status)
		assert.False(t, body.Data.Status.Success)
	})

	t.Run("invalid form is not forwarded", func(t *testing.T) {
		_, router := setup(t)

		req := httptest.NewRequest(http.MethodPost, "/navigation/submit", strings.NewReader("fullName=Somchai"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
