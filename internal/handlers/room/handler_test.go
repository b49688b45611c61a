package room_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomcal/config"
	otelMocks "roomcal/infras/otel/mocks"
	"roomcal/internal/domains/room/model"
	"roomcal/internal/domains/room/model/dto"
	"roomcal/internal/domains/room/service"
	"roomcal/internal/handlers/room"
)

func setup(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	registry, err := model.NewRegistry(model.DefaultRooms()...)
	require.NoError(t, err)

	tracer := otelMocks.NewOtel()
	handler := room.New(service.New(registry, cfg, tracer), tracer)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_GetRooms(t *testing.T) {
	router := setup(t, &config.Config{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.GetRoomsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 3, body.Data.TotalData)
	assert.Equal(t, "ห้องประชุม A", body.Data.Rooms[0].Name)
}

func TestHandler_GetStatusLink(t *testing.T) {
	tests := []struct {
		name       string
		statusURL  string
		wantStatus int
	}{
		{name: "configured", statusURL: "https://docs.google.com/spreadsheets/d/sheet/edit", wantStatus: http.StatusOK},
		{name: "not configured", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Backend.StatusURL = tt.statusURL

			rec := httptest.NewRecorder()
			setup(t, cfg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/status-link", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.statusURL != "" {
				assert.Contains(t, rec.Body.String(), tt.statusURL)
			}
		})
	}
}
