package repository_test

import (
	"context"
	"errors"
	"net/url"
	"roomcal/infras/backend"
	backendMocks "roomcal/infras/backend/mocks"
	"roomcal/infras/otel/mocks"
	"roomcal/internal/domains/booking/model"
	"roomcal/internal/domains/booking/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*backendMocks.MockClient, repository.Booking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := backendMocks.NewMockClient(ctrl)

	return client, repository.New(client, mocks.NewOtel())
}

func TestRepository_FetchAll(t *testing.T) {
	client, repo := setup(t)

	client.EXPECT().Fetch(gomock.Any()).Return([]byte(`[
		{"fullName": "a", "room": "ห้องประชุม A", "participants": 40, "bookingDate": "5/1/2024"},
		"not an object",
		{"fullName": "b", "participants": "12.7", "bookingDate": 1704412800000}
	]`), nil)

	bookings, err := repo.FetchAll(context.Background())

	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "a", bookings[0].Name)
	assert.Equal(t, 40, bookings[0].Participants)
	assert.Equal(t, "2024-01-05", bookings[0].Date)
	assert.Equal(t, model.Booking{Status: model.StatusPendingReview}, bookings[1])
	assert.Equal(t, 12, bookings[2].Participants)
	assert.Equal(t, "2024-01-05", bookings[2].Date)
}

func TestRepository_FetchAllEmptyArray(t *testing.T) {
	client, repo := setup(t)

	client.EXPECT().Fetch(gomock.Any()).Return([]byte(`[]`), nil)

	bookings, err := repo.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRepository_FetchAllErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		fetch   error
		wantErr error
	}{
		{name: "not json", body: []byte(`<html>login</html>`), wantErr: repository.ErrNotJSON},
		{name: "object", body: []byte(`{"error": "quota"}`), wantErr: repository.ErrNotArray},
		{name: "null", body: []byte(`null`), wantErr: repository.ErrNotArray},
		{name: "transport", fetch: &backend.StatusError{Code: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, repo := setup(t)

			client.EXPECT().Fetch(gomock.Any()).Return(tt.body, tt.fetch)

			bookings, err := repo.FetchAll(context.Background())

			assert.Nil(t, bookings)
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
			} else {
				var statusErr *backend.StatusError
				assert.True(t, errors.As(err, &statusErr))
			}
		})
	}
}

func TestRepository_Submit(t *testing.T) {
	form := url.Values{"fullName": {"a"}}

	tests := []struct {
		name       string
		body       []byte
		submitErr  error
		wantResult string
		wantMsg    string
		wantErr    error
	}{
		{name: "success", body: []byte(`{"result":"success"}`), wantResult: "success"},
		{name: "rejected", body: []byte(`{"result":"error","message":"room closed"}`), wantResult: "error", wantMsg: "room closed"},
		{name: "json array", body: []byte(`[]`)},
		{name: "not json", body: []byte(`oops`), wantErr: repository.ErrNotJSON},
		{name: "transport", submitErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, repo := setup(t)

			client.EXPECT().Submit(gomock.Any(), form).Return(tt.body, tt.submitErr)

			res, err := repo.Submit(context.Background(), form)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.submitErr != nil:
				assert.ErrorIs(t, err, tt.submitErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantResult, res.Result)
				assert.Equal(t, tt.wantMsg, res.Message)
			}
		})
	}
}
