package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"roomcal/infras/backend"
	"roomcal/infras/otel"
	"roomcal/internal/domains/booking/model"
	"roomcal/internal/domains/booking/model/dto"
	"roomcal/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotJSON  = errors.New("response is not JSON")
	ErrNotArray = errors.New("backend did not return an array")
)

type Booking interface {
	FetchAll(ctx context.Context) ([]model.Booking, error)
	Submit(ctx context.Context, form url.Values) (dto.SubmitResult, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

// FetchAll loads and normalizes every booking. Elements that are not objects normalize to
// an empty booking; a payload that is not an array fails as a whole.
func (r *repositoryImpl) FetchAll(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".FetchAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := r.client.Fetch(ctx)
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	if !json.Valid(body) {
		log.Error().Int("bytes", len(body)).Msg("booking payload is not JSON")

		return nil, ErrNotJSON
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var payload any
	if err = decoder.Decode(&payload); err != nil {
		return nil, ErrNotJSON
	}

	rows, ok := payload.([]any)
	if !ok {
		log.Error().Str("type", fmt.Sprintf("%T", payload)).Msg("booking payload is not an array")

		return nil, ErrNotArray
	}

	raws := make([]dto.RawBooking, len(rows))
	for i, row := range rows {
		if object, ok := row.(map[string]any); ok {
			raws[i] = object
		}
	}

	res = dto.NormalizeAll(raws)
	scope.SetAttribute("booking.count", len(res))

	return res, nil
}

// Submit forwards the form and reports the backend's verdict. Transport failures and
// non-JSON answers are errors; a rejection is a result.
func (r *repositoryImpl) Submit(ctx context.Context, form url.Values) (res dto.SubmitResult, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := r.client.Submit(ctx, form)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !json.Valid(body) {
		return res, ErrNotJSON
	}

	var payload map[string]any
	if json.Unmarshal(body, &payload) != nil {
		// valid JSON, but not an object: no result field, so a rejection
		return res, nil
	}

	res.Result, _ = payload["result"].(string)
	res.Message, _ = payload["message"].(string)

	return res, nil
}
