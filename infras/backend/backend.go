package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"roomcal/config"
	"roomcal/infras/otel"
	"roomcal/shared/constant"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	otelURLHostAttribute    = "http.url.host"
	otelStatusCodeAttribute = "http.status_code"
)

var ErrEndpointNotConfigured = errors.New("backend endpoint is not configured")

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.Code)
}

// Client talks to the spreadsheet script that stores bookings. Bodies are returned raw,
// decoding is left to the caller.
type Client interface {
	Fetch(ctx context.Context) ([]byte, error)
	Submit(ctx context.Context, form url.Values) ([]byte, error)
}

type clientImpl struct {
	http      *http.Client
	fetchURL  string
	submitURL string
	otel      otel.Otel
}

// New builds the client. A zero timeout means requests are never cut short.
func New(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		http: &http.Client{
			Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		},
		fetchURL:  cfg.Backend.FetchURL,
		submitURL: cfg.Backend.SubmitURL,
		otel:      ot,
	}
}

func (c *clientImpl) Fetch(ctx context.Context) (body []byte, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Fetch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req, err := c.newRequest(ctx, http.MethodGet, c.fetchURL, nil)
	if err != nil {
		return nil, err
	}

	return c.do(req, scope)
}

func (c *clientImpl) Submit(ctx context.Context, form url.Values) (body []byte, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req, err := c.newRequest(ctx, http.MethodPost, c.submitURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	return c.do(req, scope)
}

func (c *clientImpl) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	if endpoint == constant.Empty {
		return nil, ErrEndpointNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}

	return req, nil
}

func (c *clientImpl) do(req *http.Request, scope otel.Scope) ([]byte, error) {
	host := redactURL(req.URL)
	scope.SetAttribute(otelURLHostAttribute, host)

	log.Debug().Str("method", req.Method).Str("url", host).Msg("backend request start")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", host).Msg("backend request failed")

		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	scope.SetAttribute(otelStatusCodeAttribute, resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", resp.StatusCode).Str("method", req.Method).Str("url", host).Msg("backend answered non-OK")

		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	log.Debug().Str("method", req.Method).Str("url", host).Int("bytes", len(body)).Msg("backend request done")

	return body, nil
}

// redactURL keeps only scheme and host; script URLs embed their deployment key in the path.
func redactURL(u *url.URL) string {
	return u.Scheme + "://" + u.Host + "/...(redacted)"
}
