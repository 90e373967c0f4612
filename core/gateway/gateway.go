package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wisdom2788/youthguard-go/core/keyring"
	"github.com/wisdom2788/youthguard-go/core/logger"
)

// Gateway is the single outbound request pipeline for the platform API.
// It attaches the bearer credential to every request, classifies failures
// into terminal outcomes, and on HTTP 401 tears down stored credentials and
// notifies the registered session-invalidated callback. It owns no state
// beyond transport configuration and is safe for concurrent use.
type Gateway struct {
	baseURL        string
	httpClient     *http.Client
	log            *slog.Logger
	creds          keyring.Storage
	onUnauthorized func(ctx context.Context)
	defaultHeaders http.Header
}

// envelope is the response convention shared by every platform endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// New creates a gateway for the API at cfg.BaseURL.
func New(cfg Config, opts ...Option) (*Gateway, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: BaseURL must be an absolute URL", ErrInvalidConfig)
	}

	g := &Gateway{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:     &http.Client{Timeout: cfg.RequestTimeout},
		log:            slog.Default(),
		defaultHeaders: make(http.Header),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// MustNew creates a gateway that panics on invalid config.
// Useful during application startup where a broken transport cannot be
// meaningfully recovered from.
func MustNew(cfg Config, opts ...Option) *Gateway {
	g, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// RequestOption customizes a single outgoing request.
type RequestOption func(*http.Request)

// WithRequestHeader sets a header on one request only.
// Used by profile endpoints to attach the user-id header.
func WithRequestHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// Get issues a GET request and decodes the envelope data into out.
func (g *Gateway) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return g.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST request with a JSON body and decodes the envelope data into out.
func (g *Gateway) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return g.Do(ctx, http.MethodPost, path, body, out, opts...)
}

// Put issues a PUT request with a JSON body and decodes the envelope data into out.
func (g *Gateway) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return g.Do(ctx, http.MethodPut, path, body, out, opts...)
}

// Delete issues a DELETE request.
func (g *Gateway) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return g.Do(ctx, http.MethodDelete, path, nil, nil, opts...)
}

// Do sends one request through the pipeline and classifies the result.
//
// The body, when non-nil, is marshaled as JSON. On success the envelope's
// data field is unmarshaled into out (ignored when out is nil). Every
// failure maps to exactly one of: ErrNetworkUnreachable, ErrUnauthorized,
// or *Error. There is no automatic retry; all outcomes are terminal.
func (g *Gateway) Do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	start := time.Now()
	requestID := uuid.NewString()

	req, err := g.newRequest(ctx, method, path, body, requestID, opts...)
	if err != nil {
		return err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.WarnContext(ctx, "request failed without response",
			logger.Component("gateway"),
			logger.Method(method),
			logger.Path(path),
			logger.RequestID(requestID),
			logger.Elapsed(start),
			logger.Error(err),
		)
		return errors.Join(ErrNetworkUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(ErrNetworkUnreachable, err)
	}

	callErr := g.classify(ctx, resp.StatusCode, raw, out)
	g.log.InfoContext(ctx, "request completed",
		logger.Component("gateway"),
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.RequestID(requestID),
		logger.Elapsed(start),
		logger.Outcome(Classify(callErr).String()),
	)
	return callErr
}

// Ping reports whether the backend is reachable. It hits the health endpoint
// with the regular pipeline semantics but skips envelope decoding.
func (g *Gateway) Ping(ctx context.Context) error {
	req, err := g.newRequest(ctx, http.MethodGet, "/health", nil, uuid.NewString())
	if err != nil {
		return err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrNetworkUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Message: genericErrorMessage}
	}
	return nil
}

func (g *Gateway) newRequest(ctx context.Context, method, path string, body any, requestID string, opts ...RequestOption) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("gateway: failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("gateway: failed to build request: %w", err)
	}

	for key, values := range g.defaultHeaders {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	// The token is read fresh from storage at call time, never cached, so a
	// credential committed by a concurrent login is picked up immediately.
	if g.creds != nil {
		token, err := g.creds.Get(ctx, keyring.KeyToken)
		switch {
		case err == nil && token != "":
			req.Header.Set("Authorization", "Bearer "+token)
		case err != nil && !errors.Is(err, keyring.ErrKeyNotFound):
			g.log.WarnContext(ctx, "failed to read stored token",
				logger.Component("gateway"),
				logger.Error(err),
			)
		}
	}

	for _, opt := range opts {
		opt(req)
	}
	return req, nil
}

func (g *Gateway) classify(ctx context.Context, status int, raw []byte, out any) error {
	if status == http.StatusUnauthorized {
		g.invalidateSession(ctx)
		return ErrUnauthorized
	}

	var env envelope
	decoded := len(raw) > 0 && json.Unmarshal(raw, &env) == nil

	if status < 200 || status >= 300 {
		message := genericErrorMessage
		if decoded && env.Message != "" {
			message = env.Message
		}
		return &Error{Status: status, Message: message}
	}

	// 2xx with a failed envelope is still an application rejection; the
	// backend mixes both conventions.
	if decoded && !env.Success {
		message := env.Message
		if message == "" {
			message = genericErrorMessage
		}
		return &Error{Status: status, Message: message}
	}

	if out != nil && decoded && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Status: status, Message: genericErrorMessage}
		}
	}
	return nil
}

// invalidateSession clears stored credentials and notifies the registered
// callback. This runs for every 401 regardless of which collaborator issued
// the request; a stale token invalidates the session globally on first use.
func (g *Gateway) invalidateSession(ctx context.Context) {
	if g.creds != nil {
		if err := g.creds.Clear(ctx); err != nil {
			g.log.ErrorContext(ctx, "failed to clear stored credentials",
				logger.Component("gateway"),
				logger.Error(err),
			)
		}
	}
	if g.onUnauthorized != nil {
		g.onUnauthorized(ctx)
	}
}
