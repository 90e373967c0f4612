package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/wisdom2788/youthguard-go/core/keyring"
)

// Config holds gateway transport configuration.
type Config struct {
	// BaseURL is the API root every request path is appended to.
	BaseURL string `env:"YOUTHGUARD_API_BASE_URL" envDefault:"http://localhost:5000/api"`
	// RequestTimeout bounds a single request/response exchange. A timeout is
	// classified as network-unreachable, the same as a refused connection.
	RequestTimeout time.Duration `env:"YOUTHGUARD_API_TIMEOUT" envDefault:"15s"`
}

// Option is a functional option for configuring the gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the default HTTP client. The caller owns timeout
// configuration of the provided client; Config.RequestTimeout is ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = client
	}
}

// WithLogger sets the structured logger for request logging.
func WithLogger(log *slog.Logger) Option {
	return func(g *Gateway) {
		g.log = log
	}
}

// WithCredentials wires durable credential storage. When set, the bearer
// token is read fresh from storage on every request and attached as the
// Authorization header, and a 401 response clears the storage.
func WithCredentials(creds keyring.Storage) Option {
	return func(g *Gateway) {
		g.creds = creds
	}
}

// WithOnUnauthorized registers the session-invalidated callback invoked when
// any request receives HTTP 401. The hosting application wires this to its
// session store and navigation; the gateway itself stays free of UI concerns.
func WithOnUnauthorized(fn func(ctx context.Context)) Option {
	return func(g *Gateway) {
		g.onUnauthorized = fn
	}
}

// WithHeader adds a default header sent on every request.
func WithHeader(key, value string) Option {
	return func(g *Gateway) {
		g.defaultHeaders.Set(key, value)
	}
}
