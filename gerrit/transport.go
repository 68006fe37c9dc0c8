// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gerrit

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader carries the id generated for every outgoing request.
const RequestIDHeader = "X-Request-Id"

const maxRedirects = 10

// AuthMethod selects how credentials are presented to the server.
type AuthMethod string

const (
	AuthBasic  AuthMethod = "basic"
	AuthDigest AuthMethod = "digest"
)

// ParseAuthMethod accepts "basic" or "digest" in any case. An empty string
// selects basic authentication.
func ParseAuthMethod(s string) (AuthMethod, error) {
	switch AuthMethod(strings.ToLower(strings.TrimSpace(s))) {
	case "", AuthBasic:
		return AuthBasic, nil
	case AuthDigest:
		return AuthDigest, nil
	default:
		return "", fmt.Errorf("%w: unknown auth method %q", ErrConfig, s)
	}
}

// Request is one HTTP exchange handed to a [Transport]. Path is relative to
// the configured host and may carry a query string.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Response is the raw outcome of a [Request]. It is consumed once by the
// REST layer and not kept.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs a single HTTP request. Implementations must not retry
// and must report network failures as [*TransportError].
//
//go:generate mockgen -source=transport.go -destination=../internal/mock/transport_mock.go -package=mock
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportConfig is the connection configuration of an [HTTPTransport].
type TransportConfig struct {
	// Host is the base URL of the Gerrit server, e.g.
	// "https://review.example.com/gerrit". A missing scheme defaults to http.
	Host string
	// Port overrides the port of Host when non-zero.
	Port int
	// Username and Password are the HTTP credentials of the account.
	// Requests are sent unauthenticated when Username is empty.
	Username string
	Password string
	// Auth selects basic or digest authentication. Defaults to basic.
	Auth AuthMethod
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	Logger         *zerolog.Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// HTTPTransport is the resty based [Transport]. Redirects are followed.
// It is safe for concurrent use.
type HTTPTransport struct {
	client    *resty.Client
	baseURL   string
	logger    zerolog.Logger
	telemetry *telemetry
}

// NewHTTPTransport validates cfg and builds a transport. A malformed host,
// a port outside 1..65535 or an unknown auth method yields [ErrConfig].
func NewHTTPTransport(cfg TransportConfig) (*HTTPTransport, error) {
	baseURL, err := normalizeBaseURL(cfg.Host, cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("%w: host %q: %w", ErrConfig, cfg.Host, err)
	}

	auth := cfg.Auth
	if auth == "" {
		auth = AuthBasic
	}
	if auth != AuthBasic && auth != AuthDigest {
		return nil, fmt.Errorf("%w: unknown auth method %q", ErrConfig, cfg.Auth)
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	tel, err := newTelemetry(cfg.TracerProvider, cfg.MeterProvider)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects)).
		SetHeader("User-Agent", "gerlib").
		SetLogger(restyLogger{log: log})

	if cfg.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	if cfg.Username != "" {
		switch auth {
		case AuthDigest:
			client.SetDigestAuth(cfg.Username, cfg.Password)
		default:
			client.SetBasicAuth(cfg.Username, cfg.Password)
		}
	}

	return &HTTPTransport{
		client:    client,
		baseURL:   baseURL,
		logger:    log,
		telemetry: tel,
	}, nil
}

// BaseURL returns the normalized URL requests are resolved against.
func (t *HTTPTransport) BaseURL() string {
	return t.baseURL
}

// Do implements [Transport].
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	requestID := uuid.NewString()

	ctx, span := t.telemetry.start(ctx, req.Method, req.Path, requestID)
	defer span.End()

	r := t.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(req.Header).
		SetHeader(RequestIDHeader, requestID)
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	started := time.Now()
	resp, err := r.Execute(req.Method, req.Path)
	elapsed := time.Since(started)

	if err != nil {
		t.telemetry.finish(ctx, span, req.Method, 0, elapsed, err)
		t.logger.Debug().
			Err(err).
			Str("func", "HTTPTransport.Do").
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("path", req.Path).
			Dur("duration", elapsed).
			Msg("request failed")
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}

	t.telemetry.finish(ctx, span, req.Method, resp.StatusCode(), elapsed, nil)
	t.logger.Debug().
		Str("func", "HTTPTransport.Do").
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Dur("duration", elapsed).
		Msg("request done")

	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

func normalizeBaseURL(raw string, port int) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	if port != 0 {
		if port < 1 || port > 65535 {
			return "", fmt.Errorf("port %d out of range", port)
		}
		u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(port))
	}
	u.RawQuery = ""
	u.Fragment = ""

	return strings.TrimRight(u.String(), "/"), nil
}

// restyLogger routes resty's own diagnostics into zerolog.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
