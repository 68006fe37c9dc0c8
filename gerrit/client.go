package gerrit

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Client is a Gerrit REST API client. Each method performs one request and
// returns either a fully decoded result or an error.
type Client struct {
	rest    *REST
	baseURL string
}

// Option configures a [Client].
type Option func(*clientOptions)

type clientOptions struct {
	transport Transport
	config    TransportConfig
}

// WithPort overrides the port of the host URL.
func WithPort(port int) Option {
	return func(o *clientOptions) { o.config.Port = port }
}

// WithCredentials sets the HTTP username and password of the account.
func WithCredentials(username, password string) Option {
	return func(o *clientOptions) {
		o.config.Username = username
		o.config.Password = password
	}
}

// WithAuthMethod selects basic or digest authentication.
func WithAuthMethod(method AuthMethod) Option {
	return func(o *clientOptions) { o.config.Auth = method }
}

// WithDigestAuth is shorthand for WithAuthMethod(AuthDigest).
func WithDigestAuth() Option {
	return WithAuthMethod(AuthDigest)
}

// WithInsecureTLS disables TLS certificate verification.
func WithInsecureTLS(insecure bool) Option {
	return func(o *clientOptions) { o.config.InsecureSkipVerify = insecure }
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.config.Timeout = d }
}

// WithLogger enables debug logging of every request.
func WithLogger(l zerolog.Logger) Option {
	return func(o *clientOptions) { o.config.Logger = &l }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *clientOptions) { o.config.TracerProvider = tp }
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *clientOptions) { o.config.MeterProvider = mp }
}

// WithTransport replaces the HTTP transport. The connection options above
// are ignored when it is used.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) { o.transport = t }
}

// NewClient builds a client for the server at host.
func NewClient(host string, opts ...Option) (*Client, error) {
	o := &clientOptions{config: TransportConfig{Host: host}}
	for _, opt := range opts {
		opt(o)
	}

	if o.transport != nil {
		return &Client{rest: NewREST(o.transport), baseURL: host}, nil
	}

	transport, err := NewHTTPTransport(o.config)
	if err != nil {
		return nil, fmt.Errorf("new gerrit client: %w", err)
	}

	return &Client{rest: NewREST(transport), baseURL: transport.BaseURL()}, nil
}

// BaseURL returns the server URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// REST exposes the envelope layer for endpoints the client does not wrap.
func (c *Client) REST() *REST {
	return c.rest
}
