package utils

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrInvalidCABundle is returned when a CA bundle holds no usable PEM
// certificate.
var ErrInvalidCABundle = errors.New("no PEM certificates found in CA bundle")

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient(utils.TransportOptions{BaseURL: "https://node:443/"})
//	resp, err := client.R().Get("api/cloudphish/download")
type HTTPClient struct {
	*resty.Client
}

// TransportOptions holds the per-client transport settings. Nothing here
// touches process-wide state: proxy and TLS policy live on the client's own
// transport.
type TransportOptions struct {
	// BaseURL is prefixed to every relative request path.
	BaseURL string

	// RootCAsPEM, when non-empty, replaces the system trust store.
	RootCAsPEM []byte

	// InsecureSkipVerify disables server certificate verification.
	InsecureSkipVerify bool

	// IgnoreSystemProxy drops the HTTP(S)_PROXY environment proxy for this
	// client only.
	IgnoreSystemProxy bool

	// Timeout is the whole-request timeout. Zero keeps the transport default
	// (no timeout).
	Timeout time.Duration

	// Logger receives resty's own warnings and errors.
	Logger resty.Logger
}

// NewHTTPClient creates an HTTPClient configured from opts. Every request
// carries a TraceIDHeader: the caller's header if set, then the id stored by
// WithTraceID, then a fresh one.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Returns [ErrInvalidCABundle] if RootCAsPEM is set but contains no
// certificate.
func NewHTTPClient(opts TransportOptions) (*HTTPClient, error) {
	client := resty.New()

	if opts.Logger != nil {
		client.SetLogger(opts.Logger)
	}
	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: opts.InsecureSkipVerify, //nolint:gosec // explicit ca_bundle_file=false
	}
	if len(opts.RootCAsPEM) > 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(opts.RootCAsPEM) {
			return nil, ErrInvalidCABundle
		}
		tlsConfig.RootCAs = pool
	}
	client.SetTLSClientConfig(tlsConfig)

	if opts.IgnoreSystemProxy {
		client.RemoveProxy()
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(TraceIDHeader) != "" {
			return nil
		}
		if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
			req.SetHeader(TraceIDHeader, traceID)
			return nil
		}
		req.SetHeader(TraceIDHeader, NewTraceID())
		return nil
	})

	return &HTTPClient{Client: client}, nil
}

// HTTPTransport returns the underlying *http.Transport when resty uses one.
// It is part of the wrapper's surface so callers can inspect the effective
// per-client policy (Proxy func, TLSClientConfig) without going through
// resty's error-returning Transport accessor. ok is false when a custom
// http.RoundTripper was installed.
func (c *HTTPClient) HTTPTransport() (*http.Transport, bool) {
	t, err := c.Client.Transport()
	if err != nil {
		return nil, false
	}

	return t, true
}
