package compendium

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL       string
	masterModeURL string
	masterMode    bool
	timeout       time.Duration
	httpClient    *http.Client
	userAgent     string
}

// WithBaseURL overrides the primary API base URL.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithMasterMode enables the master mode endpoint at its default URL.
func WithMasterMode() Option {
	return func(o *clientOptions) {
		o.masterMode = true
	}
}

// WithMasterModeURL enables the master mode endpoint at a custom URL.
func WithMasterModeURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.masterMode = true
		o.masterModeURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout. Ignored when a custom HTTP
// client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. Use this to configure
// separate connect and read timeouts on the transport.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}
