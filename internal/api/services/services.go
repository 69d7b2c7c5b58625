// Package services exposes one typed service per TrackWallet resource.
// Each service shares the gateway's configuration and transport, performs
// exactly one HTTP call per operation and never retries: a not-ok transport
// result becomes an *APIError for the caller to handle.
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"trackwallet/internal/api/ajax"
	"trackwallet/internal/api/primitives"
)

// Config is the configuration shared by all services of one gateway.
type Config struct {
	BaseURL primitives.URLString
}

// NewConfig creates a service configuration for the given API base URL.
func NewConfig(baseURL primitives.URLString) *Config {
	return &Config{BaseURL: baseURL}
}

// Transport is the slice of the ajax client the services depend on.
type Transport interface {
	Get(ctx context.Context, rawURL string, query url.Values, headers http.Header) ajax.Response
	Post(ctx context.Context, rawURL string, body any, headers http.Header) ajax.Response
	Put(ctx context.Context, rawURL string, body any, headers http.Header) ajax.Response
	Delete(ctx context.Context, rawURL string, headers http.Header) ajax.Response
}

// APIError is the single error type services surface for transport
// failures. Status is 0 when the request never reached the server.
type APIError struct {
	Status  int
	Payload string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Payload
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Payload)
}

func newAPIError(resp ajax.Response) *APIError {
	if err := resp.Err(); err != nil {
		return &APIError{Status: resp.Status(), Payload: err.Error()}
	}
	return &APIError{Status: resp.Status(), Payload: string(resp.Body())}
}

// join builds a resource URL from the base URL and path segments.
func join(base primitives.URLString, segments ...string) string {
	u := strings.TrimRight(string(base), "/")
	for _, s := range segments {
		u += "/" + strings.Trim(s, "/")
	}
	return u
}
