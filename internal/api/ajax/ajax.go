// Package ajax is the shared HTTP transport for the TrackWallet API.
//
// Every verb returns a tagged Response instead of an error: network
// failure, a non-2xx status and an unreadable body all fold into the same
// not-ok shape, and the caller decides what to do with it. The adapter
// performs no retries and owns no timeout beyond the injected http.Client's.
package ajax

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client wraps one http.Client and injects the shared bearer token into
// every request. All resource services of a gateway share one Client, so
// setting the token once authenticates them all.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger

	mu          sync.Mutex
	accessToken string
}

// NewClient creates a transport client. A nil httpClient falls back to a
// plain client with no timeout.
func NewClient(httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// SetAccessToken stores the bearer token used for all future requests.
// An empty token clears authentication.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *Client) token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}

// Response is the tagged result of one HTTP call.
type Response struct {
	status int
	body   json.RawMessage
	err    error
}

// IsOK reports whether the call reached the server and came back with a
// status in [200, 300).
func (r Response) IsOK() bool {
	return r.err == nil && r.status >= 200 && r.status < 300
}

// Status is the HTTP status code, 0 when the request never completed.
func (r Response) Status() int { return r.status }

// Body is the raw response body.
func (r Response) Body() []byte { return r.body }

// Err is the folded transport error, nil when the server answered.
func (r Response) Err() error { return r.err }

// Decode unmarshals an ok response body into T. A transport error or a
// malformed body both come back as an error; an empty body yields the zero
// value, which covers delete endpoints answering with no content.
func Decode[T any](r Response) (T, error) {
	var v T
	if r.err != nil {
		return v, r.err
	}
	if len(r.body) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(r.body, &v); err != nil {
		return v, fmt.Errorf("failed to decode response body: %w", err)
	}
	return v, nil
}

// Get performs a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values, headers http.Header) Response {
	return c.do(ctx, http.MethodGet, rawURL, query, nil, headers)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, rawURL string, body any, headers http.Header) Response {
	return c.do(ctx, http.MethodPost, rawURL, nil, body, headers)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, rawURL string, body any, headers http.Header) Response {
	return c.do(ctx, http.MethodPut, rawURL, nil, body, headers)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, rawURL string, headers http.Header) Response {
	return c.do(ctx, http.MethodDelete, rawURL, nil, nil, headers)
}

func (c *Client) do(ctx context.Context, method, rawURL string, query url.Values, body any, headers http.Header) Response {
	requestID := uuid.New().String()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			c.logger.Error("failed to encode request body",
				zap.String("method", method),
				zap.String("url", rawURL),
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			return Response{err: fmt.Errorf("failed to encode request body: %w", err)}
		}
	}

	if len(query) > 0 {
		sep := "?"
		if u, err := url.Parse(rawURL); err == nil && u.RawQuery != "" {
			sep = "&"
		}
		rawURL += sep + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return Response{err: fmt.Errorf("failed to create request: %w", err)}
	}
	c.applyHeaders(req, requestID, headers)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			zap.String("method", method),
			zap.String("url", rawURL),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return Response{err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read response body",
			zap.String("method", method),
			zap.String("url", rawURL),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return Response{status: resp.StatusCode, err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.String("request_id", requestID),
		zap.ByteString("request_body", payload),
		zap.Int("status", resp.StatusCode),
		zap.ByteString("response_body", respBody),
	)

	return Response{status: resp.StatusCode, body: respBody}
}

// applyHeaders sets the defaults, then the bearer token, then the caller's
// headers. Caller headers win on collision.
func (c *Client) applyHeaders(req *http.Request, requestID string, headers http.Header) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, values := range headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
}
