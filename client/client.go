package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"jobboard/internal/logger"
)

// Mode selects how reads resolve data.
type Mode int

const (
	// ModeAuto tries the backend first and substitutes fixture data when a
	// read fails. Writes always propagate failures.
	ModeAuto Mode = iota
	// ModeLive never substitutes fixtures; all failures propagate.
	ModeLive
	// ModeFixture never dials the backend. Reads serve fixtures and writes
	// synthesize entities locally.
	ModeFixture
)

// ErrNotFound is returned when a single-entity lookup misses both the
// backend and the fixture set. It is distinct from a degraded list.
var ErrNotFound = errors.New("entity not found")

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

var DefaultBaseURL = "http://localhost:4000/api"

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Mode       Mode

	// OnDegrade, when set, is called each time a read falls back to
	// fixture data, making degraded mode observable to the caller.
	OnDegrade func(operation string, cause error)
}

// Client talks to the job board API.
type Client struct {
	baseURL   string
	http      *http.Client
	mode      Mode
	token     string
	onDegrade func(operation string, cause error)
}

func New(opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:   baseURL,
		http:      httpClient,
		mode:      opts.Mode,
		onDegrade: opts.OnDegrade,
	}
}

// SetToken attaches a Bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Mode returns the data-resolution mode the client was built with.
func (c *Client) Mode() Mode {
	return c.mode
}

func (c *Client) degraded(operation string, cause error) {
	logger.Warn("read degraded to fixture data", "operation", operation, "error", cause)
	if c.onDegrade != nil {
		c.onDegrade(operation, cause)
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// doJSON performs one request and decodes the response into out (when
// non-nil). Non-2xx responses come back as *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
