package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://api.cloudflare.com/client/v4/"
	defaultTimeout = 10 * time.Second
)

// ErrUnknown is the single failure returned for any transport-level problem:
// network error, non-2xx status, or a body that is not a JSON object. The
// individual cause is logged but never surfaced to callers.
var ErrUnknown = errors.New("Unknown")

// BusySink receives begin/end signals around every outbound API call so the
// embedding layer can drive a loading indicator.
type BusySink interface {
	Begin()
	End()
}

// Client talks to the Cloudflare v4 API on behalf of one account.
// Credentials are fixed at construction; build a new Client when they change.
type Client struct {
	baseURL string
	email   string
	apiKey  string
	http    *http.Client
	busy    BusySink
	logger  *logrus.Entry
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API origin (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithBusySink attaches a busy indicator sink. Begin is called immediately
// before each request and End immediately after it completes, exactly once
// per dispatch regardless of outcome.
func WithBusySink(b BusySink) Option {
	return func(c *Client) {
		c.busy = b
	}
}

// WithLogger attaches a logger for transport failure diagnostics.
func WithLogger(logger *logrus.Entry) Option {
	return func(c *Client) {
		c.logger = logger.WithField("component", "cloudflare-client")
	}
}

// NewClient creates a Cloudflare API client for the given credentials.
func NewClient(email, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		email:   email,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// dispatch sends an authenticated request to the given endpoint (a path
// relative to the API base) and returns the raw JSON object body. Any
// transport or decode failure collapses to ErrUnknown.
func (c *Client) dispatch(ctx context.Context, method, endpoint string, payload interface{}) (json.RawMessage, error) {
	if c.busy != nil {
		c.busy.Begin()
		defer c.busy.End()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			c.logf("marshal request for %s: %v", endpoint, err)
			return nil, ErrUnknown
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		c.logf("build request for %s: %v", endpoint, err)
		return nil, ErrUnknown
	}

	req.Header.Set("X-Auth-Key", c.apiKey)
	req.Header.Set("X-Auth-Email", c.email)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logf("send request to %s: %v", endpoint, err)
		return nil, ErrUnknown
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logf("read response from %s: %v", endpoint, err)
		return nil, ErrUnknown
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logf("request to %s returned status %d", endpoint, resp.StatusCode)
		return nil, ErrUnknown
	}

	// The API always answers with a JSON object; anything else is a
	// transport-tier failure, not a shape-tier one.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		c.logf("undecodable response from %s: %v", endpoint, err)
		return nil, ErrUnknown
	}

	return json.RawMessage(body), nil
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Warnf(format, args...)
	}
}
