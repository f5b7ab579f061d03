package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Paths on the upstream server.
const (
	chatPath = "/api/chat"
	rootPath = "/"
)

const (
	defaultTimeout      = 300 * time.Second
	defaultProbeTimeout = 3 * time.Second
	maxErrorBody        = 4096
)

// Client talks to an Ollama server. Every call dials its own connection and
// closes it when the call returns; nothing is pooled across calls.
type Client struct {
	baseURL      string
	timeout      time.Duration
	probeTimeout time.Duration
	httpClient   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-call timeout for Chat.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithProbeTimeout sets the timeout for Ping.
func WithProbeTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.probeTimeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Tests use it to
// inject a fake transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient constructs a client for the server rooted at baseURL,
// e.g. http://127.0.0.1:11434.
func NewClient(baseURL string, opts ...Option) *Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second,
		}).DialContext,
		DisableKeepAlives:     true,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	// Timeout=0: every call carries a context deadline instead.
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		timeout:      defaultTimeout,
		probeTimeout: defaultProbeTimeout,
		httpClient:   &http.Client{Transport: tr, Timeout: 0},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the server root this client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Chat performs a single non-streaming chat call and returns the trimmed
// reply text. Non-2xx statuses, transport failures and undecodable bodies
// are errors; a body without message.content yields "".
func (c *Client) Chat(ctx context.Context, payload ChatPayload) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chat payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: strings.TrimSpace(string(b))}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if out.Message == nil {
		return "", nil
	}
	return strings.TrimSpace(out.Message.Content), nil
}

// Ping issues GET / and returns nil only for 200 OK. It answers whether
// the server process is up, not whether chat will succeed.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+rootPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	return nil
}
