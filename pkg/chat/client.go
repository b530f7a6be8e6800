// Package chat talks to a locally running, Ollama-compatible
// text-generation endpoint and tracks its reachability.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ConnectionState describes the reachability of the endpoint.
type ConnectionState int

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ConnectionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	default:
		return "disconnected"
	}
}

// TransportError reports a failed exchange with the endpoint: either a
// network-level failure (Err set) or a non-success HTTP status.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chat %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("chat %s %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 120 * time.Second

// Client is a thin, non-streaming wrapper around the generation endpoint.
// There is no built-in retry: every failed call flips the connection state
// to StateError and leaves recovery to the caller via Connect.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	temperature float64
	topP        float64

	mu     sync.Mutex
	state  ConnectionState
	models []string
}

// NewClient returns a disconnected client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		state:      StateDisconnected,
	}
}

// SetSampling configures the options sent with every generation request.
func (c *Client) SetSampling(temperature, topP float64) {
	c.temperature = temperature
	c.topP = topP
}

// State returns the current connection state.
func (c *Client) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Models returns the model list from the last successful Connect.
func (c *Client) Models() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.models...)
}

func (c *Client) setState(s ConnectionState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Connect enumerates the models available at the endpoint. On success the
// client is connected; on any failure it ends up in StateError and the
// returned error is a *TransportError.
func (c *Client) Connect(ctx context.Context) ([]string, error) {
	c.setState(StateConnecting)

	url := c.baseURL + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.setState(StateError)
		return nil, &TransportError{Op: "connect", URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.setState(StateError)
		return nil, &TransportError{Op: "connect", URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.setState(StateError)
		return nil, &TransportError{Op: "connect", URL: url, StatusCode: resp.StatusCode}
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		c.setState(StateError)
		return nil, &TransportError{Op: "connect", URL: url, Err: err}
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}

	c.mu.Lock()
	c.models = names
	c.state = StateConnected
	c.mu.Unlock()

	return names, nil
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate issues a single non-streaming generation request and returns
// the model's reply text. A failed request flips the connection state to
// StateError; a later successful one restores StateConnected.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	url := c.baseURL + "/api/generate"

	body, err := json.Marshal(generateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: c.temperature,
			TopP:        c.topP,
		},
	})
	if err != nil {
		c.setState(StateError)
		return "", &TransportError{Op: "generate", URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.setState(StateError)
		return "", &TransportError{Op: "generate", URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.setState(StateError)
		return "", &TransportError{Op: "generate", URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.setState(StateError)
		return "", &TransportError{Op: "generate", URL: url, StatusCode: resp.StatusCode}
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		c.setState(StateError)
		return "", &TransportError{Op: "generate", URL: url, Err: err}
	}

	c.setState(StateConnected)
	return gen.Response, nil
}
