// Package client implements a minimal GraphQL client for the Unraid API.
//
// Every operation is a single HTTPS POST carrying a standard
// {query, variables} envelope and the x-api-key header. Responses follow
// the standard {data, errors} envelope; server-reported errors, transport
// failures, and malformed bodies surface as distinct error kinds so
// callers can tell them apart.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Client talks to a single Unraid GraphQL endpoint.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each HTTP round trip. The default is 30s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithInsecureTLS accepts self-signed TLS certificates. Unraid servers
// commonly present them, so this is offered as an explicit opt-in
// rather than a silent default.
func WithInsecureTLS() Option {
	return func(c *Client) {
		c.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

// WithLogger attaches a logger used for request tracing at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the given endpoint.
func New(url, apiKey string, opts ...Option) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("url is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	c := &Client{
		url:        url,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []responseError `json:"errors"`
}

type responseError struct {
	Message string `json:"message"`
}

// Execute posts a query with its variables and unmarshals the data
// portion of the envelope into out. When out is nil the data is
// discarded after the envelope check.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return &DecodeError{Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	c.logger.Debug().Str("url", c.url).RawJSON("request", body).Msg("executing graphql request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return &TransportError{URL: c.url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &DecodeError{Err: err}
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return &GraphQLError{Messages: messages}
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return ErrNoData
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
