package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a JSON-over-HTTP client bound to one base URL.
type Client struct {
	baseURL            string
	client             *http.Client
	defaultQueryParams map[string]string
	backoff            *BackoffConfig
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	// DefaultQueryParams are sent with every request (API keys); request params override them.
	DefaultQueryParams  map[string]string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// Backoff is the default retry policy; nil means a single attempt.
	Backoff *BackoffConfig
	// Logger receives request/response events; nil disables logging.
	Logger HTTPLogger
	// Transport overrides the pooled transport built from the options above.
	Transport http.RoundTripper
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			MaxIdleConns:        opts.MaxIdleConns,
			MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
			IdleConnTimeout:     opts.IdleConnTimeout,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   opts.ReadTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		defaultQueryParams: opts.DefaultQueryParams,
		backoff:            opts.Backoff,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// exchange is one executed request with everything the logger and the caller need.
type exchange struct {
	method       string
	url          string
	status       int
	responseBody string
	latency      int64
}

// doRequest sends a single GET and decodes the JSON answer into successResp or errorResp.
func (hc *Client) doRequest(ctx context.Context, path string, queryParams map[string]string, successResp any, errorResp any) (any, any, *exchange, error) {
	ex := &exchange{method: http.MethodGet, url: hc.buildURL(path, queryParams)}

	req, err := http.NewRequestWithContext(ctx, ex.method, ex.url, nil)
	if err != nil {
		return nil, nil, ex, err
	}
	req.Header.Set("Accept", "application/json")

	if hc.logger != nil {
		hc.logger.LogRequest(ex.method, ex.url)
	}

	start := time.Now()
	resp, err := hc.client.Do(req)
	ex.latency = time.Since(start).Milliseconds()
	if err != nil {
		return nil, nil, ex, err
	}
	defer func() { _ = resp.Body.Close() }()

	ex.status = resp.StatusCode
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, ex, err
	}
	ex.responseBody = string(bodyBytes)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if successResp != nil {
			if err := json.Unmarshal(bodyBytes, successResp); err != nil {
				return nil, nil, ex, fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return successResp, nil, ex, nil
	}

	if errorResp != nil {
		if err := json.Unmarshal(bodyBytes, errorResp); err != nil {
			errorResp = nil
		}
	}

	return nil, errorResp, ex, &StatusError{StatusCode: resp.StatusCode}
}

// buildURL joins the base URL, path and the encoded query string
func (hc *Client) buildURL(path string, queryParams map[string]string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	full := hc.baseURL + path

	values := url.Values{}
	for key, value := range hc.defaultQueryParams {
		values.Set(key, value)
	}
	for key, value := range queryParams {
		values.Set(key, value)
	}
	if len(values) > 0 {
		full += "?" + values.Encode()
	}
	return full
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}
