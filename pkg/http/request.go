package http

import (
	"context"
	"errors"
)

// Request is one GET against the client's base URL, built fluently and sent by Execute.
type Request struct {
	client      *Client
	ctx         context.Context
	path        string
	queryParams map[string]string
	successResp any
	errorResp   any
	backoff     *BackoffConfig
}

// NewHttpClientRequest creates a new Request object with the given client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{client: client, ctx: context.Background(), path: "/"}
}

// WithContext sets the context that bounds the request and its retries.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

func (r *Request) WithPath(path string) *Request {
	r.path = path
	return r
}

// WithQueryParams adds query parameters on top of the client's defaults.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.queryParams = params
	return r
}

// WithSuccessResp sets the value a 2xx JSON body is decoded into.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.successResp = successResp
	return r
}

// WithErrorResp sets the value a non-2xx JSON body is decoded into, when it parses.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.errorResp = errorResp
	return r
}

// WithBackoff overrides the client's retry policy for this request.
func (r *Request) WithBackoff(backoff *BackoffConfig) *Request {
	r.backoff = backoff
	return r
}

// Execute sends the request and returns the success response, error response, status code, and error if any.
func (r *Request) Execute() (any, any, int, error) {
	if r.client == nil {
		return nil, nil, 0, errors.New("client is required")
	}
	if r.path == "" {
		return nil, nil, 0, errors.New("path is required")
	}
	if r.ctx == nil {
		r.ctx = context.Background()
	}

	return r.client.doRequestWithBackoff(r.ctx, r.path, r.queryParams, r.successResp, r.errorResp, r.backoff)
}
