package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// BackoffConfig describes an exponential retry policy.
type BackoffConfig struct {
	// MaxRetries is the number of attempts after the first one; 0 disables retries.
	MaxRetries int
	// InitialInterval is the wait before the first retry.
	InitialInterval time.Duration
	// MaxInterval caps the wait between two attempts.
	MaxInterval time.Duration
	// Multiplier grows the interval after each retry; values below 1 keep it constant.
	Multiplier float64
	// RetryOn decides whether an attempt should be retried; nil uses DefaultRetryOn.
	RetryOn func(status int, err error) bool
}

// DefaultRetryOn retries transport errors, 429 and 5xx answers.
func DefaultRetryOn(status int, err error) bool {
	if err != nil && status == 0 {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func (b *BackoffConfig) shouldRetry(status int, err error) bool {
	if b.RetryOn != nil {
		return b.RetryOn(status, err)
	}
	return DefaultRetryOn(status, err)
}

// interval returns the wait before retry number attempt (starting at 1).
func (b *BackoffConfig) interval(attempt int) time.Duration {
	wait := b.InitialInterval
	if wait <= 0 {
		wait = 100 * time.Millisecond
	}
	for i := 1; i < attempt; i++ {
		if b.Multiplier > 1 {
			wait = time.Duration(float64(wait) * b.Multiplier)
		}
		if b.MaxInterval > 0 && wait > b.MaxInterval {
			return b.MaxInterval
		}
	}
	return wait
}

// doRequestWithBackoff runs doRequest under the request's or the client's backoff policy.
func (hc *Client) doRequestWithBackoff(ctx context.Context, path string, queryParams map[string]string, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		backoff = hc.backoff
	}

	attempt := 0
	for {
		success, errResp, ex, err := hc.doRequest(ctx, path, queryParams, successResp, errorResp)
		if err == nil {
			if hc.logger != nil {
				hc.logger.LogResponseSuccess(ex.method, ex.url, ex.status, ex.latency)
			}
			return success, errResp, ex.status, nil
		}

		if backoff == nil || attempt >= backoff.MaxRetries || !backoff.shouldRetry(ex.status, err) {
			if hc.logger != nil {
				hc.logger.LogResponseError(ex.method, ex.url, ex.status, ex.responseBody, ex.latency, err)
			}
			return success, errResp, ex.status, err
		}

		attempt++
		if hc.logger != nil {
			hc.logger.LogRequestRetry(ex.method, ex.url, ex.status, ex.latency, err, attempt, backoff.MaxRetries)
		}

		timer := time.NewTimer(backoff.interval(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, nil, ex.status, ctx.Err()
		case <-timer.C:
		}
	}
}
