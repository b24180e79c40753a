package http

import (
	"net/url"

	"go.uber.org/zap"

	"zephyr/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string)

	// LogResponseSuccess is called after a 2xx answer
	LogResponseSuccess(method, url string, httpStatus int, latency int64)

	// LogResponseError is called after the final failed attempt
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, httpStatus int, latency int64, err error, retryCount, maxRetries int)
}

// zapHTTPLogger writes outbound traffic through pkg/log, masking the listed query parameters.
type zapHTTPLogger struct {
	redact []string
}

// NewZapHTTPLogger returns an HTTPLogger that masks the given query parameters (API keys) in URLs.
func NewZapHTTPLogger(redactQueryParams ...string) HTTPLogger {
	return &zapHTTPLogger{redact: redactQueryParams}
}

func (l *zapHTTPLogger) LogRequest(method, rawURL string) {
	log.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
	)
}

func (l *zapHTTPLogger) LogResponseSuccess(method, rawURL string, httpStatus int, latency int64) {
	log.Debug("outbound response",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (l *zapHTTPLogger) LogResponseError(method, rawURL string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", truncate(responseBody, 512)),
		zap.Error(err),
	)
}

func (l *zapHTTPLogger) LogRequestRetry(method, rawURL string, httpStatus int, latency int64, err error, retryCount, maxRetries int) {
	log.Info("outbound request retry",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err),
	)
}

func (l *zapHTTPLogger) mask(rawURL string) string {
	if len(l.redact) == 0 {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	for _, key := range l.redact {
		if q.Has(key) {
			q.Set(key, "***")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
