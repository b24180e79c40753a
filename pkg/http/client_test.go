package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

type payload struct {
	Name string `json:"name"`
}

type errorPayload struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestExecuteEncodesQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "New York" {
			t.Errorf("q = %q, want %q", got, "New York")
		}
		if got := r.URL.Query().Get("key"); got != "abc" {
			t.Errorf("key = %q, want abc", got)
		}
		if r.URL.Path != "/v1/current.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload{Name: "ok"})
	}))
	defer server.Close()

	client := NewHttpClient(server.URL+"/v1/", ClientOptions{
		DefaultQueryParams: map[string]string{"key": "abc"},
	})

	resp, errResp, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("current.json").
		WithQueryParams(map[string]string{"q": "New York"}).
		WithSuccessResp(&payload{}).
		WithErrorResp(&errorPayload{}).
		Execute()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errResp != nil {
		t.Errorf("expected nil error response, got %v", errResp)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if got := resp.(*payload).Name; got != "ok" {
		t.Errorf("Name = %q, want ok", got)
	}
}

func TestExecuteDecodesErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, errResp, status, err := client.Request().
		WithPath("/current.json").
		WithSuccessResp(&payload{}).
		WithErrorResp(&errorPayload{}).
		Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected StatusError 400, got %v", err)
	}
	if status != http.StatusBadRequest {
		t.Errorf("status = %d", status)
	}
	decoded, ok := errResp.(*errorPayload)
	if !ok {
		t.Fatalf("expected *errorPayload, got %T", errResp)
	}
	if decoded.Error.Code != 1006 {
		t.Errorf("code = %d, want 1006", decoded.Error.Code)
	}
}

func TestExecuteRetriesWithBackoff(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"third"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	resp, _, _, err := client.Request().
		WithPath("/").
		WithSuccessResp(&payload{}).
		WithBackoff(&BackoffConfig{MaxRetries: 3, InitialInterval: time.Millisecond}).
		Execute()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.(*payload).Name; got != "third" {
		t.Errorf("Name = %q, want third", got)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestExecuteWithoutBackoffMakesSingleAttempt(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, status, err := client.Request().WithPath("/").Execute()

	if err == nil {
		t.Fatal("expected error")
	}
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d", status)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestExecuteSendsJSONGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		w.Header().Set("Content-Type", "application/xml; charset=iso-8859-1")
		_, _ = w.Write([]byte(`<?xml version="1.0"?><root><name>ok</name></root>`))
	}))
	defer server.Close()

	_, _, status, err := NewHttpClient(server.URL, ClientOptions{}).Request().
		WithPath("/current.xml").
		WithSuccessResp(&payload{}).
		Execute()

	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if err == nil || !strings.Contains(err.Error(), "failed to decode response") {
		t.Fatalf("expected decode error for a non-JSON body, got %v", err)
	}
}

func TestBackoffInterval(t *testing.T) {
	b := &BackoffConfig{InitialInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond, Multiplier: 2}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 300 * time.Millisecond},
		{4, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := b.interval(tt.attempt); got != tt.want {
			t.Errorf("interval(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestZapHTTPLoggerMasksKey(t *testing.T) {
	l := NewZapHTTPLogger("key").(*zapHTTPLogger)

	masked := l.mask("https://api.weatherapi.com/v1/current.json?key=secret&q=Dhaka")
	if strings.Contains(masked, "secret") {
		t.Errorf("key not masked: %s", masked)
	}
	if !strings.Contains(masked, "q=Dhaka") {
		t.Errorf("query lost: %s", masked)
	}
}
