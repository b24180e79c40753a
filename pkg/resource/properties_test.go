package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitResolvesPlaceholders(t *testing.T) {
	t.Setenv("ZEPHYR_TEST_KEY", "secret")

	path := filepath.Join(t.TempDir(), "application.yml")
	content := `app:
  weather-api:
    key: ${ZEPHYR_TEST_KEY:}
    base-url: ${ZEPHYR_TEST_UNSET_URL:https://api.weatherapi.com/v1}
    timeout: 7s
  dashboard:
    default-city: Dhaka
    empty: ${ZEPHYR_TEST_UNSET_EMPTY:}
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if got := GetString("app.weather-api.key"); got != "secret" {
		t.Errorf("key = %q, want secret", got)
	}
	if got := GetString("app.weather-api.base-url"); got != "https://api.weatherapi.com/v1" {
		t.Errorf("base-url = %q", got)
	}
	if got := GetString("app.dashboard.default-city"); got != "Dhaka" {
		t.Errorf("default-city = %q, want Dhaka", got)
	}
	if got := GetStringOrDefault("app.dashboard.empty", "fallback"); got != "fallback" {
		t.Errorf("empty placeholder = %q, want fallback", got)
	}
	if got := GetDuration("app.weather-api.timeout"); got != 7*time.Second {
		t.Errorf("timeout = %v, want 7s", got)
	}
	if got := GetIntOrDefault("app.missing", 12); got != 12 {
		t.Errorf("GetIntOrDefault() = %d, want 12", got)
	}
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("ZEPHYR_TEST_PORT", "9090")

	tests := []struct {
		value string
		want  string
		ok    bool
	}{
		{"${ZEPHYR_TEST_PORT:8080}", "9090", true},
		{"${ZEPHYR_TEST_NOPE:8080}", "8080", true},
		{"${ZEPHYR_TEST_NOPE}", "", true},
		{"plain", "", false},
		{"prefix-${ZEPHYR_TEST_PORT}", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := resolveEnvVariable(tt.value)
			if got != tt.want || ok != tt.ok {
				t.Errorf("resolveEnvVariable(%q) = (%q, %v), want (%q, %v)", tt.value, got, ok, tt.want, tt.ok)
			}
		})
	}
}
