package resource

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"zephyr/pkg/util/fileutils"
)

var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// init loads application properties from YAML
func init() {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = fileutils.ResolveFromModuleRoot("configs/application.yml")
	}
	if err := Init(value); err != nil {
		log.Printf("properties not loaded from %s: %v", value, err)
	}
}

// Init reads the YAML file and resolves ${ENV:default} placeholders in string values.
func Init(filepath string) error {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", viper.AllSettings(), resolved)
	for key, value := range resolved {
		viper.Set(key, value)
	}
	return nil
}

// parsePropertiesMap walks the YAML tree and collects the placeholders that need resolving
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolved, ok := resolveEnvVariable(v); ok {
				result[fullKey] = resolved
			}
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		}
	}
}

// resolveEnvVariable resolves a ${NAME:default} value; ok is false for plain strings.
func resolveEnvVariable(value string) (string, bool) {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return "", false
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue, true
	}
	return matches[2], true
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is unset or empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetDurationOrDefault returns the property or defaultValue when it is unset or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := viper.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetIntOrDefault returns the property or defaultValue when it is unset or not positive.
func GetIntOrDefault(key string, defaultValue int) int {
	if value := viper.GetInt(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
