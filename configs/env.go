package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	WeatherAPIKey   string
	RedisEnabled    bool
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "zephyr"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", "/api"),
		WeatherAPIKey:   viper.GetString("WEATHER_API_KEY"),
		RedisEnabled:    viper.GetBool("REDIS_ENABLED"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
