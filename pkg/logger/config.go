package logger

import (
	"os"
	"strings"
)

const envPrefix = "WINCAMCFG_"

func DefaultConfig() *Config {
	return &Config{
		Level:      getEnvOrDefault(envPrefix+"LOG_LEVEL", "warn"),
		Debug:      getEnvBoolOrDefault("DEBUG", false),
		Output:     getEnvOrDefault(envPrefix+"LOG_OUTPUT", "stderr"),
		TimeFormat: getEnvOrDefault(envPrefix+"LOG_TIME_FORMAT", ""),
		Format:     getEnvOrDefault(envPrefix+"LOG_FORMAT", "console"),
	}
}

// ApplyEnv overrides fields of c with any logging variables set in the
// environment.
func (c *Config) ApplyEnv() {
	c.Level = getEnvOrDefault(envPrefix+"LOG_LEVEL", c.Level)
	c.Debug = getEnvBoolOrDefault("DEBUG", c.Debug)
	c.Output = getEnvOrDefault(envPrefix+"LOG_OUTPUT", c.Output)
	c.TimeFormat = getEnvOrDefault(envPrefix+"LOG_TIME_FORMAT", c.TimeFormat)
	c.Format = getEnvOrDefault(envPrefix+"LOG_FORMAT", c.Format)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	value = strings.ToLower(value)

	return value == "true" || value == "1" || value == "yes" || value == "on"
}
