package config

import (
	"os"
	"strings"

	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/paths"
)

// Defaults holds values computed at runtime. Static defaults live in
// domain.ConfigKeys.
var Defaults = map[string]func() string{
	"db_path": paths.DBFilePath,
}

// defaultValue returns the default for key from Defaults or domain.ConfigKeys.
func defaultValue(key string) (string, bool) {
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	if k, ok := domain.GetConfigKey(key); ok {
		return k.Default, true
	}
	return "", false
}

// envKey maps "viewport_width" to "AMICLY_VIEWPORT_WIDTH".
func envKey(key string) string {
	return "AMICLY_" + strings.ToUpper(key)
}

// Get returns the value for a config key.
// Resolution order: AMICLY_<KEY> environment variable, config file, default.
// The boolean reports whether the key was found anywhere.
func Get(key string) (string, bool) {
	if v := os.Getenv(envKey(key)); v != "" {
		return v, true
	}

	lines, err := ReadLines()
	if err != nil {
		return defaultValue(key)
	}

	cfg, err := Parse(lines)
	if err != nil {
		return defaultValue(key)
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}

	return defaultValue(key)
}

// GetAll returns every known key with defaults, file values and environment
// overrides merged, in that order of precedence (lowest first).
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for _, key := range domain.ConfigKeys {
		if v, ok := defaultValue(key.Name); ok {
			result[key.Name] = v
		}
	}

	lines, err := ReadLines()
	if err == nil {
		if cfg, err := Parse(lines); err == nil {
			for key, value := range cfg {
				result[key] = value
			}
		}
	}

	for _, key := range domain.ConfigKeys {
		if v := os.Getenv(envKey(key.Name)); v != "" {
			result[key.Name] = v
		}
	}

	return result, nil
}
