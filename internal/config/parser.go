package config

import (
	"fmt"
	"strings"
)

// Parse converts config lines into a key/value map.
// Blank lines and lines starting with # are ignored. A UTF-8 BOM on the first
// line is stripped. Values keep any '=' after the first one; an inline
// comment introduced by " #" is dropped. When a key repeats, the last value wins.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}

		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		value := parts[1]
		if idx := strings.Index(value, " #"); idx >= 0 {
			value = value[:idx]
		}

		cfg[key] = unquote(strings.TrimSpace(value))
	}

	return cfg, nil
}

// unquote strips one pair of surrounding double quotes, as written for
// defaults containing spaces.
func unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
