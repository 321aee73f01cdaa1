package config

import "strings"

// Set assigns key=value in lines, replacing the first existing assignment and
// preserving an inline comment. It reports whether an existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}

		if strings.TrimSpace(parts[0]) == key {
			oldValue := parts[1]
			if commentIdx := strings.Index(oldValue, " #"); commentIdx >= 0 {
				comment := strings.TrimSpace(oldValue[commentIdx:])
				lines[i] = key + "=" + value + " " + comment
			} else {
				lines[i] = key + "=" + value
			}
			return lines, true
		}
	}

	lines = append(lines, key+"="+value)
	return lines, false
}

// Unset removes every assignment of key and reports whether one was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) == 2 && strings.TrimSpace(parts[0]) == key {
			removed = true
			continue
		}

		out = append(out, line)
	}

	return out, removed
}
