package config

import (
	"strconv"

	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/usage"
)

// isUserKey reports whether key can be read and written from the command line.
// Hidden keys belong to other commands.
func isUserKey(key string) bool {
	k, ok := domain.GetConfigKey(key)
	return ok && !k.Hidden
}

func validateValue(key, value string) error {
	switch key {
	case "storage":
		switch value {
		case domain.StorageSQLite, domain.StorageFile, domain.StorageMemory:
			return nil
		}
		return usage.InvalidValue(key, value, "expected sqlite, file or memory")

	case "enable_log":
		if value != "true" && value != "false" {
			return usage.InvalidValue(key, value, "expected true or false")
		}

	case "log_level":
		switch value {
		case "debug", "info", "warn", "error":
			return nil
		}
		return usage.InvalidValue(key, value, "expected debug, info, warn or error")

	case "viewport_width", "viewport_height":
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n <= 0 {
			return usage.InvalidValue(key, value, "expected a positive number")
		}

	case "db_path":
		if value == "" {
			return usage.InvalidValue(key, value, "path must not be empty")
		}
	}

	return nil
}
