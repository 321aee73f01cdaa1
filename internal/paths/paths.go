package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "amicly"

// AppDataDir returns the application data directory for the database and log.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path of the line-based config file.
// AMICLY_CONFIG overrides the default ~/.amiclyrc.
func ConfigFilePath() (string, error) {
	if p := os.Getenv("AMICLY_CONFIG"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".amiclyrc"), nil
}

// LockFilePath returns the path of the lock guarding config writes.
// It sits next to the config file.
func LockFilePath() (string, error) {
	configPath, err := ConfigFilePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(configPath), ".amiclyrc.lock"), nil
}

// DBFilePath returns the default path of the preferences database.
func DBFilePath() string {
	return filepath.Join(AppDataDir(), "preferences.db")
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "amicly.log")
}
