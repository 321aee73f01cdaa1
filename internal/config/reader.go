package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/log"
	"github.com/amicly/appearance/internal/paths"
)

// ReadLines returns the raw lines of the config file, creating the file with
// default values when it does not exist yet.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initializeDefaults creates config lines with default values for visible keys.
func initializeDefaults() []string {
	lines := []string{
		"# amicly configuration",
		"# Edit values below or use: amicly config set <key> <value>",
		"",
	}

	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}

		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}

		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}

		lines = append(lines, key.Name+"="+value)
	}

	return lines
}
