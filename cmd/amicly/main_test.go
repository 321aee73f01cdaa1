package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amicly/appearance/internal/config"
	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/domain"
)

func TestExtractArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantFlags    []string
		wantCommands []string
	}{
		{
			name:         "no flags or commands",
			args:         []string{},
			wantFlags:    []string{},
			wantCommands: []string{},
		},
		{
			name:         "only commands",
			args:         []string{"theme", "set", "dark"},
			wantFlags:    []string{},
			wantCommands: []string{"theme", "set", "dark"},
		},
		{
			name:         "boolean flags",
			args:         []string{"--help", "-h", "--no-color"},
			wantFlags:    []string{"--help", "-h", "--no-color"},
			wantCommands: []string{},
		},
		{
			name:         "value flag with equals",
			args:         []string{"theme", "get", "--storage=memory"},
			wantFlags:    []string{"--storage=memory"},
			wantCommands: []string{"theme", "get"},
		},
		{
			name:         "value flag with space-separated value",
			args:         []string{"scale", "--factor", "0.3", "16"},
			wantFlags:    []string{"--factor=0.3"},
			wantCommands: []string{"scale", "16"},
		},
		{
			name:         "value flag at the end",
			args:         []string{"theme", "list", "--storage"},
			wantFlags:    []string{"--storage"},
			wantCommands: []string{"theme", "list"},
		},
		{
			name:         "value flag followed by another flag",
			args:         []string{"--storage", "--json"},
			wantFlags:    []string{"--storage", "--json"},
			wantCommands: []string{},
		},
		{
			name:         "negative number is a command token",
			args:         []string{"scale", "-5"},
			wantFlags:    []string{},
			wantCommands: []string{"scale", "-5"},
		},
		{
			name:         "value flag takes a negative number",
			args:         []string{"scale", "10", "--factor", "-0.5"},
			wantFlags:    []string{"--factor=-0.5"},
			wantCommands: []string{"scale", "10"},
		},
		{
			name:         "boolean flag does not take the next token",
			args:         []string{"--json", "theme", "get"},
			wantFlags:    []string{"--json"},
			wantCommands: []string{"theme", "get"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, commands := extractArgs(tt.args)
			require.Equal(t, tt.wantFlags, flags)
			require.Equal(t, tt.wantCommands, commands)
		})
	}
}

func TestConfigureApp_RejectsUnknownStorage(t *testing.T) {
	err := configureApp(dispatchers.NewParsedFlags([]string{"--storage=redis"}), false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "redis")
}

func setupTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("AMICLY_CONFIG", filepath.Join(dir, ".amiclyrc"))
	t.Setenv("AMICLY_STORAGE", "")
	t.Setenv("AMICLY_DB_PATH", filepath.Join(dir, "amicly.db"))
	t.Setenv("AMICLY_ENABLE_LOG", "false")
	return dir
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{name: "no command shows help", args: nil, wantCode: 1},
		{name: "version flag", args: []string{"--version"}, wantCode: 0},
		{name: "group shows help", args: []string{"theme"}, wantCode: 0},
		{name: "unknown command", args: []string{"thme"}, wantCode: 1, wantErr: "'thme' is not an amicly command"},
		{name: "unknown theme", args: []string{"theme", "set", "neon", "--storage=memory"}, wantCode: 2, wantErr: "unknown theme 'neon'"},
		{name: "missing argument", args: []string{"theme", "set"}, wantCode: 2, wantErr: "missing required argument 'id'"},
		{name: "invalid flag", args: []string{"theme", "list", "--bogus"}, wantCode: 2, wantErr: "invalid flag '--bogus'"},
		{name: "invalid storage", args: []string{"theme", "list", "--storage=redis"}, wantCode: 2, wantErr: "invalid --storage 'redis'"},
		{name: "theme set in memory", args: []string{"theme", "set", "dark", "--storage", "memory"}, wantCode: 0},
		{name: "scale", args: []string{"scale", "16", "--factor", "0.25", "--storage=memory"}, wantCode: 0},
		{name: "scale negative size", args: []string{"scale", "-5", "--storage=memory"}, wantCode: 0},
		{name: "scale negative factor", args: []string{"scale", "10", "--factor", "-0.5", "--storage=memory"}, wantCode: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTempHome(t)
			var stderr bytes.Buffer

			code := run(tt.args, &stderr)

			require.Equal(t, tt.wantCode, code, stderr.String())
			if tt.wantErr != "" {
				require.Contains(t, stderr.String(), tt.wantErr)
			} else {
				require.Empty(t, stderr.String())
			}
		})
	}
}

func TestRun_FileStorageKeepsChoiceAcrossRuns(t *testing.T) {
	setupTempHome(t)

	require.Equal(t, 0, run([]string{"theme", "set", "darkBlue", "--storage=file"}, &bytes.Buffer{}))

	value, found := config.Get(domain.ThemeStorageKey)
	require.True(t, found)
	require.Equal(t, "darkBlue", value)

	require.Equal(t, 0, run([]string{"theme", "reset", "--storage=file"}, &bytes.Buffer{}))

	value, _ = config.Get(domain.ThemeStorageKey)
	require.Empty(t, value)
}
