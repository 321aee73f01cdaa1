package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestLogger_BasicLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "DEBUG: debug message")
	require.Contains(t, content, "INFO: info message")
	require.Contains(t, content, "WARN: warning message")
	require.Contains(t, content, "ERROR: error message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelWarn)
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")
	_ = logger.Close()

	content := readLog(t, logPath)
	require.NotContains(t, content, "DEBUG")
	require.NotContains(t, content, "INFO")
	require.Contains(t, content, "WARN: warning message")
	require.Contains(t, content, "ERROR: error message")
}

func TestLogger_FilePermissions(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	logPath := filepath.Join(logDir, "test.log")

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	logger.Info("test message")
	_ = logger.Close()

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dirInfo, err := os.Stat(logDir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), dirInfo.Mode().Perm())
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	first, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	first.Info("first message")
	_ = first.Close()

	second, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	second.Info("second message")
	_ = second.Close()

	content := readLog(t, logPath)
	require.Contains(t, content, "first message")
	require.Contains(t, content, "second message")
}

func TestLogger_Disabled(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)

	logger.Info("enabled message")
	logger.SetEnabled(false)
	logger.Info("disabled message")
	logger.SetEnabled(true)
	logger.Info("enabled again")
	_ = logger.Close()

	content := readLog(t, logPath)
	require.Contains(t, content, "enabled message")
	require.NotContains(t, content, "disabled message")
	require.Contains(t, content, "enabled again")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{" Info ", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"unknown", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}

func TestLogger_NilIsSafe(t *testing.T) {
	var logger *Logger

	require.NoError(t, logger.Close())
	logger.SetEnabled(true)
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
}

func TestNamed_PrefixesMessages(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	child := Named(logger, "state")
	child.Info("selected %s", "dark")
	child.Warn("write failed: %v", "disk full")
	require.NoError(t, child.Close())

	// Parent is still open after closing the child.
	logger.Info("after child close")
	_ = logger.Close()

	content := readLog(t, logPath)
	require.Contains(t, content, "INFO: state: selected dark")
	require.Contains(t, content, "WARN: state: write failed: disk full")
	require.Contains(t, content, "after child close")
}

func TestNamed_NilParent(t *testing.T) {
	child := Named(nil, "x")
	child.Error("does not panic")
	require.NoError(t, child.Close())
}

func TestDefaultLogger(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	SetDefault(nil)
	Debug("dropped")
	require.NoError(t, Close())
	require.Nil(t, GetLogger())

	logPath := filepath.Join(t.TempDir(), "test.log")
	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	SetDefault(logger)
	require.Same(t, logger, GetLogger())

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
	require.NoError(t, Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "DEBUG: debug message")
	require.Contains(t, content, "ERROR: error message")
}

func TestNew_MkdirAllError(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "afile")
	f, err := os.Create(filePath)
	require.NoError(t, err)
	_ = f.Close()

	_, err = New(filepath.Join(filePath, "subdir", "test.log"), LevelInfo)
	require.Error(t, err)
	require.Contains(t, err.Error(), "create log directory")
}

func TestNopLogger(t *testing.T) {
	nop := NopLogger{}

	nop.Debug("test %s", "debug")
	nop.Info("test %s", "info")
	nop.Warn("test %s", "warn")
	nop.Error("test %s", "error")
	require.NoError(t, nop.Close())
}
