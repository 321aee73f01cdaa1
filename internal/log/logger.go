package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/amicly/appearance/internal/domain"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger writes leveled lines to a file. Safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	minLevel Level
	enabled  bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// SetDefault installs l as the logger behind the package-level functions.
// Passing nil disables package-level logging.
func SetDefault(l *Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = l
}

// New creates a logger that appends to logPath.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// Tighten permissions on a pre-existing file before writing to it.
	if info, err := os.Stat(logPath); err == nil {
		if info.Mode().Perm() != 0600 {
			if err := os.Chmod(logPath, 0600); err != nil {
				return nil, fmt.Errorf("chmod existing log file: %w", err)
			}
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		file:     file,
		minLevel: minLevel,
		enabled:  true,
	}, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// SetEnabled turns logging on or off without closing the file.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	logLine := fmt.Sprintf("[%s] %s: %s\n", timestamp, level.String(), message)

	if _, err := l.file.Write([]byte(logLine)); err != nil {
		if level >= LevelError {
			fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
		}
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Named returns a logger that prefixes every message with "name: ".
// Close on the returned logger is a no-op; the parent owns the file.
func Named(parent domain.Logger, name string) domain.Logger {
	if parent == nil {
		parent = NopLogger{}
	}
	return named{parent: parent, prefix: name + ": "}
}

type named struct {
	parent domain.Logger
	prefix string
}

func (n named) Debug(format string, args ...any) { n.parent.Debug(n.prefix+format, args...) }
func (n named) Info(format string, args ...any)  { n.parent.Info(n.prefix+format, args...) }
func (n named) Warn(format string, args ...any)  { n.parent.Warn(n.prefix+format, args...) }
func (n named) Error(format string, args ...any) { n.parent.Error(n.prefix+format, args...) }
func (n named) Close() error                     { return nil }

// Package-level helpers for the default logger

func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debug logs to the default logger.
func Debug(format string, args ...any) {
	current().Debug(format, args...)
}

// Info logs to the default logger.
func Info(format string, args ...any) {
	current().Info(format, args...)
}

// Warn logs to the default logger.
func Warn(format string, args ...any) {
	current().Warn(format, args...)
}

// Error logs to the default logger.
func Error(format string, args ...any) {
	current().Error(format, args...)
}

// Close closes the default logger.
func Close() error {
	return current().Close()
}

// GetLogger returns the default logger, or nil if none was installed.
func GetLogger() *Logger {
	return current()
}

// NopLogger is a logger that discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

// Verify Logger implements domain.Logger
var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
var _ domain.Logger = named{}
