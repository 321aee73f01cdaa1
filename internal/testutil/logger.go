package testutil

import (
	"fmt"
	"sync"

	"github.com/amicly/appearance/internal/domain"
)

// RecordingLogger keeps formatted log lines for assertions.
type RecordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *RecordingLogger) record(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+": "+fmt.Sprintf(format, args...))
}

func (r *RecordingLogger) Debug(format string, args ...any) { r.record("DEBUG", format, args...) }
func (r *RecordingLogger) Info(format string, args ...any)  { r.record("INFO", format, args...) }
func (r *RecordingLogger) Warn(format string, args ...any)  { r.record("WARN", format, args...) }
func (r *RecordingLogger) Error(format string, args ...any) { r.record("ERROR", format, args...) }
func (r *RecordingLogger) Close() error                     { return nil }

// Lines returns a copy of everything logged so far.
func (r *RecordingLogger) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

var _ domain.Logger = (*RecordingLogger)(nil)
