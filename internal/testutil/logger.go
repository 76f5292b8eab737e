package testutil

import (
	"strings"
	"sync"
)

// LogEntry is one recorded log call.
type LogEntry struct {
	Level string
	Msg   string
	Args  []any
}

// RecorderLogger captures log calls so tests can assert on warnings.
// Safe for concurrent use.
type RecorderLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

// NewRecorderLogger creates an empty recorder.
func NewRecorderLogger() *RecorderLogger {
	return &RecorderLogger{}
}

func (l *RecorderLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Msg: msg, Args: args})
}

func (l *RecorderLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg, args) }
func (l *RecorderLogger) Info(msg string, args ...any)  { l.record("INFO", msg, args) }
func (l *RecorderLogger) Warn(msg string, args ...any)  { l.record("WARN", msg, args) }
func (l *RecorderLogger) Error(msg string, args ...any) { l.record("ERROR", msg, args) }

// HasWarning reports whether any WARN entry contains the substring.
func (l *RecorderLogger) HasWarning(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Entries {
		if e.Level == "WARN" && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}
