package mock

import (
	"fmt"
	"sync"
)

// Logger captures log lines so tests can assert on warnings without a real
// zerolog sink.
type Logger struct {
	mu    sync.Mutex
	Lines []string
}

func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Lines = append(l.Lines, level+": "+msg)
}

func (l *Logger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.Lines {
		if len(line) >= len(level) && line[:len(level)] == level {
			n++
		}
	}
	return n
}

func (l *Logger) Info(msg string)  { l.record("info", msg) }
func (l *Logger) Debug(msg string) { l.record("debug", msg) }
func (l *Logger) Warn(msg string)  { l.record("warn", msg) }
func (l *Logger) Error(err error, msg string) {
	l.record("error", fmt.Sprintf("%s: %v", msg, err))
}

func (l *Logger) InfoWithFields(msg string, fields map[string]interface{}) {
	l.record("info", msg)
}

func (l *Logger) DebugWithFields(msg string, fields map[string]interface{}) {
	l.record("debug", msg)
}

func (l *Logger) WarnWithFields(msg string, fields map[string]interface{}) {
	l.record("warn", msg)
}

func (l *Logger) ErrorWithFields(err error, msg string, fields map[string]interface{}) {
	l.record("error", fmt.Sprintf("%s: %v", msg, err))
}
