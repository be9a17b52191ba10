package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger prints messages at or above a minimum level
type Logger struct {
	level  int
	source string
	out    *log.Logger
}

// CreateLogger returns a Logger which writes messages of at least the given level to w.
// A nil w logs to stderr.
func CreateLogger(w io.Writer, source string, level int) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		level:  level,
		source: source,
		out:    log.New(w, "", log.LstdFlags),
	}
}

// Level returns the minimum level this Logger prints
func (l *Logger) Level() int {
	return l.level
}

// Enabled returns true iff messages at level would be printed
func (l *Logger) Enabled(level int) bool {
	return level >= l.level
}

// Log prints a message at the given level
func (l *Logger) Log(level int, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.out.Printf("%s: level [%s]: %s", l.source, LogLevelToString(level), fmt.Sprintf(format, args...))
}

// Debugf logs at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Log(DebugLevel, format, args...)
}

// Infof logs at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Log(InfoLevel, format, args...)
}

// Warnf logs at WarnLevel
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Log(WarnLevel, format, args...)
}
