package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents a log level.
type Level int

const (
	// DebugLevel logs are voluminous and usually disabled in production.
	DebugLevel Level = iota
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs are notable but need no individual review.
	WarnLevel
	// ErrorLevel logs are high priority.
	ErrorLevel
)

// String returns the canonical name of a level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level, defaulting to InfoLevel.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DebugLevel
	case "INFO", "info":
		return InfoLevel
	case "WARN", "warn", "WARNING", "warning":
		return WarnLevel
	case "ERROR", "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Field is one structured key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// Logger is the structured logging interface used across the project.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// With returns a child logger with the given fields pre-set.
	With(fields ...Field) Logger
	SetLevel(level Level)
}

type entry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// JSONLogger writes one JSON object per entry.
type JSONLogger struct {
	writer io.Writer
	level  Level
	fields []Field
	mu     sync.Mutex
}

// NewJSONLogger creates a JSON logger writing to the given writer.
func NewJSONLogger(writer io.Writer, level Level) *JSONLogger {
	return &JSONLogger{writer: writer, level: level}
}

// NewDefaultLogger returns a JSON logger on stdout. The level is taken from
// the NETPATH_LOG_LEVEL environment variable when set, INFO otherwise.
func NewDefaultLogger() *JSONLogger {
	level := InfoLevel
	if s := os.Getenv("NETPATH_LOG_LEVEL"); s != "" {
		level = ParseLevel(s)
	}
	return NewJSONLogger(os.Stdout, level)
}

func (l *JSONLogger) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var fieldMap map[string]any
	if len(l.fields)+len(fields) > 0 {
		fieldMap = make(map[string]any, len(l.fields)+len(fields))
		for _, f := range l.fields {
			fieldMap[f.Key] = f.Value
		}
		for _, f := range fields {
			fieldMap[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(entry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
		Fields:  fieldMap,
	})
	if err != nil {
		fmt.Fprintf(l.writer, "[ERROR] failed to marshal log entry: %v\n", err)
		return
	}
	l.writer.Write(data)
	l.writer.Write([]byte("\n"))
}

// Debug logs a debug-level message.
func (l *JSONLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields...) }

// Info logs an info-level message.
func (l *JSONLogger) Info(msg string, fields ...Field) { l.log(InfoLevel, msg, fields...) }

// Warn logs a warning-level message.
func (l *JSONLogger) Warn(msg string, fields ...Field) { l.log(WarnLevel, msg, fields...) }

// Error logs an error-level message.
func (l *JSONLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields...) }

// With returns a child logger carrying the given fields on every entry.
func (l *JSONLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &JSONLogger{writer: l.writer, level: l.level, fields: merged}
}

// SetLevel sets the minimum level that produces output.
func (l *JSONLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// NopLogger discards everything. Useful in tests.
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (n NopLogger) With(fields ...Field) Logger     { return n }
func (NopLogger) SetLevel(level Level)              {}

// TimedOperation measures one operation's duration for logging.
type TimedOperation struct {
	logger Logger
	msg    string
	start  time.Time
	fields []Field
}

// StartTimer begins timing an operation against the given logger.
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{logger: logger, msg: msg, start: time.Now(), fields: fields}
}

// End logs the operation with its elapsed duration at info level.
func (t *TimedOperation) End() {
	t.logger.Info(t.msg, append(t.fields, Latency(time.Since(t.start)))...)
}

// EndError logs the operation as failed with its elapsed duration.
func (t *TimedOperation) EndError(err error) {
	t.logger.Error(t.msg, append(t.fields, Latency(time.Since(t.start)), Error(err))...)
}
