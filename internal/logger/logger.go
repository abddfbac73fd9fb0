package logger

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           log.WarnLevel,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// ParseLevel maps a config string to a level, falling back to warn
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// DocumentLoaded logs a successfully parsed document
func (l *Logger) DocumentLoaded(source string, bytes, tags int, duration time.Duration) {
	l.Debug("document loaded",
		"source", source,
		"bytes", bytes,
		"tags", tags,
		"duration", duration.Round(time.Microsecond))
}

// SyntaxFailed logs a document that could not be parsed
func (l *Logger) SyntaxFailed(source string, offset int, err error) {
	l.Error("syntax error",
		"source", source,
		"offset", offset,
		"error", err)
}

// QueriesAnswered logs the end of a batch of queries
func (l *Logger) QueriesAnswered(total, misses int) {
	l.Debug("queries answered",
		"total", total,
		"not_found", misses)
}
