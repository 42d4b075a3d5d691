// Package logging adapts zerolog to the calculator's Logger interface
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger satisfies calculation.Logger on top of a zerolog.Logger
type ZerologLogger struct {
	zerolog.Logger
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a console logger on stderr with the specified level
func New(level string) *ZerologLogger {
	return NewWithOutput(level, zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// NewWithOutput creates a logger writing to a specific output
func NewWithOutput(level string, w io.Writer) *ZerologLogger {
	logger := zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
	return &ZerologLogger{Logger: logger}
}

// NewSilent creates a logger that discards all output
func NewSilent() *ZerologLogger {
	return &ZerologLogger{Logger: zerolog.New(io.Discard)}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.Logger.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.Logger.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.Logger.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.Logger.Error().Msg(fmt.Sprintf(format, args...))
}
