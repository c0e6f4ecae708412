// Package logging builds the charmbracelet loggers used across leanbot.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Logger is the logging capability components depend on. *log.Logger satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

var _ Logger = (*log.Logger)(nil)

// Options configures New.
type Options struct {
	Level   string // debug|info|warn|error, defaults to info
	JSON    bool
	NoColor bool
	Output  io.Writer // defaults to stderr
}

// New creates a logger with console or JSON output.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logOpts := log.Options{
		Level:           ParseLevel(opts.Level),
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	}
	if opts.JSON {
		logOpts.Formatter = log.JSONFormatter
		logOpts.TimeFormat = time.RFC3339Nano
	}

	logger := log.NewWithOptions(out, logOpts)
	if opts.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	logger.SetStyles(levelStyles())
	return logger
}

// Discard returns a logger that writes nowhere, for tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// ParseLevel maps a level name to a log level, falling back to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ValidLevel reports whether level is one ParseLevel understands.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = levelStyle("DEBU", "63")
	styles.Levels[log.InfoLevel] = levelStyle("INFO", "86")
	styles.Levels[log.WarnLevel] = levelStyle("WARN", "192")
	styles.Levels[log.ErrorLevel] = levelStyle("ERRO", "204")
	styles.Levels[log.FatalLevel] = levelStyle("FATA", "134")
	return styles
}

func levelStyle(label, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color(color))
}
