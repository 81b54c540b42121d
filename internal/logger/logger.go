// Package logger wraps zerolog behind the small structured-logging
// surface the build pipeline needs. Build runs log one line per
// rendered file, so entries favor stable field order over throughput.
package logger

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	// Level names a zerolog level: "debug", "info", "warn", "error",
	// or "disabled". Empty means "info".
	Level string
	// HumanReadable switches from JSON lines to the console format
	// used when a person is watching a build.
	HumanReadable bool
	// Writer receives the output; stderr when nil, keeping stdout
	// free for theme file contents and diffs.
	Writer io.Writer
}

// LevelFor maps the shared verbosity options to a level name. Quiet
// wins over verbose; option validation rejects setting both anyway.
func LevelFor(verbose, quiet bool) string {
	switch {
	case quiet:
		return "disabled"
	case verbose:
		return "debug"
	default:
		return "info"
	}
}

// Logger is the handle threaded through the writer and CLI. The nil
// logger is valid and drops everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger from Options.
func New(opts Options) (*Logger, error) {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = out
		// Build runs finish in well under a second; timestamps are
		// noise next to the path and digest fields.
		console.PartsExclude = []string{zerolog.TimestampFieldName}
		out = console
	}

	base := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// WithFields returns a derived logger that writes the supplied fields
// on every entry. Fields are attached in sorted key order so repeated
// runs produce identical lines.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	builder := l.base.With()
	for _, key := range keys {
		builder = builder.Interface(key, fields[key])
	}
	return &Logger{base: builder.Logger()}
}

// Debug writes a debug-level entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Info writes an informational entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Warn writes a warning entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
