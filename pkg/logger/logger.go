// Package logger provides structured logging for the assistant bot.
// It builds log/slog loggers from plain options, carries them through
// context.Context and offers attribute helpers for the bot's domain.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Options configures the logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	File   string // "" or "-" for stderr, os.DevNull to discard, else append to file
	Output io.Writer
}

// DefaultOptions returns sensible defaults for an interactive session:
// warnings and above, as text, on stderr so they never mix with replies.
func DefaultOptions() Options {
	return Options{
		Level:  "warn",
		Format: "text",
	}
}

// ParseLevel parses a level name. Unknown names report false.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a logger from options. The returned closer releases the log
// file, if one was opened; it is never nil.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, ok := ParseLevel(opts.Level)
	if !ok {
		return nil, nopCloser{}, fmt.Errorf("logger: unknown level %q", opts.Level)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var (
		output io.Writer = opts.Output
		closer io.Closer = nopCloser{}
	)
	if output == nil {
		switch opts.File {
		case "", "-":
			output = os.Stderr
		case os.DevNull:
			output = io.Discard
		default:
			f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
			if err != nil {
				return nil, nopCloser{}, fmt.Errorf("logger: open %s: %w", opts.File, err)
			}
			output, closer = f, f
		}
	}

	switch strings.ToLower(opts.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(output, handlerOpts)), closer, nil
	case "", "text":
		return slog.New(slog.NewTextHandler(output, handlerOpts)), closer, nil
	default:
		closer.Close()
		return nil, nopCloser{}, fmt.Errorf("logger: unknown format %q", opts.Format)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Context key for logger.
type ctxKey struct{}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context, or returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// Common attribute keys.
const (
	RequestIDKey = "request_id"
	SessionIDKey = "session_id"
)

// RequestID creates a request id attribute.
func RequestID(id string) slog.Attr {
	return slog.String(RequestIDKey, id)
}

// SessionID creates a session id attribute.
func SessionID(id string) slog.Attr {
	return slog.String(SessionIDKey, id)
}

// Command creates an attribute naming the console command being handled.
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// ContactName creates an attribute naming the contact a command touches.
func ContactName(name string) slog.Attr {
	return slog.String("contact", name)
}

// Component creates a component name attribute.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation creates an operation name attribute.
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// Path creates a file path attribute.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Count creates an integer attribute under key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Latency creates a duration attribute for command handling time.
func Latency(d time.Duration) slog.Attr {
	return slog.Duration("latency", d)
}

// Outcome creates an attribute holding a command outcome label.
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// Any creates an attribute for an arbitrary value.
func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

// Err creates an error attribute.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}
	return slog.String("error", err.Error())
}
