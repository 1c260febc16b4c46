// Package middleware contains console middlewares for command processing.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/alem-hub/assistant-bot/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECOVERY MIDDLEWARE
// Catches panics in handlers and converts them to a generic reply.
// The session keeps running after a recovered panic.
// ══════════════════════════════════════════════════════════════════════════════

// Context keys.
type contextKey string

const (
	// RequestIDContextKey holds the id of the command line being processed.
	RequestIDContextKey contextKey = "request_id"
)

// WithRequestID attaches a request id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, id)
}

// RequestIDFromContext returns the request id, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}

// RecoveryConfig holds configuration for the recovery middleware.
type RecoveryConfig struct {
	// EnableStackTrace enables capturing stack traces.
	EnableStackTrace bool

	// OnPanic is called when a panic is recovered.
	OnPanic func(ctx context.Context, panicInfo *PanicInfo)

	// UserErrorMessage is shown to the user when a panic occurs.
	UserErrorMessage string

	// Logger receives one error record per recovered panic.
	Logger *slog.Logger

	// MaxPanicsPerMinute caps how many panics are logged per minute.
	MaxPanicsPerMinute int
}

// DefaultRecoveryConfig returns defaults for the recovery middleware.
func DefaultRecoveryConfig(userMessage string) RecoveryConfig {
	return RecoveryConfig{
		EnableStackTrace:   true,
		UserErrorMessage:   userMessage,
		MaxPanicsPerMinute: 100,
	}
}

// PanicInfo contains information about a recovered panic.
type PanicInfo struct {
	Error      error
	PanicValue any
	StackTrace string
	RequestID  string
	Command    string
	Timestamp  time.Time
}

// String returns a formatted representation of the panic info.
func (p *PanicInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "panic in %q at %s: %v", p.Command, p.Timestamp.Format(time.RFC3339), p.PanicValue)
	if p.RequestID != "" {
		fmt.Fprintf(&b, " (request %s)", p.RequestID)
	}
	return b.String()
}

// RecoveryResult represents the result of running a guarded handler.
type RecoveryResult struct {
	// Recovered indicates if a panic was recovered.
	Recovered bool

	// PanicInfo contains panic details (if recovered).
	PanicInfo *PanicInfo

	// UserMessage is the message to show to the user.
	UserMessage string
}

// RecoveryMiddleware recovers from panics in command handlers.
type RecoveryMiddleware struct {
	config       RecoveryConfig
	panicCounter *panicRateLimiter
}

// NewRecoveryMiddleware creates a new recovery middleware.
func NewRecoveryMiddleware(config RecoveryConfig) *RecoveryMiddleware {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &RecoveryMiddleware{
		config:       config,
		panicCounter: newPanicRateLimiter(config.MaxPanicsPerMinute),
	}
}

// RecoverWithHandler executes handler and recovers from any panic. The
// handler error, if any, is returned unchanged.
func (m *RecoveryMiddleware) RecoverWithHandler(
	ctx context.Context,
	command string,
	handler func() error,
) (result *RecoveryResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = m.handlePanic(ctx, r, command)
			err = nil
		}
	}()

	err = handler()
	return &RecoveryResult{Recovered: false}, err
}

func (m *RecoveryMiddleware) handlePanic(ctx context.Context, panicValue any, command string) *RecoveryResult {
	info := &PanicInfo{
		Error:      toError(panicValue),
		PanicValue: panicValue,
		RequestID:  RequestIDFromContext(ctx),
		Command:    command,
		Timestamp:  time.Now(),
	}
	if m.config.EnableStackTrace {
		info.StackTrace = string(debug.Stack())
	}

	if m.panicCounter.allow() {
		m.config.Logger.Error("panic recovered in command handler",
			logger.Command(command),
			logger.RequestID(info.RequestID),
			logger.Err(info.Error),
			logger.Any("stack", info.StackTrace),
		)
	}

	if m.config.OnPanic != nil {
		m.config.OnPanic(ctx, info)
	}

	return &RecoveryResult{
		Recovered:   true,
		PanicInfo:   info,
		UserMessage: m.config.UserErrorMessage,
	}
}

// toError converts a panic value to an error.
func toError(panicValue any) error {
	switch v := panicValue.(type) {
	case error:
		return v
	case string:
		return fmt.Errorf("%s", v)
	default:
		return fmt.Errorf("panic: %v", v)
	}
}

// panicRateLimiter keeps a crash loop from flooding the log.
type panicRateLimiter struct {
	mu        sync.Mutex
	count     int
	maxPerMin int
	window    time.Time
}

func newPanicRateLimiter(maxPerMin int) *panicRateLimiter {
	return &panicRateLimiter{
		maxPerMin: maxPerMin,
		window:    time.Now(),
	}
}

func (p *panicRateLimiter) allow() bool {
	if p.maxPerMin <= 0 {
		return true
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if now.Sub(p.window) > time.Minute {
		p.count = 0
		p.window = now
	}
	if p.count >= p.maxPerMin {
		return false
	}
	p.count++
	return true
}
