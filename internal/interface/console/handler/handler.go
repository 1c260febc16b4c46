// Package handler contains console command handlers. Each handler checks
// its argument count, calls one use case and renders the reply through the
// presenter package. Domain errors are returned unchanged; the router turns
// them into user-facing text.
package handler

import (
	"context"

	"github.com/alem-hub/assistant-bot/internal/domain/shared"
)

// Request is a parsed command line.
type Request struct {
	// Command is the lower-cased first token.
	Command string

	// Args are the remaining whitespace-separated tokens.
	Args []string
}

// Response is the reply printed to the user.
type Response struct {
	// Text is printed followed by a newline.
	Text string

	// Exit ends the session after the book has been saved.
	Exit bool
}

// Handler handles one console command.
type Handler interface {
	Handle(ctx context.Context, req Request) (*Response, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, req Request) (*Response, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

// Text wraps a plain reply.
func Text(s string) *Response {
	return &Response{Text: s}
}

// expectArgs returns a usage error carrying prompt unless req has exactly n
// arguments.
func expectArgs(req Request, n int, prompt string) error {
	if len(req.Args) != n {
		return shared.NewUsageError(req.Command, prompt)
	}
	return nil
}
