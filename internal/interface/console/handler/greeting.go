package handler

import (
	"context"

	"github.com/alem-hub/assistant-bot/internal/interface/console/presenter"
)

// HelloHandler answers "hello". Extra arguments are ignored.
type HelloHandler struct{}

// NewHelloHandler creates a new HelloHandler.
func NewHelloHandler() *HelloHandler {
	return &HelloHandler{}
}

// Handle implements Handler.
func (h *HelloHandler) Handle(_ context.Context, _ Request) (*Response, error) {
	return Text(presenter.MsgHello), nil
}

// ExitHandler answers "exit" and "close". The bot saves the address book
// before printing the reply.
type ExitHandler struct{}

// NewExitHandler creates a new ExitHandler.
func NewExitHandler() *ExitHandler {
	return &ExitHandler{}
}

// Handle implements Handler.
func (h *ExitHandler) Handle(_ context.Context, _ Request) (*Response, error) {
	return &Response{Text: presenter.MsgGoodbye, Exit: true}, nil
}
