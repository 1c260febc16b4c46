package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/assistant-bot/config"
	"github.com/alem-hub/assistant-bot/internal/domain/shared"
	"github.com/alem-hub/assistant-bot/internal/interface/console/handler"
	"github.com/alem-hub/assistant-bot/pkg/logger"
)

var handlerFuncPanic = handler.HandlerFunc(func(context.Context, handler.Request) (*handler.Response, error) {
	panic("handler exploded")
})

func echo(text string) handler.Handler {
	return handler.HandlerFunc(func(context.Context, handler.Request) (*handler.Response, error) {
		return handler.Text(text), nil
	})
}

func TestParseInput(t *testing.T) {
	req, err := ParseInput("  ADD   John\t1234567890  ")
	require.NoError(t, err)
	assert.Equal(t, "add", req.Command)
	assert.Equal(t, []string{"John", "1234567890"}, req.Args)

	req, err = ParseInput("all")
	require.NoError(t, err)
	assert.Empty(t, req.Args)

	_, err = ParseInput(" \t ")
	assert.True(t, shared.IsParse(err))
}

func TestRouter_HandleCommand(t *testing.T) {
	ff := config.NewFeatureFlags()
	r := NewRouter(RouterConfig{Logger: logger.Discard(), Debug: true, Features: ff})
	r.RegisterCommand(echo("bye"), "exit", "Close")
	r.RegisterFeatureCommand(config.FeatureCommandDelete, echo("deleted"), "delete")
	ctx := context.Background()

	resp, err := r.HandleCommand(ctx, handler.Request{Command: "close"})
	require.NoError(t, err)
	assert.Equal(t, "bye", resp.Text)

	resp, err = r.HandleCommand(ctx, handler.Request{Command: "delete"})
	require.NoError(t, err)
	assert.Equal(t, "deleted", resp.Text)
	assert.Equal(t, []string{"close", "delete", "exit"}, r.Commands())

	require.NoError(t, ff.DisableFeature(config.FeatureCommandDelete))
	_, err = r.HandleCommand(ctx, handler.Request{Command: "delete"})
	assert.True(t, shared.IsParse(err))
	assert.False(t, r.HasCommand("delete"))
	assert.Equal(t, []string{"close", "exit"}, r.Commands())

	_, err = r.HandleCommand(ctx, handler.Request{Command: "nope"})
	assert.True(t, shared.IsParse(err))
}

func TestRouter_GatedCommandsNeedFeatures(t *testing.T) {
	r := NewRouter(RouterConfig{Logger: logger.Discard()})
	r.RegisterFeatureCommand(config.FeatureCommandBirthdays, echo("x"), "birthdays")

	assert.False(t, r.HasCommand("birthdays"))
}

func TestRouter_DefaultCommandHandler(t *testing.T) {
	r := NewRouter(RouterConfig{Logger: logger.Discard()})
	r.SetDefaultCommandHandler(echo("fallback"))

	resp, err := r.HandleCommand(context.Background(), handler.Request{Command: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.Text)
}

func TestReplyForError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{shared.ErrInvalidPhone, "Invalid input."},
		{shared.ErrInvalidBirthday, "Invalid input."},
		{shared.ErrContactNotFound, "Enter user name."},
		{shared.ErrNoPhones, "Command not recognized."},
		{shared.NewUsageError("add", "Give me name and phone please."), "Give me name and phone please."},
		{errors.New("boom"), "Something went wrong. Please try again."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReplyForError(tt.err))
	}
}
