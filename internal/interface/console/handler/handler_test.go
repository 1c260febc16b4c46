package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/assistant-bot/internal/application/command"
	"github.com/alem-hub/assistant-bot/internal/application/query"
	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/internal/domain/shared"
	"github.com/alem-hub/assistant-bot/internal/interface/console/presenter"
	"github.com/alem-hub/assistant-bot/pkg/timeutil"
)

func req(cmd string, args ...string) Request {
	return Request{Command: cmd, Args: args}
}

func TestHandlers_UsagePrompts(t *testing.T) {
	book := contact.NewAddressBook()

	tests := []struct {
		name    string
		handler Handler
		req     Request
		prompt  string
	}{
		{"add without phone", NewAddHandler(command.NewAddContactHandler(book)), req("add", "John"), presenter.MsgNeedNameAndPhone},
		{"add with extra", NewAddHandler(command.NewAddContactHandler(book)), req("add", "John", "1234567890", "x"), presenter.MsgNeedNameAndPhone},
		{"change without args", NewChangeHandler(command.NewChangePhoneHandler(book)), req("change"), presenter.MsgNeedNameAndPhone},
		{"phone without name", NewPhoneHandler(query.NewShowPhoneHandler(book)), req("phone"), presenter.MsgNeedName},
		{"add-birthday without date", NewAddBirthdayHandler(command.NewAddBirthdayHandler(book)), req("add-birthday", "John"), presenter.MsgNeedNameAndBirthday},
		{"show-birthday with extra", NewShowBirthdayHandler(query.NewShowBirthdayHandler(book)), req("show-birthday", "a", "b"), presenter.MsgNeedName},
		{"delete without name", NewDeleteHandler(command.NewDeleteContactHandler(book)), req("delete"), presenter.MsgNeedName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.handler.Handle(context.Background(), tt.req)

			require.True(t, shared.IsUsage(err))
			prompt, ok := shared.UsagePrompt(err)
			require.True(t, ok)
			assert.Equal(t, tt.prompt, prompt)
		})
	}
}

func TestHandlers_ContactFlow(t *testing.T) {
	ctx := context.Background()
	book := contact.NewAddressBook()

	add := NewAddHandler(command.NewAddContactHandler(book))
	change := NewChangeHandler(command.NewChangePhoneHandler(book))
	phone := NewPhoneHandler(query.NewShowPhoneHandler(book))
	all := NewAllHandler(query.NewListContactsHandler(book))
	del := NewDeleteHandler(command.NewDeleteContactHandler(book))

	resp, err := add.Handle(ctx, req("add", "John", "1234567890"))
	require.NoError(t, err)
	assert.Equal(t, presenter.MsgContactAdded, resp.Text)

	resp, err = change.Handle(ctx, req("change", "John", "0987654321"))
	require.NoError(t, err)
	assert.Equal(t, presenter.MsgContactUpdated, resp.Text)

	resp, err = phone.Handle(ctx, req("phone", "John"))
	require.NoError(t, err)
	assert.Equal(t, "0987654321", resp.Text)

	resp, err = all.Handle(ctx, req("all", "ignored"))
	require.NoError(t, err)
	assert.Equal(t, "Contact name: John, phones: 0987654321", resp.Text)

	resp, err = del.Handle(ctx, req("delete", "John"))
	require.NoError(t, err)
	assert.Equal(t, presenter.MsgContactDeleted, resp.Text)

	resp, err = all.Handle(ctx, req("all"))
	require.NoError(t, err)
	assert.Equal(t, "", resp.Text)

	_, err = phone.Handle(ctx, req("phone", "John"))
	assert.True(t, shared.IsNotFound(err))
}

func TestHandlers_BirthdayFlow(t *testing.T) {
	ctx := context.Background()
	book := contact.NewAddressBook()
	_, err := NewAddHandler(command.NewAddContactHandler(book)).Handle(ctx, req("add", "Ann", "1234567890"))
	require.NoError(t, err)

	clock := timeutil.FixedClock(timeutil.Date(2024, time.January, 1))
	addBday := NewAddBirthdayHandler(command.NewAddBirthdayHandler(book))
	showBday := NewShowBirthdayHandler(query.NewShowBirthdayHandler(book))
	upcoming := NewBirthdaysHandler(query.NewUpcomingBirthdaysHandler(book, clock, nil))

	resp, err := showBday.Handle(ctx, req("show-birthday", "Ann"))
	require.NoError(t, err)
	assert.Equal(t, presenter.MsgBirthdayNotSet, resp.Text)

	resp, err = upcoming.Handle(ctx, req("birthdays"))
	require.NoError(t, err)
	assert.Equal(t, presenter.MsgNoBirthdays, resp.Text)

	_, err = addBday.Handle(ctx, req("add-birthday", "Ann", "2000-01-03"))
	assert.True(t, shared.IsValidation(err))

	resp, err = addBday.Handle(ctx, req("add-birthday", "Ann", "03.01.2000"))
	require.NoError(t, err)
	assert.Equal(t, presenter.MsgBirthdayAdded, resp.Text)

	resp, err = showBday.Handle(ctx, req("show-birthday", "Ann"))
	require.NoError(t, err)
	assert.Equal(t, "03.01.2000", resp.Text)

	resp, err = upcoming.Handle(ctx, req("birthdays"))
	require.NoError(t, err)
	assert.Equal(t, "Upcoming birthdays: Ann", resp.Text)

	_, err = addBday.Handle(ctx, req("add-birthday", "Bob", "03.01.2000"))
	assert.True(t, shared.IsNotFound(err))
}

func TestExitHandler(t *testing.T) {
	resp, err := NewExitHandler().Handle(context.Background(), req("exit"))
	require.NoError(t, err)
	assert.True(t, resp.Exit)
	assert.Equal(t, presenter.MsgGoodbye, resp.Text)
}

func TestHandlerFunc(t *testing.T) {
	var h Handler = HandlerFunc(func(_ context.Context, r Request) (*Response, error) {
		return Text(r.Command), nil
	})

	resp, err := h.Handle(context.Background(), req("ping"))
	require.NoError(t, err)
	assert.Equal(t, "ping", resp.Text)
}
