package handler

import (
	"context"

	"github.com/alem-hub/assistant-bot/internal/application/command"
	"github.com/alem-hub/assistant-bot/internal/application/query"
	"github.com/alem-hub/assistant-bot/internal/interface/console/presenter"
)

// AddBirthdayHandler handles "add-birthday <name> <dd.mm.yyyy>".
type AddBirthdayHandler struct {
	addBirthday *command.AddBirthdayHandler
}

// NewAddBirthdayHandler creates a new AddBirthdayHandler.
func NewAddBirthdayHandler(addBirthday *command.AddBirthdayHandler) *AddBirthdayHandler {
	return &AddBirthdayHandler{addBirthday: addBirthday}
}

// Handle implements Handler.
func (h *AddBirthdayHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	if err := expectArgs(req, 2, presenter.MsgNeedNameAndBirthday); err != nil {
		return nil, err
	}
	_, err := h.addBirthday.Handle(ctx, command.AddBirthdayCommand{
		Name:     req.Args[0],
		Birthday: req.Args[1],
	})
	if err != nil {
		return nil, err
	}
	return Text(presenter.MsgBirthdayAdded), nil
}

// ShowBirthdayHandler handles "show-birthday <name>".
type ShowBirthdayHandler struct {
	showBirthday *query.ShowBirthdayHandler
}

// NewShowBirthdayHandler creates a new ShowBirthdayHandler.
func NewShowBirthdayHandler(showBirthday *query.ShowBirthdayHandler) *ShowBirthdayHandler {
	return &ShowBirthdayHandler{showBirthday: showBirthday}
}

// Handle implements Handler.
func (h *ShowBirthdayHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	if err := expectArgs(req, 1, presenter.MsgNeedName); err != nil {
		return nil, err
	}
	res, err := h.showBirthday.Handle(ctx, query.ShowBirthdayQuery{Name: req.Args[0]})
	if err != nil {
		return nil, err
	}
	return Text(presenter.FormatBirthday(res.Birthday, res.HasValue)), nil
}

// BirthdaysHandler handles "birthdays". Extra arguments are ignored.
type BirthdaysHandler struct {
	upcoming *query.UpcomingBirthdaysHandler
}

// NewBirthdaysHandler creates a new BirthdaysHandler.
func NewBirthdaysHandler(upcoming *query.UpcomingBirthdaysHandler) *BirthdaysHandler {
	return &BirthdaysHandler{upcoming: upcoming}
}

// Handle implements Handler.
func (h *BirthdaysHandler) Handle(ctx context.Context, _ Request) (*Response, error) {
	res, err := h.upcoming.Handle(ctx, query.UpcomingBirthdaysQuery{})
	if err != nil {
		return nil, err
	}
	return Text(presenter.FormatUpcomingBirthdays(res.Names)), nil
}
