package handler

import (
	"context"

	"github.com/alem-hub/assistant-bot/internal/application/command"
	"github.com/alem-hub/assistant-bot/internal/application/query"
	"github.com/alem-hub/assistant-bot/internal/interface/console/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONTACT HANDLERS
// add, change, phone, all, delete
// ══════════════════════════════════════════════════════════════════════════════

// AddHandler handles "add <name> <phone>".
type AddHandler struct {
	addContact *command.AddContactHandler
}

// NewAddHandler creates a new AddHandler.
func NewAddHandler(addContact *command.AddContactHandler) *AddHandler {
	return &AddHandler{addContact: addContact}
}

// Handle implements Handler.
func (h *AddHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	if err := expectArgs(req, 2, presenter.MsgNeedNameAndPhone); err != nil {
		return nil, err
	}
	_, err := h.addContact.Handle(ctx, command.AddContactCommand{
		Name:  req.Args[0],
		Phone: req.Args[1],
	})
	if err != nil {
		return nil, err
	}
	return Text(presenter.MsgContactAdded), nil
}

// ChangeHandler handles "change <name> <phone>".
type ChangeHandler struct {
	changePhone *command.ChangePhoneHandler
}

// NewChangeHandler creates a new ChangeHandler.
func NewChangeHandler(changePhone *command.ChangePhoneHandler) *ChangeHandler {
	return &ChangeHandler{changePhone: changePhone}
}

// Handle implements Handler.
func (h *ChangeHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	if err := expectArgs(req, 2, presenter.MsgNeedNameAndPhone); err != nil {
		return nil, err
	}
	_, err := h.changePhone.Handle(ctx, command.ChangePhoneCommand{
		Name:  req.Args[0],
		Phone: req.Args[1],
	})
	if err != nil {
		return nil, err
	}
	return Text(presenter.MsgContactUpdated), nil
}

// PhoneHandler handles "phone <name>".
type PhoneHandler struct {
	showPhone *query.ShowPhoneHandler
}

// NewPhoneHandler creates a new PhoneHandler.
func NewPhoneHandler(showPhone *query.ShowPhoneHandler) *PhoneHandler {
	return &PhoneHandler{showPhone: showPhone}
}

// Handle implements Handler.
func (h *PhoneHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	if err := expectArgs(req, 1, presenter.MsgNeedName); err != nil {
		return nil, err
	}
	res, err := h.showPhone.Handle(ctx, query.ShowPhoneQuery{Name: req.Args[0]})
	if err != nil {
		return nil, err
	}
	return Text(presenter.FormatPhones(res.Phones)), nil
}

// AllHandler handles "all". Extra arguments are ignored.
type AllHandler struct {
	listContacts *query.ListContactsHandler
}

// NewAllHandler creates a new AllHandler.
func NewAllHandler(listContacts *query.ListContactsHandler) *AllHandler {
	return &AllHandler{listContacts: listContacts}
}

// Handle implements Handler.
func (h *AllHandler) Handle(ctx context.Context, _ Request) (*Response, error) {
	res, err := h.listContacts.Handle(ctx, query.ListContactsQuery{})
	if err != nil {
		return nil, err
	}
	return Text(presenter.FormatContactList(res.Records)), nil
}

// DeleteHandler handles "delete <name>".
type DeleteHandler struct {
	deleteContact *command.DeleteContactHandler
}

// NewDeleteHandler creates a new DeleteHandler.
func NewDeleteHandler(deleteContact *command.DeleteContactHandler) *DeleteHandler {
	return &DeleteHandler{deleteContact: deleteContact}
}

// Handle implements Handler.
func (h *DeleteHandler) Handle(ctx context.Context, req Request) (*Response, error) {
	if err := expectArgs(req, 1, presenter.MsgNeedName); err != nil {
		return nil, err
	}
	if err := h.deleteContact.Handle(ctx, command.DeleteContactCommand{Name: req.Args[0]}); err != nil {
		return nil, err
	}
	return Text(presenter.MsgContactDeleted), nil
}
