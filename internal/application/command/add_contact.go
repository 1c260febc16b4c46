// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD CONTACT COMMAND
// Creates a contact with a single phone. An existing contact with the same
// name is replaced, so its other phones and birthday are dropped.
// ══════════════════════════════════════════════════════════════════════════════

// AddContactCommand contains the data to add a contact.
type AddContactCommand struct {
	// Name is the contact name, used as the address book key.
	Name string

	// Phone is the raw phone number (10 ASCII digits).
	Phone string
}

// Validate validates the command.
func (c AddContactCommand) Validate() error {
	if _, err := contact.NewName(c.Name); err != nil {
		return err
	}
	_, err := contact.NewPhone(c.Phone)
	return err
}

// AddContactResult contains the result of adding a contact.
type AddContactResult struct {
	// Record is the stored contact.
	Record *contact.Record

	// Replaced is true when a contact with the same name existed before.
	Replaced bool
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// AddContactHandler handles the AddContactCommand.
type AddContactHandler struct {
	book *contact.AddressBook
}

// NewAddContactHandler creates a new AddContactHandler.
func NewAddContactHandler(book *contact.AddressBook) *AddContactHandler {
	return &AddContactHandler{book: book}
}

// Handle executes the add contact command.
func (h *AddContactHandler) Handle(ctx context.Context, cmd AddContactCommand) (*AddContactResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("add_contact: %w", err)
	}

	record, err := contact.NewRecord(cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("add_contact: %w", err)
	}
	if err := record.AddPhone(cmd.Phone); err != nil {
		return nil, fmt.Errorf("add_contact: %w", err)
	}

	_, replaced := h.book.Find(cmd.Name)
	h.book.AddRecord(record)

	logger.FromContext(ctx).Debug("contact added",
		logger.Operation("add_contact"),
		logger.ContactName(cmd.Name),
		logger.Any("replaced", replaced),
	)

	return &AddContactResult{Record: record, Replaced: replaced}, nil
}
