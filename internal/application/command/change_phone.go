package command

import (
	"context"
	"fmt"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/internal/domain/shared"
	"github.com/alem-hub/assistant-bot/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CHANGE PHONE COMMAND
// Replaces the first phone of an existing contact.
// ══════════════════════════════════════════════════════════════════════════════

// ChangePhoneCommand contains the data to change a phone.
type ChangePhoneCommand struct {
	Name  string
	Phone string // replacement for the first phone
}

// ChangePhoneResult contains the result of changing a phone.
type ChangePhoneResult struct {
	Name     string
	OldPhone string
	NewPhone string
}

// ChangePhoneHandler handles the ChangePhoneCommand.
type ChangePhoneHandler struct {
	book *contact.AddressBook
}

// NewChangePhoneHandler creates a new ChangePhoneHandler.
func NewChangePhoneHandler(book *contact.AddressBook) *ChangePhoneHandler {
	return &ChangePhoneHandler{book: book}
}

// Handle executes the change phone command.
//
// Errors:
//   - shared.ErrContactNotFound when the name is unknown
//   - shared.ErrNoPhones when the contact has no phone to replace
//   - shared.ErrInvalidPhone when the replacement is malformed
func (h *ChangePhoneHandler) Handle(ctx context.Context, cmd ChangePhoneCommand) (*ChangePhoneResult, error) {
	record, ok := h.book.Find(cmd.Name)
	if !ok {
		return nil, fmt.Errorf("change_phone: %w", shared.ErrContactNotFound)
	}

	phones := record.Phones()
	if len(phones) == 0 {
		return nil, fmt.Errorf("change_phone: %w", shared.ErrNoPhones)
	}
	old := string(phones[0])

	if err := record.EditPhone(old, cmd.Phone); err != nil {
		return nil, fmt.Errorf("change_phone: %w", err)
	}

	logger.FromContext(ctx).Debug("phone changed",
		logger.Operation("change_phone"),
		logger.ContactName(cmd.Name),
	)

	return &ChangePhoneResult{Name: cmd.Name, OldPhone: old, NewPhone: cmd.Phone}, nil
}
