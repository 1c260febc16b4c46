package command

import (
	"context"
	"fmt"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/internal/domain/shared"
	"github.com/alem-hub/assistant-bot/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD BIRTHDAY COMMAND
// Sets or replaces the birthday of an existing contact.
// ══════════════════════════════════════════════════════════════════════════════

// AddBirthdayCommand contains the data to set a birthday.
type AddBirthdayCommand struct {
	Name string

	// Birthday in dd.mm.yyyy form.
	Birthday string
}

// AddBirthdayResult contains the result of setting a birthday.
type AddBirthdayResult struct {
	Name     string
	Birthday contact.Birthday
}

// AddBirthdayHandler handles the AddBirthdayCommand.
type AddBirthdayHandler struct {
	book *contact.AddressBook
}

// NewAddBirthdayHandler creates a new AddBirthdayHandler.
func NewAddBirthdayHandler(book *contact.AddressBook) *AddBirthdayHandler {
	return &AddBirthdayHandler{book: book}
}

// Handle executes the add birthday command.
func (h *AddBirthdayHandler) Handle(ctx context.Context, cmd AddBirthdayCommand) (*AddBirthdayResult, error) {
	record, ok := h.book.Find(cmd.Name)
	if !ok {
		return nil, fmt.Errorf("add_birthday: %w", shared.ErrContactNotFound)
	}

	if err := record.AddBirthday(cmd.Birthday); err != nil {
		return nil, fmt.Errorf("add_birthday: %w", err)
	}
	bday, _ := record.Birthday()

	logger.FromContext(ctx).Debug("birthday added",
		logger.Operation("add_birthday"),
		logger.ContactName(cmd.Name),
	)

	return &AddBirthdayResult{Name: cmd.Name, Birthday: bday}, nil
}
