package command

import (
	"context"
	"fmt"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/internal/domain/shared"
	"github.com/alem-hub/assistant-bot/pkg/logger"
)

// DeleteContactCommand removes a contact by name.
type DeleteContactCommand struct {
	Name string
}

// DeleteContactHandler handles the DeleteContactCommand.
type DeleteContactHandler struct {
	book *contact.AddressBook
}

// NewDeleteContactHandler creates a new DeleteContactHandler.
func NewDeleteContactHandler(book *contact.AddressBook) *DeleteContactHandler {
	return &DeleteContactHandler{book: book}
}

// Handle deletes the contact. Unknown names yield shared.ErrContactNotFound
// so the user learns about typos.
func (h *DeleteContactHandler) Handle(ctx context.Context, cmd DeleteContactCommand) error {
	if _, ok := h.book.Find(cmd.Name); !ok {
		return fmt.Errorf("delete_contact: %w", shared.ErrContactNotFound)
	}
	h.book.Delete(cmd.Name)

	logger.FromContext(ctx).Debug("contact deleted",
		logger.Operation("delete_contact"),
		logger.ContactName(cmd.Name),
	)
	return nil
}
