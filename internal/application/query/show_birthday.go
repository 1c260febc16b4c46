package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/internal/domain/shared"
)

// ShowBirthdayQuery looks up the birthday of one contact.
type ShowBirthdayQuery struct {
	Name string
}

// ShowBirthdayResult contains the birthday, if any.
type ShowBirthdayResult struct {
	Name     string
	Birthday contact.Birthday
	HasValue bool
}

// ShowBirthdayHandler handles the ShowBirthdayQuery.
type ShowBirthdayHandler struct {
	book *contact.AddressBook
}

// NewShowBirthdayHandler creates a new ShowBirthdayHandler.
func NewShowBirthdayHandler(book *contact.AddressBook) *ShowBirthdayHandler {
	return &ShowBirthdayHandler{book: book}
}

// Handle executes the query. A contact without a birthday is not an error.
func (h *ShowBirthdayHandler) Handle(_ context.Context, q ShowBirthdayQuery) (*ShowBirthdayResult, error) {
	record, ok := h.book.Find(q.Name)
	if !ok {
		return nil, fmt.Errorf("show_birthday: %w", shared.ErrContactNotFound)
	}
	bday, set := record.Birthday()
	return &ShowBirthdayResult{Name: q.Name, Birthday: bday, HasValue: set}, nil
}
