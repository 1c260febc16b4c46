// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// SHOW PHONE QUERY
// Returns the phones of one contact in insertion order.
// ══════════════════════════════════════════════════════════════════════════════

// ShowPhoneQuery contains the parameters of the phone lookup.
type ShowPhoneQuery struct {
	Name string
}

// ShowPhoneResult contains the phones of a contact.
type ShowPhoneResult struct {
	Name   string
	Phones []contact.Phone
}

// ShowPhoneHandler handles the ShowPhoneQuery.
type ShowPhoneHandler struct {
	book *contact.AddressBook
}

// NewShowPhoneHandler creates a new ShowPhoneHandler.
func NewShowPhoneHandler(book *contact.AddressBook) *ShowPhoneHandler {
	return &ShowPhoneHandler{book: book}
}

// Handle executes the query.
func (h *ShowPhoneHandler) Handle(_ context.Context, q ShowPhoneQuery) (*ShowPhoneResult, error) {
	record, ok := h.book.Find(q.Name)
	if !ok {
		return nil, fmt.Errorf("show_phone: %w", shared.ErrContactNotFound)
	}
	return &ShowPhoneResult{Name: q.Name, Phones: record.Phones()}, nil
}
