package query

import (
	"context"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
)

// ListContactsQuery lists every contact.
type ListContactsQuery struct{}

// ListContactsResult holds the contacts in insertion order.
type ListContactsResult struct {
	Records []*contact.Record
}

// ListContactsHandler handles the ListContactsQuery.
type ListContactsHandler struct {
	book *contact.AddressBook
}

// NewListContactsHandler creates a new ListContactsHandler.
func NewListContactsHandler(book *contact.AddressBook) *ListContactsHandler {
	return &ListContactsHandler{book: book}
}

// Handle executes the query. It never fails.
func (h *ListContactsHandler) Handle(_ context.Context, _ ListContactsQuery) (*ListContactsResult, error) {
	return &ListContactsResult{Records: h.book.Records()}, nil
}
