package contact

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Implementations live in infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository persists the whole address book.
type Repository interface {
	// Load reads the stored book and merges it into book; stored entries
	// overwrite records with the same name. A missing store is not an error.
	Load(ctx context.Context, book *AddressBook) error

	// Save writes the complete book, replacing whatever was stored.
	Save(ctx context.Context, book *AddressBook) error
}
