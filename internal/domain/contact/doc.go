// Package contact contains the domain model of the assistant bot's address
// book.
//
// The package defines:
//
//   - Value objects: Name, Phone, Birthday
//   - Entity: Record (one contact with its phones and optional birthday)
//   - Aggregate: AddressBook (name -> Record, insertion ordered)
//   - Repository interface for persisting the whole book
//
// # Validation
//
// Value objects are only constructed through NewName, NewPhone and
// NewBirthday, so any stored value satisfies its format rules. Failures
// wrap shared.ErrValidation:
//
//	phone, err := NewPhone("1234567890")
//	if errors.Is(err, shared.ErrValidation) {
//	    // "Invalid input."
//	}
//
// # Birthday window
//
// AddressBook.UpcomingBirthdays maps each stored day/month onto the current
// year (February 29 becomes February 28 in non-leap years) and keeps the
// contacts whose date falls into the inclusive range [today, today+7d].
// The window does not roll into next year unless WindowOptions.WrapYear is
// set.
//
// # Persistence
//
// Repository implementations live in infrastructure/persistence. The
// domain only exposes Snapshot/RestoreRecord so storage never touches
// unvalidated state.
package contact
