package contact

import (
	"fmt"
	"strings"
)

// Record is one contact: an immutable name, an ordered list of phones
// (duplicates allowed) and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for the given name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phones in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates and appends a phone. Duplicates are kept.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// DeletePhone removes every phone equal to value. Absent values are ignored.
func (r *Record) DeletePhone(value string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if string(p) != value {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to old with the validated
// replacement. When old is not present nothing happens and no error is
// returned.
func (r *Record) EditPhone(old, replacement string) error {
	for i, p := range r.phones {
		if string(p) != old {
			continue
		}
		np, err := NewPhone(replacement)
		if err != nil {
			return err
		}
		r.phones[i] = np
		return nil
	}
	return nil
}

// FindPhone returns the phone equal to value, if present.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.phones {
		if string(p) == value {
			return p, true
		}
	}
	return "", false
}

// AddBirthday validates and sets the birthday, replacing any previous one.
func (r *Record) AddBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// String renders "Contact name: <name>, phones: <p1>; <p2>".
func (r *Record) String() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = string(p)
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(parts, "; "))
}

// ═══════════════════════════════════════════════════════════════════════════
// Snapshot
// Plain data view of a record for storage adapters.
// ═══════════════════════════════════════════════════════════════════════════

// RecordSnapshot is the storage-neutral form of a Record.
type RecordSnapshot struct {
	Name     string
	Phones   []string
	Birthday string // empty when unset
}

// Snapshot returns the record as plain data.
func (r *Record) Snapshot() RecordSnapshot {
	s := RecordSnapshot{
		Name:   string(r.name),
		Phones: make([]string, len(r.phones)),
	}
	for i, p := range r.phones {
		s.Phones[i] = string(p)
	}
	if r.birthday != nil {
		s.Birthday = r.birthday.String()
	}
	return s
}

// RestoreRecord rebuilds a Record from a snapshot, re-running every
// validation rule.
func RestoreRecord(s RecordSnapshot) (*Record, error) {
	r, err := NewRecord(s.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range s.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, fmt.Errorf("contact %q: %w", s.Name, err)
		}
	}
	if s.Birthday != "" {
		if err := r.AddBirthday(s.Birthday); err != nil {
			return nil, fmt.Errorf("contact %q: %w", s.Name, err)
		}
	}
	return r, nil
}
