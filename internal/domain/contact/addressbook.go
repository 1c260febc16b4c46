package contact

import (
	"slices"
	"time"

	"github.com/alem-hub/assistant-bot/pkg/timeutil"
)

// BirthdayWindowDays is the length of the forward birthday window. The
// window [today, today+BirthdayWindowDays] is inclusive on both ends.
const BirthdayWindowDays = 7

// AddressBook maps contact names to records. Iteration follows insertion
// order; overwriting an existing name keeps its position.
type AddressBook struct {
	records map[Name]*Record
	order   []Name
}

// NewAddressBook creates an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[Name]*Record)}
}

// AddRecord inserts the record, replacing any record with the same name.
func (b *AddressBook) AddRecord(r *Record) {
	if _, ok := b.records[r.name]; !ok {
		b.order = append(b.order, r.name)
	}
	b.records[r.name] = r
}

// Find returns the record for name. It never fails; the boolean reports
// whether the contact exists.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[Name(name)]
	return r, ok
}

// Delete removes the contact if present.
func (b *AddressBook) Delete(name string) {
	n := Name(name)
	if _, ok := b.records[n]; !ok {
		return
	}
	delete(b.records, n)
	if i := slices.Index(b.order, n); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
}

// Len returns the number of contacts.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, n := range b.order {
		out = append(out, b.records[n])
	}
	return out
}

// Merge copies every record of other into b. Records of other win on
// name collisions.
func (b *AddressBook) Merge(other *AddressBook) {
	for _, r := range other.Records() {
		b.AddRecord(r)
	}
}

// WindowOptions tunes the birthday window.
type WindowOptions struct {
	// WrapYear uses next year's occurrence when this year's birthday has
	// already passed. Off by default: a late-December check does not see
	// early-January birthdays.
	WrapYear bool
}

// UpcomingBirthdays returns the names of contacts whose birthday falls into
// [today, today+BirthdayWindowDays], in insertion order. Only the calendar
// day of today is used.
func (b *AddressBook) UpcomingBirthdays(today time.Time, opts WindowOptions) []Name {
	from := timeutil.StartOfDay(today)
	to := timeutil.AddDays(from, BirthdayWindowDays)

	names := make([]Name, 0)
	for _, n := range b.order {
		bday, ok := b.records[n].Birthday()
		if !ok {
			continue
		}
		occurrence := bday.OccurrenceIn(from.Year())
		if opts.WrapYear && occurrence.Before(from) {
			occurrence = bday.OccurrenceIn(from.Year() + 1)
		}
		if timeutil.InRange(occurrence, from, to) {
			names = append(names, n)
		}
	}
	return names
}
