package presenter

import (
	"strings"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
)

// PhoneSeparator joins phones of one contact.
const PhoneSeparator = "; "

// FormatPhones joins phones in insertion order.
func FormatPhones(phones []contact.Phone) string {
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, PhoneSeparator)
}

// FormatContactList renders one contact per line. An empty list yields an
// empty string.
func FormatContactList(records []*contact.Record) string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// FormatBirthday returns the birthday as entered, or MsgBirthdayNotSet.
func FormatBirthday(b contact.Birthday, ok bool) string {
	if !ok {
		return MsgBirthdayNotSet
	}
	return b.String()
}

// FormatUpcomingBirthdays renders "Upcoming birthdays: A, B".
func FormatUpcomingBirthdays(names []contact.Name) string {
	if len(names) == 0 {
		return MsgNoBirthdays
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return "Upcoming birthdays: " + strings.Join(parts, ", ")
}
