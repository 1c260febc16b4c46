package contact

import (
	"strings"
	"time"

	"github.com/alem-hub/assistant-bot/internal/domain/shared"
	"github.com/alem-hub/assistant-bot/pkg/timeutil"
)

// ═══════════════════════════════════════════════════════════════════════════
// Name Value Object
// ═══════════════════════════════════════════════════════════════════════════

// Name is the unique key of a contact.
type Name string

// String returns the string representation.
func (n Name) String() string {
	return string(n)
}

// NewName creates a Name with validation.
func NewName(value string) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return "", shared.ErrInvalidName
	}
	return Name(value), nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Phone Value Object
// ═══════════════════════════════════════════════════════════════════════════

// PhoneLength is the exact number of digits in a phone number.
const PhoneLength = 10

// Phone is a phone number of exactly ten decimal digits.
type Phone string

// IsValid checks the ten-digit rule.
func (p Phone) IsValid() bool {
	if len(p) != PhoneLength {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the string representation.
func (p Phone) String() string {
	return string(p)
}

// NewPhone creates a Phone with validation.
func NewPhone(value string) (Phone, error) {
	p := Phone(value)
	if !p.IsValid() {
		return "", shared.ErrInvalidPhone
	}
	return p, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Birthday Value Object
// ═══════════════════════════════════════════════════════════════════════════

// Birthday is a calendar date given as dd.mm.yyyy. The raw input is kept
// for display; the parsed date drives the birthday window.
type Birthday struct {
	value string
	date  time.Time
}

// NewBirthday creates a Birthday with validation. Impossible dates such as
// 31.02.2020 are rejected.
func NewBirthday(value string) (Birthday, error) {
	date, err := timeutil.ParseDate(value)
	if err != nil {
		return Birthday{}, shared.WrapError("contact", "NewBirthday", shared.ErrInvalidBirthday,
			"cannot parse birthday", err)
	}
	return Birthday{value: value, date: date}, nil
}

// String returns the birthday as it was entered.
func (b Birthday) String() string {
	return b.value
}

// Date returns the parsed birth date.
func (b Birthday) Date() time.Time {
	return b.date
}

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool {
	return b.value == ""
}

// OccurrenceIn returns the birthday's month/day in the given year.
// February 29 maps to February 28 in non-leap years.
func (b Birthday) OccurrenceIn(year int) time.Time {
	return timeutil.AnniversaryIn(b.date, year)
}
