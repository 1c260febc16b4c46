package query

import (
	"context"
	"time"

	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/pkg/logger"
	"github.com/alem-hub/assistant-bot/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPCOMING BIRTHDAYS QUERY
// Lists contacts whose birthday falls within the next
// contact.BirthdayWindowDays days, today included.
// ══════════════════════════════════════════════════════════════════════════════

// UpcomingBirthdaysQuery contains the query parameters.
type UpcomingBirthdaysQuery struct {
	// Today overrides the handler clock when non-zero.
	Today time.Time
}

// UpcomingBirthdaysResult contains the matching names.
type UpcomingBirthdaysResult struct {
	// From and To bound the inclusive window.
	From time.Time
	To   time.Time

	// Names are in address book insertion order.
	Names []contact.Name
}

// WrapYearFunc reports whether the window should roll into next year.
// It is consulted on every call so feature flags can change at runtime.
type WrapYearFunc func() bool

// UpcomingBirthdaysHandler handles the UpcomingBirthdaysQuery.
type UpcomingBirthdaysHandler struct {
	book     *contact.AddressBook
	clock    timeutil.Clock
	wrapYear WrapYearFunc
}

// NewUpcomingBirthdaysHandler creates a new UpcomingBirthdaysHandler.
// A nil wrapYear disables year wrapping.
func NewUpcomingBirthdaysHandler(
	book *contact.AddressBook,
	clock timeutil.Clock,
	wrapYear WrapYearFunc,
) *UpcomingBirthdaysHandler {
	if wrapYear == nil {
		wrapYear = func() bool { return false }
	}
	return &UpcomingBirthdaysHandler{
		book:     book,
		clock:    clock,
		wrapYear: wrapYear,
	}
}

// Handle executes the query.
func (h *UpcomingBirthdaysHandler) Handle(ctx context.Context, q UpcomingBirthdaysQuery) (*UpcomingBirthdaysResult, error) {
	today := q.Today
	if today.IsZero() {
		today = timeutil.Today(h.clock)
	}
	today = timeutil.StartOfDay(today)

	opts := contact.WindowOptions{WrapYear: h.wrapYear()}
	names := h.book.UpcomingBirthdays(today, opts)

	logger.FromContext(ctx).Debug("upcoming birthdays computed",
		logger.Operation("upcoming_birthdays"),
		logger.Any("today", timeutil.FormatDate(today)),
		logger.Any("wrap_year", opts.WrapYear),
		logger.Count("matches", len(names)),
	)

	return &UpcomingBirthdaysResult{
		From:  today,
		To:    timeutil.AddDays(today, contact.BirthdayWindowDays),
		Names: names,
	}, nil
}
