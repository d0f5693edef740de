package dates

import (
	"fmt"
	"time"
)

// Layout is the wire format for all pay-period dates.
const Layout = "2006-01-02"

// legacyWeekEndingOffset is how far behind the issue date the commission
// week closes when no explicit week ending is supplied. Issue dates are
// Wednesdays; the earning week ends the Saturday eleven days earlier.
const legacyWeekEndingOffset = -11

// Parse parses a YYYY-MM-DD date string.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeIssueDate rolls t back to the Wednesday that keys its pay
// period. A Wednesday maps to itself.
func NormalizeIssueDate(t time.Time) time.Time {
	t = Truncate(t)
	offset := (int(t.Weekday()) - int(time.Wednesday) + 7) % 7
	return t.AddDate(0, 0, -offset)
}

// IsIssueDate reports whether t is already a pay-period key date.
func IsIssueDate(t time.Time) bool {
	return t.Weekday() == time.Wednesday
}

// LegacyWeekEnding derives the week-ending date from an issue date the
// way the blank-stub path always has.
func LegacyWeekEnding(issueDate time.Time) time.Time {
	return Truncate(issueDate).AddDate(0, 0, legacyWeekEndingOffset)
}

// CurrentIssueDate returns the issue date covering now.
func CurrentIssueDate(now time.Time) time.Time {
	return NormalizeIssueDate(now)
}

// Format renders t in the wire format.
func Format(t time.Time) string {
	return t.Format(Layout)
}
