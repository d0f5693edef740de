package dates

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return parsed
}

func TestParse(t *testing.T) {
	got := mustParse(t, "2024-05-15")
	if got.Year() != 2024 || got.Month() != time.May || got.Day() != 15 {
		t.Errorf("Parse(2024-05-15) = %v", got)
	}

	invalid := []string{"", "15-05-2024", "2024/05/15", "2024-13-01", "yesterday"}
	for _, s := range invalid {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", s)
		}
	}
}

func TestNormalizeIssueDate(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2024-05-15", "2024-05-15"}, // Wednesday maps to itself
		{"2024-05-16", "2024-05-15"}, // Thursday rolls back one day
		{"2024-05-18", "2024-05-15"}, // Saturday rolls back three
		{"2024-05-21", "2024-05-15"}, // Tuesday rolls back six
		{"2024-05-22", "2024-05-22"}, // next Wednesday stays
	}
	for _, c := range cases {
		got := NormalizeIssueDate(mustParse(t, c.input))
		if Format(got) != c.want {
			t.Errorf("NormalizeIssueDate(%s) = %s, want %s", c.input, Format(got), c.want)
		}
	}
}

func TestIsIssueDate(t *testing.T) {
	if !IsIssueDate(mustParse(t, "2024-05-15")) {
		t.Error("2024-05-15 is a Wednesday, want true")
	}
	if IsIssueDate(mustParse(t, "2024-05-16")) {
		t.Error("2024-05-16 is a Thursday, want false")
	}
}

func TestLegacyWeekEnding(t *testing.T) {
	got := LegacyWeekEnding(mustParse(t, "2024-05-15"))
	if Format(got) != "2024-05-04" {
		t.Errorf("LegacyWeekEnding(2024-05-15) = %s, want 2024-05-04", Format(got))
	}
	if got.Weekday() != time.Saturday {
		t.Errorf("legacy week ending fell on %v, want Saturday", got.Weekday())
	}
}

func TestCurrentIssueDate(t *testing.T) {
	now := time.Date(2024, time.May, 17, 14, 30, 0, 0, time.UTC) // Friday afternoon
	got := CurrentIssueDate(now)
	if Format(got) != "2024-05-15" {
		t.Errorf("CurrentIssueDate = %s, want 2024-05-15", Format(got))
	}
}

func TestTruncate(t *testing.T) {
	in := time.Date(2024, time.May, 15, 23, 59, 59, 123, time.UTC)
	got := Truncate(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("Truncate left a time-of-day component: %v", got)
	}
}
