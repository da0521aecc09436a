package utils

import (
	"testing"
	"time"
)

func TestToISODate(t *testing.T) {
	d := time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)
	if got := ToISODate(d); got != "2024-03-07" {
		t.Errorf("ToISODate() = %q, want 2024-03-07", got)
	}
}

func TestParseISODateRoundTrip(t *testing.T) {
	parsed := ParseISODate("2024-03-07")
	if got := ToISODate(parsed); got != "2024-03-07" {
		t.Errorf("round trip = %q, want 2024-03-07", got)
	}
	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Errorf("ParseISODate() has time component: %v", parsed)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-03-01", "2024-03-01", 0},
		{"2024-03-01", "2024-03-02", 1},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2023-12-31", "2024-01-01", 1},
		{"2024-03-01", "2024-03-11", 10},
	}
	for _, tc := range tests {
		got := DaysBetween(ParseISODate(tc.a), ParseISODate(tc.b))
		if got != tc.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween() = %d, want 1", got)
	}
}
