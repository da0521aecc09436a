package utils

import "time"

const isoDateLayout = "2006-01-02"

// ToISODate formats a time as a calendar date ("YYYY-MM-DD", no time
// component). All completion dates in the system go through this.
func ToISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// ParseISODate parses a "YYYY-MM-DD" string to UTC midnight. Malformed
// input yields the zero time; dates are always produced by ToISODate so
// no validation happens here.
func ParseISODate(s string) time.Time {
	t, _ := time.ParseInLocation(isoDateLayout, s, time.UTC)
	return t
}

// DaysBetween returns the whole calendar days from a to b, negative when
// b precedes a. Both are truncated to their calendar date first.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
