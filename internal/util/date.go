package util

import "time"

// DateLayout is the wire format for ledger display dates
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}

// FormatDate formats a date as YYYY-MM-DD. The zero time yields an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// MonthDate returns the calendar date of the nth loan month counting from
// the start date, clamping the day for shorter months (e.g. day 31 in
// February becomes Feb 28/29)
func MonthDate(start time.Time, month int32) time.Time {
	target := start.AddDate(0, int(month-1), 0)

	// AddDate normalizes overflow (Jan 31 + 1 month = Mar 2/3); clamp
	// back to the last day of the intended month instead
	wantMonth := (int(start.Month()) - 1 + int(month-1)) % 12
	if int(target.Month())-1 != wantMonth {
		target = time.Date(target.Year(), target.Month(), 0, 0, 0, 0, 0, target.Location())
	}
	return target
}
