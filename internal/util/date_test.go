package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-15")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.March || parsed.Day() != 15 {
		t.Errorf("Expected 2025-03-15, got %v", parsed)
	}
}

func TestParseDate_Empty(t *testing.T) {
	parsed, err := ParseDate("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !parsed.IsZero() {
		t.Errorf("Expected zero time, got %v", parsed)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	if _, err := ParseDate("15/03/2025"); err == nil {
		t.Error("Expected error for wrong format")
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(date); got != "2025-03-15" {
		t.Errorf("Expected 2025-03-15, got %s", got)
	}
}

func TestFormatDate_Zero(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestMonthDate(t *testing.T) {
	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	first := MonthDate(start, 1)
	if !first.Equal(start) {
		t.Errorf("Expected month 1 to be the start date, got %v", first)
	}

	third := MonthDate(start, 3)
	want := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !third.Equal(want) {
		t.Errorf("Expected %v, got %v", want, third)
	}
}

func TestMonthDate_ClampsShortMonths(t *testing.T) {
	// Jan 31 + 1 month lands in February, clamped to its last day
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	second := MonthDate(start, 2)
	want := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	if !second.Equal(want) {
		t.Errorf("Expected %v, got %v", want, second)
	}
}
