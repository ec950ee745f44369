// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	t.Run("accepts canonical keys", func(t *testing.T) {
		day, err := ParseDay("2026-08-28")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if day.String() != "2026-08-28" {
			t.Errorf("expected 2026-08-28, got %s", day)
		}
	})

	t.Run("rejects non-calendar strings", func(t *testing.T) {
		for _, s := range []string{"", "28-08-2026", "2026/08/28", "2026-13-01", "2026-02-30", "today"} {
			if _, err := ParseDay(s); err == nil {
				t.Errorf("expected error for %q", s)
			}
		}
	})
}

func TestDayOf(t *testing.T) {
	got := DayOf(time.Date(2026, time.August, 28, 23, 59, 0, 0, time.UTC))
	if got != Day("2026-08-28") {
		t.Errorf("expected 2026-08-28, got %s", got)
	}
}

func TestMonth(t *testing.T) {
	day := Day("2026-08-05")
	month := day.MonthOf()

	t.Run("Key is the shared prefix", func(t *testing.T) {
		if month.Key() != "2026-08" {
			t.Errorf("expected 2026-08, got %s", month.Key())
		}
	})

	t.Run("Label is short and readable", func(t *testing.T) {
		if month.Label() != "Aug 2026" {
			t.Errorf("expected Aug 2026, got %s", month.Label())
		}
	})

	t.Run("Contains matches days in the month only", func(t *testing.T) {
		if !month.Contains(Day("2026-08-31")) {
			t.Error("expected month to contain 2026-08-31")
		}
		if month.Contains(Day("2026-09-01")) {
			t.Error("expected month not to contain 2026-09-01")
		}
	})
}

func TestTrailingMonths(t *testing.T) {
	months := TrailingMonths(Day("2026-02-15"), 6)
	if len(months) != 6 {
		t.Fatalf("expected 6 months, got %d", len(months))
	}

	// Window crosses the year boundary, oldest first.
	want := []string{"2025-09", "2025-10", "2025-11", "2025-12", "2026-01", "2026-02"}
	for i, m := range months {
		if m.Key() != want[i] {
			t.Errorf("month %d: expected %s, got %s", i, want[i], m.Key())
		}
	}
}
