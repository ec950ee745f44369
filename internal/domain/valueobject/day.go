// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"fmt"
	"time"
)

// dayLayout is the canonical calendar-day key format. Every date that enters
// the system is normalized to this form; equality and filtering always
// compare canonical keys, never locale-formatted strings.
const dayLayout = "2006-01-02"

// Day identifies a calendar day as an opaque YYYY-MM-DD key.
type Day string

// Today returns the Day key for the current date in the local calendar.
func Today() Day {
	return DayOf(time.Now())
}

// DayOf returns the Day key for the given time in its own location.
func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// ParseDay validates and normalizes a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// String returns the canonical key.
func (d Day) String() string {
	return string(d)
}

// Time returns the day at midnight UTC. It assumes d is canonical.
func (d Day) Time() time.Time {
	t, _ := time.Parse(dayLayout, string(d))
	return t
}

// MonthOf returns the calendar month bucket the day falls in.
func (d Day) MonthOf() Month {
	t := d.Time()
	return Month{Year: t.Year(), Month: t.Month()}
}

// Month is a calendar month bucket used for time-series grouping.
type Month struct {
	Year  int
	Month time.Month
}

// Key returns the YYYY-MM prefix shared by every Day in the month.
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label returns a short human-readable label, e.g. "Aug 2026".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month.String()[:3], m.Year)
}

// Contains reports whether the day falls inside the month.
func (m Month) Contains(d Day) bool {
	b := d.MonthOf()
	return b.Year == m.Year && b.Month == m.Month
}

// TrailingMonths returns the n calendar months ending at the month of ref,
// ordered oldest to newest.
func TrailingMonths(ref Day, n int) []Month {
	t := ref.Time()
	months := make([]Month, 0, n)
	for i := n - 1; i >= 0; i-- {
		mt := time.Date(t.Year(), t.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		months = append(months, Month{Year: mt.Year(), Month: mt.Month()})
	}
	return months
}
