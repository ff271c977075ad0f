package daypicker

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Date is a calendar date without time of day or location. The zero value
// means "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Month identifies a calendar month. It always stands for the first day of
// that month.
type Month struct {
	Year  int
	Month time.Month
}

// DateOf returns the wall-clock date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate normalizes out-of-range values the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of d. Only the calendar fields are meaningful.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(dateLayout)
}

// StartOfMonth normalizes d to the month containing it.
func StartOfMonth(d Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return StartOfMonth(DateOf(t))
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return MonthOf(t), nil
}

func (m Month) IsZero() bool {
	return m == Month{}
}

// First returns the first day of m.
func (m Month) First() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// Last returns the last day of m.
func (m Month) Last() Date {
	return m.AddMonths(1).First().AddDays(-1)
}

// Contains reports whether d falls in m.
func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// AddMonths returns the month n calendar months away from m.
func (m Month) AddMonths(n int) Month {
	idx := m.index() + n
	y, mo := floorDiv(idx, 12)
	return Month{Year: y, Month: time.Month(mo + 1)}
}

func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return m.First().Time().Format(monthLayout)
}

func (m Month) index() int {
	return m.Year*12 + int(m.Month) - 1
}

// MonthsDiff returns the signed number of whole months from a to b, counted
// at month granularity: MonthsDiff(2024-03, 2024-01) == -2.
func MonthsDiff(a, b Month) int {
	return b.index() - a.index()
}

// SameDay reports whether a and b are the same calendar date. A zero Date
// never matches.
func SameDay(a, b Date) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a == b
}

func floorDiv(a, b int) (q, r int) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
