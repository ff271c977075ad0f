package daypicker

import "fmt"

// Bounds limits navigation to [From, To] at month granularity. A zero
// month leaves that side open.
type Bounds struct {
	From Month
	To   Month
}

// Validate rejects a From month that comes after To.
func (b Bounds) Validate() error {
	if b.From.IsZero() || b.To.IsZero() {
		return nil
	}
	if MonthsDiff(b.From, b.To) < 0 {
		return fmt.Errorf("%w: %s > %s", ErrInvalidBounds, b.From, b.To)
	}
	return nil
}

// AllowPrevious reports whether the window anchored at current can move
// back one month without passing From.
func (b Bounds) AllowPrevious(current Month) bool {
	if b.From.IsZero() {
		return true
	}
	return MonthsDiff(current, b.From) < 0
}

// AllowNext reports whether the window of numberOfMonths months anchored at
// current can move forward one month without passing To.
func (b Bounds) AllowNext(current Month, numberOfMonths int) bool {
	if b.To.IsZero() {
		return true
	}
	return MonthsDiff(current, b.To) >= numberOfMonths
}

// AllowMonth reports whether m lies within the bounds.
func (b Bounds) AllowMonth(m Month) bool {
	if !b.From.IsZero() && MonthsDiff(b.From, m) < 0 {
		return false
	}
	if !b.To.IsZero() && MonthsDiff(b.To, m) > 0 {
		return false
	}
	return true
}
