package daypicker

import "time"

// Week is seven contiguous days starting on the grid's first weekday.
type Week [7]Date

// Grid lays one month out week by week. The first week starts on or before
// the first of the month and the last week ends on or after its last day.
type Grid struct {
	Month          Month
	FirstDayOfWeek time.Weekday
	Weeks          []Week
}

// BuildGrid returns the minimal whole-week grid covering month.
func BuildGrid(month Month, firstDayOfWeek time.Weekday) Grid {
	first := month.First()
	last := month.Last()

	lead := (int(first.Weekday()) - int(firstDayOfWeek) + 7) % 7
	trail := (int(firstDayOfWeek) + 6 - int(last.Weekday()) + 7) % 7
	total := lead + last.Day + trail

	g := Grid{
		Month:          month,
		FirstDayOfWeek: firstDayOfWeek,
		Weeks:          make([]Week, 0, total/7),
	}
	day := first.AddDays(-lead)
	for w := 0; w < total/7; w++ {
		var week Week
		for i := range week {
			week[i] = day
			day = day.AddDays(1)
		}
		g.Weeks = append(g.Weeks, week)
	}
	return g
}

// Outside reports whether d belongs to a month other than the grid's.
func (g Grid) Outside(d Date) bool {
	return !g.Month.Contains(d)
}

// Locate returns the week and column of d, if the grid shows it.
func (g Grid) Locate(d Date) (week, col int, ok bool) {
	for w, days := range g.Weeks {
		for c, day := range days {
			if day == d {
				return w, c, true
			}
		}
	}
	return 0, 0, false
}

// Days returns every day of the grid in order.
func (g Grid) Days() []Date {
	out := make([]Date, 0, len(g.Weeks)*7)
	for _, w := range g.Weeks {
		out = append(out, w[:]...)
	}
	return out
}
