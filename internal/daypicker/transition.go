package daypicker

import (
	"fmt"
	"time"
)

// Config is the immutable part of a picker. Today is refreshed by the
// Picker before every transition.
type Config struct {
	NumberOfMonths    int
	Bounds            Bounds
	FirstDayOfWeek    time.Weekday
	EnableOutsideDays bool
	CanChangeMonth    bool
	Interactive       bool
	Modifiers         Modifiers
	Today             Date
}

// Validate rejects configurations whose navigation arithmetic is undefined.
func (c Config) Validate() error {
	if c.NumberOfMonths < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidNumberOfMonths, c.NumberOfMonths)
	}
	if c.FirstDayOfWeek < time.Sunday || c.FirstDayOfWeek > time.Saturday {
		return fmt.Errorf("first day of week out of range: %d", c.FirstDayOfWeek)
	}
	return c.Bounds.Validate()
}

// State is the only mutable data of a picker. A zero FocusedDay is the
// NoFocus state.
type State struct {
	CurrentMonth Month
	FocusedDay   Date
}

// Transition computes the state that follows s after ev, together with the
// notifications to deliver once that state is committed. It never mutates
// its inputs; an event that changes nothing returns s and no notifications.
func Transition(cfg Config, s State, ev Event) (State, []Notification) {
	var next State
	var acts []Notification

	switch ev := ev.(type) {
	case ArrowLeft:
		next = moveFocus(cfg, s, -1)
	case ArrowRight:
		next = moveFocus(cfg, s, 1)
	case FocusGained:
		next = gainFocus(cfg, s, ev.Day)
	case FocusLost:
		next = State{CurrentMonth: s.CurrentMonth}
	case Activate:
		if s.FocusedDay.IsZero() {
			return s, nil
		}
		next, acts = activateDay(cfg, s, s.FocusedDay)
	case Click:
		next, acts = activateDay(cfg, s, ev.Day)
	case PreviousMonth:
		if !cfg.CanChangeMonth {
			return s, nil
		}
		next = followFocus(cfg, s, showPreviousMonth(cfg, s))
	case NextMonth:
		if !cfg.CanChangeMonth {
			return s, nil
		}
		next = followFocus(cfg, s, showNextMonth(cfg, s))
	case ShowMonth:
		next = followFocus(cfg, s, showMonth(cfg, s, ev.Month))
	case Reset:
		next = State{CurrentMonth: ev.Month}
	case CaptionClick:
		return s, []Notification{CaptionActivated{Month: ev.Month}}
	default:
		return s, nil
	}

	return next, append(diff(s, next), acts...)
}

// diff lists the change notifications between two committed states:
// month first, then focus.
func diff(prev, next State) []Notification {
	var out []Notification
	if next.CurrentMonth != prev.CurrentMonth {
		out = append(out, MonthChanged{Month: next.CurrentMonth})
	}
	if next.FocusedDay != prev.FocusedDay {
		out = append(out, FocusChanged{Day: next.FocusedDay})
	}
	return out
}

// Window returns the grids of the numberOfMonths months anchored at current.
func (c Config) Window(current Month) []Grid {
	n := max(c.NumberOfMonths, 1)
	grids := make([]Grid, n)
	for i := range grids {
		grids[i] = BuildGrid(current.AddMonths(i), c.FirstDayOfWeek)
	}
	return grids
}

// Cells classifies every day of g for the given focus.
func (c Config) Cells(g Grid, focused Date) [][7]Cell {
	rows := make([][7]Cell, len(g.Weeks))
	for w, week := range g.Weeks {
		for i, d := range week {
			rows[w][i] = Classify(d, g.Month, c.Modifiers, ClassifyOptions{
				Today:             c.Today,
				EnableOutsideDays: c.EnableOutsideDays,
				Interactive:       c.Interactive,
				Focused:           SameDay(d, focused),
			})
		}
	}
	return rows
}

// lookup finds the rendered cell for d in the window anchored at current.
// The occurrence inside d's own month wins over an outside copy shown in a
// neighbouring grid.
func lookup(cfg Config, current Month, d Date) (Cell, bool) {
	var fallback *Cell
	for _, g := range cfg.Window(current) {
		if _, _, ok := g.Locate(d); !ok {
			continue
		}
		c := Classify(d, g.Month, cfg.Modifiers, ClassifyOptions{
			Today:             cfg.Today,
			EnableOutsideDays: cfg.EnableOutsideDays,
			Interactive:       cfg.Interactive,
		})
		if !c.Outside {
			return c, true
		}
		if fallback == nil && !c.Inert() {
			fallback = &c
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return Cell{}, false
}
