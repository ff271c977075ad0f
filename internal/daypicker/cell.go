package daypicker

import "slices"

// TabStop is the keyboard reachability of a rendered day.
type TabStop int

const (
	// TabInert marks a placeholder that is not part of the interactive grid.
	TabInert TabStop = iota
	// TabNone is rendered but never focusable: nothing handles activation,
	// or the day is a clickable outside day.
	TabNone
	// TabProgrammatic is reachable by arrow keys only (tabindex -1).
	TabProgrammatic
	// TabNatural is the grid's single tab stop (tabindex 0).
	TabNatural
)

func (t TabStop) String() string {
	switch t {
	case TabInert:
		return "inert"
	case TabNone:
		return "none"
	case TabProgrammatic:
		return "-1"
	case TabNatural:
		return "0"
	default:
		return "unknown"
	}
}

// Cell is a classified day of a grid, ready to render.
type Cell struct {
	Date      Date
	Outside   bool
	Modifiers []string
	Tab       TabStop
	Focused   bool
}

// Has reports whether the cell carries the named modifier.
func (c Cell) Has(name string) bool {
	return slices.Contains(c.Modifiers, name)
}

func (c Cell) Inert() bool {
	return c.Tab == TabInert
}

// ClassifyOptions carries the widget settings Classify needs.
type ClassifyOptions struct {
	Today             Date
	EnableOutsideDays bool
	// Interactive is false when no activation handler is installed.
	Interactive bool
	Focused     bool
}

// Classify evaluates the built-in and user modifiers for day as shown in
// month and derives its tab stop. Suppressed outside days come back inert
// with no modifiers; rendered ones stay clickable but never take focus.
func Classify(day Date, month Month, user Modifiers, opts ClassifyOptions) Cell {
	outside := !month.Contains(day)
	if outside && !opts.EnableOutsideDays {
		return Cell{Date: day, Outside: true, Tab: TabInert}
	}

	c := Cell{
		Date:      day,
		Outside:   outside,
		Modifiers: Merge(builtins(month, opts.Today), user).Active(day),
		Focused:   opts.Focused,
	}
	switch {
	case !opts.Interactive, outside:
		c.Tab = TabNone
	case day.Day == 1:
		c.Tab = TabNatural
	default:
		c.Tab = TabProgrammatic
	}
	return c
}
