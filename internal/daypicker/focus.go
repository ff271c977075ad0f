package daypicker

import "slices"

// focusable reports whether d can hold focus in the window anchored at
// current.
func focusable(cfg Config, current Month, d Date) bool {
	c, ok := lookup(cfg, current, d)
	return ok && c.Tab >= TabProgrammatic
}

// traversable reports whether an arrow key may land on d without moving
// the window. Only the in-month occurrence of a day counts: an outside copy
// belongs to a month the window does not own.
func traversable(cfg Config, current Month, d Date) bool {
	c, ok := lookup(cfg, current, d)
	return ok && !c.Outside && c.Tab >= TabProgrammatic
}

// moveFocus steps focus by delta days. When the target is not in the
// window, the window is shifted first and the target resolved against the
// shifted grids; if it still cannot be found the move is dropped.
func moveFocus(cfg Config, s State, delta int) State {
	if s.FocusedDay.IsZero() {
		return s
	}
	target := s.FocusedDay.AddDays(delta)
	if traversable(cfg, s.CurrentMonth, target) {
		s.FocusedDay = target
		return s
	}

	shifted, ok := shiftWindow(cfg, s, delta)
	if !ok || !traversable(cfg, shifted.CurrentMonth, target) {
		return s
	}
	shifted.FocusedDay = target
	return shifted
}

func gainFocus(cfg Config, s State, d Date) State {
	if d.IsZero() || !focusable(cfg, s.CurrentMonth, d) {
		return s
	}
	s.FocusedDay = d
	return s
}

// activateDay forwards an activation of d. Activating an outside day first
// pages the window one step towards it.
func activateDay(cfg Config, s State, d Date) (State, []Notification) {
	c, ok := lookup(cfg, s.CurrentMonth, d)
	if !ok || c.Inert() {
		return s, nil
	}

	next := s
	if slices.Contains(c.Modifiers, ModifierOutside) {
		ahead := MonthsDiff(s.CurrentMonth, StartOfMonth(d))
		switch {
		case ahead > 0 && ahead >= cfg.NumberOfMonths:
			next = followFocus(cfg, s, showNextMonth(cfg, s))
		case ahead < 0:
			next = followFocus(cfg, s, showPreviousMonth(cfg, s))
		}
	}
	return next, []Notification{DayActivated{Day: d, Modifiers: c.Modifiers}}
}
