package daypicker

// showMonth moves the window to the month containing m when it lies within
// bounds. Out-of-bounds requests are ignored.
func showMonth(cfg Config, s State, m Month) State {
	if !cfg.Bounds.AllowMonth(m) {
		return s
	}
	s.CurrentMonth = m
	return s
}

func showNextMonth(cfg Config, s State) State {
	if !cfg.Bounds.AllowNext(s.CurrentMonth, cfg.NumberOfMonths) {
		return s
	}
	s.CurrentMonth = s.CurrentMonth.AddMonths(1)
	return s
}

func showPreviousMonth(cfg Config, s State) State {
	if !cfg.Bounds.AllowPrevious(s.CurrentMonth) {
		return s
	}
	s.CurrentMonth = s.CurrentMonth.AddMonths(-1)
	return s
}

// shiftWindow moves the window a whole window width in the direction of
// dir. The shift is refused unless every month of the new window is within
// bounds.
func shiftWindow(cfg Config, s State, dir int) (State, bool) {
	n := cfg.NumberOfMonths
	switch {
	case dir < 0 && cfg.Bounds.AllowMonth(s.CurrentMonth.AddMonths(-n)):
		s.CurrentMonth = s.CurrentMonth.AddMonths(-n)
	case dir > 0 && cfg.Bounds.AllowMonth(s.CurrentMonth.AddMonths(2*n-1)):
		s.CurrentMonth = s.CurrentMonth.AddMonths(n)
	default:
		return s, false
	}
	return s, true
}

// followFocus drops the focus of next when its day is no longer focusable
// in the moved window.
func followFocus(cfg Config, prev, next State) State {
	if next.CurrentMonth == prev.CurrentMonth || next.FocusedDay.IsZero() {
		return next
	}
	if !focusable(cfg, next.CurrentMonth, next.FocusedDay) {
		next.FocusedDay = Date{}
	}
	return next
}
