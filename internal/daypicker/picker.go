// Package daypicker is the navigation engine behind a calendar day picker:
// month grids, per-day modifiers, bounded month navigation and keyboard
// focus traversal. It renders nothing; a UI feeds it decoded events and
// draws what Window returns.
package daypicker

import (
	"log/slog"
	"time"
)

// Picker owns the navigation state of one widget instance. It is not safe
// for concurrent use; every method runs synchronously on the UI goroutine.
type Picker struct {
	cfg    Config
	state  State
	locale string
	loc    LocaleProvider
	now    func() time.Time
	logger *slog.Logger

	onMonthChange  func(Month)
	onFocusChange  func(Date)
	onDayActivate  func(Date, []string)
	onCaptionClick func(Month)
}

type Option func(*Picker)

func WithNumberOfMonths(n int) Option {
	return func(p *Picker) { p.cfg.NumberOfMonths = n }
}

func WithBounds(b Bounds) Option {
	return func(p *Picker) { p.cfg.Bounds = b }
}

func WithModifiers(mods Modifiers) Option {
	return func(p *Picker) { p.cfg.Modifiers = append(p.cfg.Modifiers, mods...) }
}

func WithOutsideDays(enabled bool) Option {
	return func(p *Picker) { p.cfg.EnableOutsideDays = enabled }
}

func WithCanChangeMonth(enabled bool) Option {
	return func(p *Picker) { p.cfg.CanChangeMonth = enabled }
}

// WithLocale selects the locale and the provider that formats it.
func WithLocale(locale string, lp LocaleProvider) Option {
	return func(p *Picker) {
		p.locale = locale
		if lp != nil {
			p.loc = lp
		}
	}
}

// WithNow replaces the wall clock used for the today modifier.
func WithNow(now func() time.Time) Option {
	return func(p *Picker) { p.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Picker) { p.logger = l }
}

// OnDayActivate installs the activation handler. Without one the grid has
// no focusable days.
func OnDayActivate(fn func(day Date, modifiers []string)) Option {
	return func(p *Picker) { p.onDayActivate = fn }
}

func OnMonthChange(fn func(Month)) Option {
	return func(p *Picker) { p.onMonthChange = fn }
}

// OnFocusChange is called with the focused day, or a zero Date on blur.
func OnFocusChange(fn func(Date)) Option {
	return func(p *Picker) { p.onFocusChange = fn }
}

func OnCaptionClick(fn func(Month)) Option {
	return func(p *Picker) { p.onCaptionClick = fn }
}

// New creates a picker showing the month that contains initial.
func New(initial Month, opts ...Option) (*Picker, error) {
	p := &Picker{
		cfg: Config{
			NumberOfMonths: 1,
			CanChangeMonth: true,
		},
		locale: DefaultLocale,
		loc:    English{},
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cfg.Interactive = p.onDayActivate != nil
	p.cfg.FirstDayOfWeek = p.loc.FirstDayOfWeek(p.locale)
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}
	p.state = State{CurrentMonth: initial}
	return p, nil
}

// Handle applies ev, commits the resulting state and then delivers its
// notifications in order. The notifications are also returned.
func (p *Picker) Handle(ev Event) []Notification {
	cfg := p.config()
	next, notes := Transition(cfg, p.state, ev)
	p.state = next
	if len(notes) > 0 {
		p.logger.Debug("picker transition",
			"event", eventName(ev),
			"month", next.CurrentMonth.String(),
			"focused", next.FocusedDay.String(),
			"notifications", len(notes))
	}
	for _, n := range notes {
		p.dispatch(n)
	}
	return notes
}

func (p *Picker) dispatch(n Notification) {
	switch n := n.(type) {
	case MonthChanged:
		if p.onMonthChange != nil {
			p.onMonthChange(n.Month)
		}
	case FocusChanged:
		if p.onFocusChange != nil {
			p.onFocusChange(n.Day)
		}
	case DayActivated:
		if p.onDayActivate != nil {
			p.onDayActivate(n.Day, n.Modifiers)
		}
	case CaptionActivated:
		if p.onCaptionClick != nil {
			p.onCaptionClick(n.Month)
		}
	}
}

func (p *Picker) config() Config {
	cfg := p.cfg
	cfg.Today = DateOf(p.now())
	return cfg
}

func (p *Picker) State() State {
	return p.state
}

func (p *Picker) CurrentMonth() Month {
	return p.state.CurrentMonth
}

// FocusedDay returns the focused day and whether any day has focus.
func (p *Picker) FocusedDay() (Date, bool) {
	return p.state.FocusedDay, !p.state.FocusedDay.IsZero()
}

func (p *Picker) NumberOfMonths() int {
	return p.cfg.NumberOfMonths
}

// CurrentGrid returns the grid of the first visible month.
func (p *Picker) CurrentGrid() Grid {
	return BuildGrid(p.state.CurrentMonth, p.cfg.FirstDayOfWeek)
}

func (p *Picker) IsMonthNavigableBackward() bool {
	return p.cfg.CanChangeMonth && p.cfg.Bounds.AllowPrevious(p.state.CurrentMonth)
}

func (p *Picker) IsMonthNavigableForward() bool {
	return p.cfg.CanChangeMonth && p.cfg.Bounds.AllowNext(p.state.CurrentMonth, p.cfg.NumberOfMonths)
}

// MonthView is one classified month of the visible window.
type MonthView struct {
	Month Month
	Title string
	Weeks [][7]Cell
}

// Window classifies every visible month against the current state.
func (p *Picker) Window() []MonthView {
	cfg := p.config()
	grids := cfg.Window(p.state.CurrentMonth)
	views := make([]MonthView, len(grids))
	for i, g := range grids {
		views[i] = MonthView{
			Month: g.Month,
			Title: p.loc.FormatMonthTitle(g.Month, p.locale),
			Weeks: cfg.Cells(g, p.state.FocusedDay),
		}
	}
	return views
}

// Cell returns the classified cell of d as the window currently shows it.
func (p *Picker) Cell(d Date) (Cell, bool) {
	c, ok := lookup(p.config(), p.state.CurrentMonth, d)
	if ok {
		c.Focused = SameDay(d, p.state.FocusedDay)
	}
	return c, ok
}

// TabStop returns the window's natural tab stop: the first day of the
// first visible month, if any day is focusable.
func (p *Picker) TabStop() (Date, bool) {
	d := p.state.CurrentMonth.First()
	c, ok := p.Cell(d)
	return d, ok && c.Tab == TabNatural
}

// Weekdays returns the short and long weekday labels in grid column order.
func (p *Picker) Weekdays() (short, long [7]string) {
	for i := range 7 {
		wd := (int(p.cfg.FirstDayOfWeek) + i) % 7
		short[i] = p.loc.FormatWeekdayShort(wd, p.locale)
		long[i] = p.loc.FormatWeekdayLong(wd, p.locale)
	}
	return short, long
}

func eventName(ev Event) string {
	switch ev.(type) {
	case ArrowLeft:
		return "arrow_left"
	case ArrowRight:
		return "arrow_right"
	case Activate:
		return "activate"
	case Click:
		return "click"
	case FocusGained:
		return "focus_gained"
	case FocusLost:
		return "focus_lost"
	case PreviousMonth:
		return "previous_month"
	case NextMonth:
		return "next_month"
	case ShowMonth:
		return "show_month"
	case Reset:
		return "reset"
	case CaptionClick:
		return "caption_click"
	default:
		return "unknown"
	}
}
