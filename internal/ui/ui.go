package ui

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daypicker/internal/config"
	"daypicker/internal/daypicker"
	"daypicker/internal/storage"
)

const (
	modSelected = "selected"
	modDisabled = "disabled"
	modWeekend  = "weekend"
)

type mode int

const (
	modeCalendar mode = iota
	modeGoTo
)

// selection reacts to day activations by toggling the persisted selection.
// It is shared by pointer between the model copies bubbletea passes around.
type selection struct {
	store  *storage.Store
	days   map[daypicker.Date]struct{}
	logger *slog.Logger
	status string
}

func (s *selection) has(d daypicker.Date) bool {
	_, ok := s.days[d]
	return ok
}

func (s *selection) activate(d daypicker.Date, mods []string) {
	if slices.Contains(mods, modDisabled) {
		s.status = fmt.Sprintf("%s is disabled", d)
		return
	}
	on, err := s.store.ToggleSelected(d)
	if err != nil {
		s.status = fmt.Sprintf("save failed: %v", err)
		s.logger.Error("toggle selection", "day", d.String(), "err", err)
		return
	}
	if on {
		s.days[d] = struct{}{}
		s.status = "Selected " + d.String()
	} else {
		delete(s.days, d)
		s.status = "Cleared " + d.String()
	}
	s.logger.Info("selection changed", "day", d.String(), "selected", on, "modifiers", mods)
}

type Model struct {
	picker  *daypicker.Picker
	store   *storage.Store
	cfg     config.Config
	sel     *selection
	keys    keyMap
	help    help.Model
	input   textinput.Model
	mode    mode
	status  string
	now     func() time.Time
	logger  *slog.Logger
	initial daypicker.Month
}

type Option func(*Model)

// WithNow replaces the wall clock.
func WithNow(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithInitialMonth overrides the month shown first.
func WithInitialMonth(month daypicker.Month) Option {
	return func(m *Model) { m.initial = month }
}

// New builds the model. The first month shown is, in order of preference,
// the WithInitialMonth value, the month stored on last exit, or today's.
func New(store *storage.Store, cfg config.Config, opts ...Option) (Model, error) {
	m := Model{
		store:  store,
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		mode:   modeCalendar,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
		status: fmt.Sprintf("Press %s to enter the calendar, %s for help.", cfg.Keys.Focus, cfg.Keys.Help),
	}
	for _, opt := range opts {
		opt(&m)
	}

	days, err := store.SelectedSet()
	if err != nil {
		return m, fmt.Errorf("load selections: %w", err)
	}
	m.sel = &selection{store: store, days: days, logger: m.logger}

	if m.initial.IsZero() {
		last, ok, err := store.LastMonth()
		if err != nil {
			return m, fmt.Errorf("load last month: %w", err)
		}
		m.initial = daypicker.MonthOf(m.now())
		if ok {
			m.initial = last
		}
	}

	bounds, err := cfg.Bounds()
	if err != nil {
		return m, err
	}
	m.picker, err = daypicker.New(m.initial,
		daypicker.WithNumberOfMonths(cfg.NumberOfMonths),
		daypicker.WithBounds(bounds),
		daypicker.WithOutsideDays(cfg.EnableOutsideDays),
		daypicker.WithCanChangeMonth(cfg.CanChangeMonth),
		daypicker.WithLocale(cfg.Locale, daypicker.English{}),
		daypicker.WithModifiers(m.modifiers()),
		daypicker.WithNow(m.now),
		daypicker.WithLogger(m.logger),
		daypicker.OnDayActivate(m.sel.activate),
	)
	if err != nil {
		return m, err
	}

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM"
	ti.CharLimit = 7
	ti.Width = 10
	m.input = ti
	return m, nil
}

func (m Model) modifiers() daypicker.Modifiers {
	mods := daypicker.Modifiers{
		{Name: modWeekend, Match: func(d daypicker.Date) bool {
			wd := d.Weekday()
			return wd == time.Saturday || wd == time.Sunday
		}},
		{Name: modSelected, Match: m.sel.has},
	}
	if m.cfg.DisablePastDays {
		now := m.now
		mods = append(mods, daypicker.Modifier{Name: modDisabled, Match: func(d daypicker.Date) bool {
			return d.Before(daypicker.DateOf(now()))
		}})
	}
	return mods
}

func Run(store *storage.Store, cfg config.Config, opts ...Option) error {
	m, err := New(store, cfg, opts...)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithMouseCellMotion()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.store.SaveLastMonth(fm.picker.CurrentMonth())
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeGoTo {
			return m.updateGoToMode(msg)
		}
		return m.updateCalendarMode(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// updateCalendarMode decodes keys into picker events. Day keys page whole
// months while no day holds focus.
func (m Model) updateCalendarMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, focused := m.picker.FocusedDay()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Focus):
		if focused {
			m.dispatch(daypicker.FocusLost{})
			break
		}
		if d, ok := m.picker.TabStop(); ok {
			m.dispatch(daypicker.FocusGained{Day: d})
		}
	case key.Matches(msg, m.keys.Blur):
		m.dispatch(daypicker.FocusLost{})
	case key.Matches(msg, m.keys.PrevDay):
		if focused {
			m.dispatch(daypicker.ArrowLeft{})
		} else {
			m.dispatch(daypicker.PreviousMonth{})
		}
	case key.Matches(msg, m.keys.NextDay):
		if focused {
			m.dispatch(daypicker.ArrowRight{})
		} else {
			m.dispatch(daypicker.NextMonth{})
		}
	case key.Matches(msg, m.keys.Activate):
		m.dispatch(daypicker.Activate{})
	case key.Matches(msg, m.keys.PrevMonth):
		m.dispatch(daypicker.PreviousMonth{})
	case key.Matches(msg, m.keys.NextMonth):
		m.dispatch(daypicker.NextMonth{})
	case key.Matches(msg, m.keys.Today):
		today := daypicker.DateOf(m.now())
		m.dispatch(daypicker.ShowMonth{Month: daypicker.StartOfMonth(today)})
		m.dispatch(daypicker.FocusGained{Day: today})
	case key.Matches(msg, m.keys.GoTo):
		return m.startGoTo(m.picker.CurrentMonth())
	}
	return m, nil
}

func (m Model) startGoTo(month daypicker.Month) (tea.Model, tea.Cmd) {
	m.mode = modeGoTo
	m.input.SetValue(month.String())
	m.input.CursorEnd()
	m.status = "Go to month: type YYYY-MM and press Enter, Esc to cancel"
	return m, m.input.Focus()
}

func (m Model) updateGoToMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.cfg.Keys.Blur, "esc", "ctrl+c":
		m.mode = modeCalendar
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		month, err := daypicker.ParseMonth(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.status = fmt.Sprintf("month invalid: %v", err)
			return m, nil
		}
		m.mode = modeCalendar
		m.input.Blur()
		if m.picker.CurrentMonth() == month {
			m.status = "Showing " + month.String()
			return m, nil
		}
		if len(m.dispatch(daypicker.ShowMonth{Month: month})) == 0 {
			m.status = fmt.Sprintf("%s is outside the navigable range", month)
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || m.mode != modeCalendar {
		return m, nil
	}
	hit, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	if hit.caption {
		m.dispatch(daypicker.CaptionClick{Month: hit.month})
		return m.startGoTo(hit.month)
	}
	m.dispatch(daypicker.FocusGained{Day: hit.day})
	m.dispatch(daypicker.Click{Day: hit.day})
	return m, nil
}

// dispatch feeds ev to the picker and turns its notifications into status
// text. It mutates shared picker state, so it takes a pointer to the copy
// being updated.
func (m *Model) dispatch(ev daypicker.Event) []daypicker.Notification {
	m.sel.status = ""
	notes := m.picker.Handle(ev)
	for _, n := range notes {
		switch n := n.(type) {
		case daypicker.MonthChanged:
			m.status = "Showing " + m.picker.Window()[0].Title
			if err := m.store.SaveLastMonth(n.Month); err != nil {
				m.logger.Warn("save last month", "err", err)
			}
		case daypicker.FocusChanged:
			if !n.Day.IsZero() {
				m.status = n.Day.Time().Format("Monday, January 2 2006")
			}
		case daypicker.DayActivated:
			m.status = m.sel.status
		}
	}
	return notes
}
