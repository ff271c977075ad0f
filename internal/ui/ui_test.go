package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daypicker/internal/config"
	"daypicker/internal/daypicker"
	"daypicker/internal/storage"
)

func fixedTime(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func setup(t *testing.T, mutate func(*config.Config)) (Model, *storage.Store) {
	t.Helper()
	dir := t.TempDir()
	cfg, err := config.LoadOrCreate(filepath.Join(dir, config.DefaultConfigFileName))
	require.NoError(t, err)
	if mutate != nil {
		mutate(&cfg)
	}

	store, err := storage.Open(cfg.DBPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m, err := New(store, cfg,
		WithNow(fixedTime(time.Date(2024, 3, 14, 9, 0, 0, 0, time.Local))),
		WithInitialMonth(daypicker.Month{Year: 2024, Month: time.March}),
	)
	require.NoError(t, err)
	return m, store
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
)

func focusedDay(t *testing.T, m Model) string {
	t.Helper()
	d, ok := m.picker.FocusedDay()
	require.True(t, ok, "expected a focused day")
	return d.String()
}

func TestTabEntersGridAtFirstOfMonth(t *testing.T) {
	m, _ := setup(t, nil)
	m = press(t, m, tab)
	assert.Equal(t, "2024-03-01", focusedDay(t, m))

	m = press(t, m, tab)
	_, ok := m.picker.FocusedDay()
	assert.False(t, ok, "tab again leaves the grid")
}

func TestArrowKeysTraverseAcrossMonths(t *testing.T) {
	m, store := setup(t, nil)
	m = press(t, m, tab)
	for i := 0; i < 30; i++ {
		m = press(t, m, right)
	}
	assert.Equal(t, "2024-03-31", focusedDay(t, m))
	assert.Equal(t, "2024-03", m.picker.CurrentMonth().String())

	m = press(t, m, runes("l"))
	assert.Equal(t, "2024-04-01", focusedDay(t, m))
	assert.Equal(t, "2024-04", m.picker.CurrentMonth().String())
	assert.Equal(t, "Monday, April 1 2024", m.status)

	last, ok, err := store.LastMonth()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2024-04", last.String())

	m = press(t, m, left)
	assert.Equal(t, "2024-03-31", focusedDay(t, m))
	assert.Equal(t, "2024-03", m.picker.CurrentMonth().String())
}

func TestDayKeysPageMonthsWithoutFocus(t *testing.T) {
	m, _ := setup(t, nil)
	m = press(t, m, right, right, left)
	assert.Equal(t, "2024-04", m.picker.CurrentMonth().String())

	m = press(t, m, runes("["), runes("["))
	assert.Equal(t, "2024-02", m.picker.CurrentMonth().String())
}

func TestActivateTogglesSelection(t *testing.T) {
	m, store := setup(t, nil)
	m = press(t, m, tab, right, enter)
	assert.Equal(t, "Selected 2024-03-02", m.status)

	set, err := store.SelectedSet()
	require.NoError(t, err)
	assert.Contains(t, set, daypicker.NewDate(2024, 3, 2))

	c, ok := m.picker.Cell(daypicker.NewDate(2024, 3, 2))
	require.True(t, ok)
	assert.True(t, c.Has(modSelected))
	assert.True(t, c.Has(modWeekend))

	m = press(t, m, runes(" "))
	assert.Equal(t, "Cleared 2024-03-02", m.status)
	set, err = store.SelectedSet()
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestDisabledDaysAreNotSelected(t *testing.T) {
	m, store := setup(t, func(c *config.Config) { c.DisablePastDays = true })
	m = press(t, m, tab, enter)
	assert.Equal(t, "2024-03-01 is disabled", m.status)

	set, err := store.SelectedSet()
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestBoundsStopPaging(t *testing.T) {
	m, _ := setup(t, func(c *config.Config) {
		c.FromMonth = "2024-03"
		c.ToMonth = "2024-04"
	})
	m = press(t, m, left)
	assert.Equal(t, "2024-03", m.picker.CurrentMonth().String())
	m = press(t, m, right, right, right)
	assert.Equal(t, "2024-04", m.picker.CurrentMonth().String())
}

func TestGoToMonth(t *testing.T) {
	m, _ := setup(t, func(c *config.Config) { c.ToMonth = "2024-12" })
	m = press(t, m, runes("g"))
	require.Equal(t, modeGoTo, m.mode)

	m.input.SetValue("2024-09")
	m = press(t, m, enter)
	assert.Equal(t, modeCalendar, m.mode)
	assert.Equal(t, "2024-09", m.picker.CurrentMonth().String())

	m = press(t, m, runes("g"))
	m.input.SetValue("2025-01")
	m = press(t, m, enter)
	assert.Equal(t, "2024-09", m.picker.CurrentMonth().String())
	assert.Contains(t, m.status, "outside the navigable range")

	m = press(t, m, runes("g"))
	m.input.SetValue("nope")
	m = press(t, m, enter)
	assert.Equal(t, modeGoTo, m.mode)
	assert.Contains(t, m.status, "month invalid")

	m = press(t, m, esc)
	assert.Equal(t, modeCalendar, m.mode)
}

func TestTodayKeyFocusesToday(t *testing.T) {
	m, _ := setup(t, nil)
	m = press(t, m, right, right, runes("t"))
	assert.Equal(t, "2024-03", m.picker.CurrentMonth().String())
	assert.Equal(t, "2024-03-14", focusedDay(t, m))
}

func TestMouseClickSelectsDay(t *testing.T) {
	m, store := setup(t, nil)
	// March 2024 starts on a Friday: column 5 of the first week.
	click := tea.MouseMsg{
		X:      5*cellWidth + 1,
		Y:      headerLines + firstWeek,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	m = press(t, m, click)
	assert.Equal(t, "2024-03-01", focusedDay(t, m))

	set, err := store.SelectedSet()
	require.NoError(t, err)
	assert.Contains(t, set, daypicker.NewDate(2024, 3, 1))
}

func TestMouseClickOnPlaceholderIsIgnored(t *testing.T) {
	m, store := setup(t, nil)
	m = press(t, m, tea.MouseMsg{
		X:      1,
		Y:      headerLines + firstWeek,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	_, ok := m.picker.FocusedDay()
	assert.False(t, ok)
	set, err := store.SelectedSet()
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestMouseClickOnOutsideDayPagesWindow(t *testing.T) {
	m, store := setup(t, func(c *config.Config) { c.EnableOutsideDays = true })
	// 2024-02-25 opens the March grid.
	m = press(t, m, tea.MouseMsg{
		X:      1,
		Y:      headerLines + firstWeek,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, "2024-02", m.picker.CurrentMonth().String())
	_, ok := m.picker.FocusedDay()
	assert.False(t, ok, "outside days never take focus")

	set, err := store.SelectedSet()
	require.NoError(t, err)
	assert.Contains(t, set, daypicker.NewDate(2024, 2, 25))
}

func TestCaptionClickOpensGoTo(t *testing.T) {
	m, _ := setup(t, nil)
	m = press(t, m, tea.MouseMsg{
		X:      10,
		Y:      headerLines + captionRow,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, modeGoTo, m.mode)
	assert.Equal(t, "2024-03", m.input.Value())
}

func TestViewRendersWindow(t *testing.T) {
	m, _ := setup(t, func(c *config.Config) { c.NumberOfMonths = 2 })
	view := m.View()
	assert.Contains(t, view, "March 2024")
	assert.Contains(t, view, "April 2024")
	assert.Contains(t, view, "Su")

	lines := strings.Split(view, "\n")
	require.Greater(t, len(lines), headerLines+firstWeek)
	assert.Contains(t, lines[headerLines+captionRow], "March 2024")
}

func TestQuit(t *testing.T) {
	m, _ := setup(t, nil)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
