package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daypicker/internal/daypicker"
)

// Layout of the calendar area, in terminal cells. Mouse hit testing relies
// on these matching what View draws.
const (
	cellWidth   = 3
	monthWidth  = 7 * cellWidth
	monthGap    = 3
	headerLines = 3 // title, nav bar, blank
	captionRow  = 0
	firstWeek   = 2
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	captionStyle  = lipgloss.NewStyle().Bold(true).Width(monthWidth).Align(lipgloss.Center)
	weekdayStyle  = lipgloss.NewStyle().Faint(true).Width(cellWidth)
	cellStyle     = lipgloss.NewStyle().Width(cellWidth)
	navStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	navOffStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	todayStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	weekendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	outsideStyle  = lipgloss.NewStyle().Faint(true)
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
	focusedStyle  = lipgloss.NewStyle().Reverse(true)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Day picker"))
	b.WriteString("\n")
	b.WriteString(m.renderNavBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderWindow())
	b.WriteString("\n\n")

	if m.mode == modeGoTo {
		b.WriteString("Month: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderNavBar() string {
	prev := navOffStyle.Render("‹ " + m.cfg.Keys.PrevMonth)
	if m.picker.IsMonthNavigableBackward() {
		prev = navStyle.Render("‹ " + m.cfg.Keys.PrevMonth)
	}
	next := navOffStyle.Render(m.cfg.Keys.NextMonth + " ›")
	if m.picker.IsMonthNavigableForward() {
		next = navStyle.Render(m.cfg.Keys.NextMonth + " ›")
	}
	width := m.picker.NumberOfMonths()*(monthWidth+monthGap) - monthGap
	gap := max(width-lipgloss.Width(prev)-lipgloss.Width(next), 1)
	return prev + strings.Repeat(" ", gap) + next
}

func (m Model) renderWindow() string {
	short, _ := m.picker.Weekdays()
	var header strings.Builder
	for _, wd := range short {
		header.WriteString(weekdayStyle.Render(wd))
	}

	views := m.picker.Window()
	blocks := make([]string, 0, 2*len(views))
	for i, v := range views {
		if i > 0 {
			blocks = append(blocks, strings.Repeat(" ", monthGap))
		}
		lines := []string{captionStyle.Render(v.Title), header.String()}
		for _, week := range v.Weeks {
			var row strings.Builder
			for _, c := range week {
				row.WriteString(renderCell(c))
			}
			lines = append(lines, row.String())
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func renderCell(c daypicker.Cell) string {
	if c.Inert() {
		return cellStyle.Render("")
	}
	style := cellStyle
	switch {
	case c.Has(modDisabled):
		style = style.Inherit(disabledStyle)
	case c.Has(daypicker.ModifierOutside):
		style = style.Inherit(outsideStyle)
	case c.Has(daypicker.ModifierToday):
		style = style.Inherit(todayStyle)
	case c.Has(modWeekend):
		style = style.Inherit(weekendStyle)
	}
	if c.Has(modSelected) {
		style = style.Inherit(selectedStyle)
	}
	if c.Focused {
		style = style.Inherit(focusedStyle)
	}
	return style.Render(fmt.Sprintf("%2d", c.Date.Day))
}

type hit struct {
	month   daypicker.Month
	day     daypicker.Date
	caption bool
}

// hitTest maps a terminal position to the caption or day drawn there.
func (m Model) hitTest(x, y int) (hit, bool) {
	row := y - headerLines
	if x < 0 || row < 0 {
		return hit{}, false
	}
	views := m.picker.Window()
	idx := x / (monthWidth + monthGap)
	off := x % (monthWidth + monthGap)
	if idx >= len(views) || off >= monthWidth {
		return hit{}, false
	}
	v := views[idx]
	switch {
	case row == captionRow:
		return hit{month: v.Month, caption: true}, true
	case row >= firstWeek && row-firstWeek < len(v.Weeks):
		c := v.Weeks[row-firstWeek][off/cellWidth]
		if c.Inert() {
			return hit{}, false
		}
		return hit{month: v.Month, day: c.Date}, true
	}
	return hit{}, false
}
