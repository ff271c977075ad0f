package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"daypicker/internal/config"
)

type keyMap struct {
	Quit      key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	Activate  key.Binding
	Focus     key.Binding
	Blur      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	GoTo      key.Binding
	Today     key.Binding
	Help      key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys(k.Quit, "ctrl+c"),
			key.WithHelp(k.Quit, "quit"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys(k.PrevDay, "left"),
			key.WithHelp("←/"+k.PrevDay, "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys(k.NextDay, "right"),
			key.WithHelp("→/"+k.NextDay, "next day"),
		),
		Activate: key.NewBinding(
			key.WithKeys(k.Activate, " "),
			key.WithHelp(k.Activate+"/space", "select"),
		),
		Focus: key.NewBinding(
			key.WithKeys(k.Focus),
			key.WithHelp(k.Focus, "enter/leave grid"),
		),
		Blur: key.NewBinding(
			key.WithKeys(k.Blur),
			key.WithHelp(k.Blur, "leave grid"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys(k.PrevMonth, "pgup"),
			key.WithHelp(k.PrevMonth, "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys(k.NextMonth, "pgdown"),
			key.WithHelp(k.NextMonth, "next month"),
		),
		GoTo: key.NewBinding(
			key.WithKeys(k.GoTo),
			key.WithHelp(k.GoTo, "go to month"),
		),
		Today: key.NewBinding(
			key.WithKeys(k.Today),
			key.WithHelp(k.Today, "today"),
		),
		Help: key.NewBinding(
			key.WithKeys(k.Help),
			key.WithHelp(k.Help, "more"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.PrevDay, k.NextDay, k.Activate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Blur, k.PrevDay, k.NextDay, k.Activate},
		{k.PrevMonth, k.NextMonth, k.GoTo, k.Today},
		{k.Help, k.Quit},
	}
}
