package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	PickCategory key.Binding
	RowDown      key.Binding
	RowUp        key.Binding
	SelectRow    key.Binding
	Refresh      key.Binding
	ExportToFile key.Binding
	CopyRecord   key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextCategory: key.NewBinding(
		key.WithKeys("tab", "l", "right"),
		key.WithHelp("tab/l", "next category"),
	),
	PrevCategory: key.NewBinding(
		key.WithKeys("shift+tab", "h", "left"),
		key.WithHelp("⇧tab/h", "previous category"),
	),
	PickCategory: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
		key.WithHelp("1-8", "pick category"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	SelectRow: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select row's category"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export records to file"),
	),
	CopyRecord: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy record to clipboard"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.NextCategory,
		k.PrevCategory,
		k.PickCategory,
		k.RowDown,
		k.RowUp,
		k.SelectRow,
		k.Refresh,
		k.ExportToFile,
		k.CopyRecord,
	}
}
