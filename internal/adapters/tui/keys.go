package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Jump        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Contact     key.Binding
	ToggleTheme key.Binding
	Help        key.Binding
	Quit        key.Binding

	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
}

func newKeyMap(sectionCount int) keyMap {
	digits := make([]string, 0, sectionCount)
	for i := 1; i <= sectionCount; i++ {
		digits = append(digits, strconv.Itoa(i))
	}

	return keyMap{
		Jump: key.NewBinding(
			key.WithKeys(digits...),
			key.WithHelp(fmt.Sprintf("1-%d", sectionCount), "jump to section"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "previous section"),
		),
		Contact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "contact form"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send message"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Contact, k.ToggleTheme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.NextSection, k.PrevSection},
		{k.Contact, k.ToggleTheme},
		{k.Help, k.Quit},
	}
}
