package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if !m.ready {
		return "\n  Preparing the page..."
	}

	body := m.viewport.View()
	if m.mode == modeContact {
		body = m.formView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.footerView(),
	)
}

// headerView is always exactly two lines tall so the viewport height stays
// stable. Once the reader scrolls past the top the bar picks up a background
// and a rule, the compact treatment.
func (m *Model) headerView() string {
	s := newStyles(m.theme)
	state := m.nav.State()

	tabs := make([]string, 0, len(m.sections))
	for _, section := range m.sections {
		style := s.tab
		if section.ID == state.Active {
			style = s.tabActive
		}
		tabs = append(tabs, style.Render(section.Title))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	rule := ""
	if state.ScrolledPast {
		bar = s.compactBar.Width(m.width).Render(bar)
		rule = s.rule.Render(strings.Repeat("─", max(m.width, 1)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().MaxWidth(m.width).Render(bar),
		rule,
	)
}

func (m *Model) footerView() string {
	s := newStyles(m.theme)

	left := m.statusView(s)
	right := s.percent.Render(fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	statusLine := left + strings.Repeat(" ", gap) + right

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().MaxWidth(m.width).Render(statusLine),
		m.help.View(m.keys),
	)
}

func (m *Model) statusView(s styles) string {
	if m.sending {
		return m.spin.View() + " " + s.status.Render("Sending message...")
	}
	switch m.status.kind {
	case statusGood:
		return s.statusGood.Render(m.status.text)
	case statusBad:
		return s.statusBad.Render(m.status.text)
	default:
		return s.status.Render(m.status.text)
	}
}

func (m *Model) formView() string {
	s := newStyles(m.theme)

	hint := "tab: next field · ctrl+s: send · esc: back"
	if m.sending {
		hint = m.spin.View() + " sending..."
	}

	box := s.formBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.formTitle.Render("Get in touch"),
		"",
		s.formLabel.Render("Name"),
		m.form.name.View(),
		"",
		s.formLabel.Render("Email"),
		m.form.email.View(),
		"",
		s.formLabel.Render("Message"),
		m.form.message.View(),
		"",
		s.formHint.Render(hint),
	))

	return lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, box)
}
