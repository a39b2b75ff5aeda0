package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/degokisss/CS5709/internal/domain"
)

type palette struct {
	accent lipgloss.Color
	text   lipgloss.Color
	faint  lipgloss.Color
	border lipgloss.Color
	barBg  lipgloss.Color
	good   lipgloss.Color
	bad    lipgloss.Color
}

func darkPalette() palette {
	return palette{
		accent: lipgloss.Color("39"),
		text:   lipgloss.Color("252"),
		faint:  lipgloss.Color("245"),
		border: lipgloss.Color("238"),
		barBg:  lipgloss.Color("236"),
		good:   lipgloss.Color("42"),
		bad:    lipgloss.Color("203"),
	}
}

func lightPalette() palette {
	return palette{
		accent: lipgloss.Color("27"),
		text:   lipgloss.Color("235"),
		faint:  lipgloss.Color("243"),
		border: lipgloss.Color("250"),
		barBg:  lipgloss.Color("254"),
		good:   lipgloss.Color("28"),
		bad:    lipgloss.Color("160"),
	}
}

type styles struct {
	tab         lipgloss.Style
	tabActive   lipgloss.Style
	compactBar  lipgloss.Style
	rule        lipgloss.Style
	status      lipgloss.Style
	statusGood  lipgloss.Style
	statusBad   lipgloss.Style
	percent     lipgloss.Style
	formBox     lipgloss.Style
	formTitle   lipgloss.Style
	formLabel   lipgloss.Style
	formHint    lipgloss.Style
	spinnerTint lipgloss.Style
}

func newStyles(theme domain.Theme) styles {
	p := darkPalette()
	if theme == domain.ThemeLight {
		p = lightPalette()
	}

	return styles{
		tab:         lipgloss.NewStyle().Foreground(p.faint).Padding(0, 1),
		tabActive:   lipgloss.NewStyle().Foreground(p.accent).Bold(true).Padding(0, 1),
		compactBar:  lipgloss.NewStyle().Background(p.barBg),
		rule:        lipgloss.NewStyle().Foreground(p.border),
		status:      lipgloss.NewStyle().Foreground(p.faint),
		statusGood:  lipgloss.NewStyle().Foreground(p.good),
		statusBad:   lipgloss.NewStyle().Foreground(p.bad),
		percent:     lipgloss.NewStyle().Foreground(p.faint),
		formBox:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(1, 2),
		formTitle:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		formLabel:   lipgloss.NewStyle().Bold(true).Foreground(p.text),
		formHint:    lipgloss.NewStyle().Foreground(p.faint),
		spinnerTint: lipgloss.NewStyle().Foreground(p.accent),
	}
}
