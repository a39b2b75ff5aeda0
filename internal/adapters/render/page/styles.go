package page

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/degokisss/CS5709/internal/domain"
)

type palette struct {
	accent  lipgloss.Color
	heading lipgloss.Color
	text    lipgloss.Color
	faint   lipgloss.Color
	border  lipgloss.Color
	badgeFg lipgloss.Color
	badgeBg lipgloss.Color
}

// The app owns its theme as state, so both palettes are explicit instead of
// adaptive: toggling must restyle without the terminal background changing.
func darkPalette() palette {
	return palette{
		accent:  lipgloss.Color("39"),
		heading: lipgloss.Color("81"),
		text:    lipgloss.Color("252"),
		faint:   lipgloss.Color("245"),
		border:  lipgloss.Color("238"),
		badgeFg: lipgloss.Color("252"),
		badgeBg: lipgloss.Color("237"),
	}
}

func lightPalette() palette {
	return palette{
		accent:  lipgloss.Color("27"),
		heading: lipgloss.Color("25"),
		text:    lipgloss.Color("235"),
		faint:   lipgloss.Color("243"),
		border:  lipgloss.Color("250"),
		badgeFg: lipgloss.Color("235"),
		badgeBg: lipgloss.Color("254"),
	}
}

type styles struct {
	heroName     lipgloss.Style
	heroHeadline lipgloss.Style
	heroMeta     lipgloss.Style
	sectionTitle lipgloss.Style
	rule         lipgloss.Style
	body         lipgloss.Style
	faint        lipgloss.Style
	itemTitle    lipgloss.Style
	badge        lipgloss.Style
	link         lipgloss.Style
	frame        lipgloss.Style
	caption      lipgloss.Style
}

func newStyles(theme domain.Theme) styles {
	p := darkPalette()
	if theme == domain.ThemeLight {
		p = lightPalette()
	}

	return styles{
		heroName:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		heroHeadline: lipgloss.NewStyle().Bold(true).Foreground(p.heading),
		heroMeta:     lipgloss.NewStyle().Foreground(p.faint),
		sectionTitle: lipgloss.NewStyle().Bold(true).Foreground(p.heading),
		rule:         lipgloss.NewStyle().Foreground(p.border),
		body:         lipgloss.NewStyle().Foreground(p.text),
		faint:        lipgloss.NewStyle().Foreground(p.faint),
		itemTitle:    lipgloss.NewStyle().Bold(true).Foreground(p.text),
		badge:        lipgloss.NewStyle().Foreground(p.badgeFg).Background(p.badgeBg).Padding(0, 1).MarginRight(1),
		link:         lipgloss.NewStyle().Foreground(p.accent),
		frame:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		caption:      lipgloss.NewStyle().Italic(true).Foreground(p.faint),
	}
}
