// Package page lays out the portfolio as a single scrollable text document.
// Sections are rendered in order and separated by one blank line, and the
// returned spans record where each section starts and ends so scroll position
// can be mapped back to a section.
package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/degokisss/CS5709/internal/content"
	"github.com/degokisss/CS5709/internal/domain"
)

// DefaultWidth is used when the caller does not know the terminal width yet.
const DefaultWidth = 80

// Options control how the document is rendered.
type Options struct {
	Theme domain.Theme
	Width int
}

// SectionSpan is the inclusive line range a section occupies in the document.
type SectionSpan struct {
	ID    domain.SectionID
	Start int
	End   int
}

// Document is the rendered page plus the line index of its sections.
type Document struct {
	Text  string
	Spans []SectionSpan
}

// Span returns the span for the given section, if the document contains it.
func (d Document) Span(id domain.SectionID) (SectionSpan, bool) {
	for _, span := range d.Spans {
		if span.ID == id {
			return span, true
		}
	}
	return SectionSpan{}, false
}

// RenderDocument renders the given sections of the portfolio into a single
// document. Section order in the result follows the order of sections.
func RenderDocument(site domain.Portfolio, sections []domain.Section, opts Options) (Document, error) {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	s := newStyles(opts.Theme)

	bio, err := renderMarkdown(site.Profile.Bio, opts.Theme, width)
	if err != nil {
		return Document{}, fmt.Errorf("render bio markdown: %w", err)
	}

	blocks := make([]string, 0, len(sections))
	for _, section := range sections {
		block, err := renderSection(site, section, bio, width, s)
		if err != nil {
			return Document{}, err
		}
		blocks = append(blocks, strings.TrimRight(block, "\n"))
	}

	spans := make([]SectionSpan, 0, len(blocks))
	line := 0
	for i, block := range blocks {
		height := lipgloss.Height(block)
		spans = append(spans, SectionSpan{
			ID:    sections[i].ID,
			Start: line,
			End:   line + height - 1,
		})
		line += height + 1
	}

	return Document{
		Text:  strings.Join(blocks, "\n\n"),
		Spans: spans,
	}, nil
}

func renderSection(site domain.Portfolio, section domain.Section, bio string, width int, s styles) (string, error) {
	switch section.ID {
	case content.SectionHome:
		return renderHome(site.Profile, s), nil
	case content.SectionAbout:
		return renderAbout(section.Title, bio, s), nil
	case content.SectionEducation:
		return renderEducation(section.Title, site.Education, s), nil
	case content.SectionSkills:
		return renderSkills(section.Title, site.Skills, s), nil
	case content.SectionProjects:
		return renderProjects(section.Title, site.Projects, width, s), nil
	case content.SectionGallery:
		return renderGallery(section.Title, site.Gallery, s), nil
	case content.SectionContact:
		return renderContact(section.Title, site.Contact, width, s), nil
	default:
		return "", fmt.Errorf("no renderer for section %q", section.ID)
	}
}

func sectionHeading(title string, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.sectionTitle.Render(strings.ToUpper(title)),
		s.rule.Render(strings.Repeat("─", len(title)+8)),
	)
}

func renderHome(profile domain.Profile, s styles) string {
	lines := []string{
		s.heroName.Render(profile.Name),
		s.heroHeadline.Render(profile.Headline),
		s.heroMeta.Render(profile.Location),
		"",
	}
	for _, link := range profile.Links {
		lines = append(lines, s.faint.Render(link.Label+"  ")+s.link.Render(link.URL))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAbout(title, bio string, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeading(title, s),
		bio,
	)
}

func renderEducation(title string, entries []domain.EducationEntry, s styles) string {
	lines := []string{sectionHeading(title, s)}
	for _, entry := range entries {
		lines = append(lines,
			s.itemTitle.Render(entry.Degree),
			s.faint.Render(fmt.Sprintf("%s · %s to %s", entry.Institution, entry.Start, entry.End)),
		)
		for _, note := range entry.Notes {
			lines = append(lines, s.body.Render("  - "+note))
		}
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, trimTrailingBlank(lines)...)
}

func renderSkills(title string, groups []domain.SkillGroup, s styles) string {
	lines := []string{sectionHeading(title, s)}
	for _, group := range groups {
		badges := make([]string, 0, len(group.Skills))
		for _, skill := range group.Skills {
			badges = append(badges, s.badge.Render(skill))
		}
		lines = append(lines,
			s.itemTitle.Render(group.Name),
			lipgloss.JoinHorizontal(lipgloss.Top, badges...),
			"",
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, trimTrailingBlank(lines)...)
}

func renderProjects(title string, projects []domain.Project, width int, s styles) string {
	lines := []string{sectionHeading(title, s)}
	for _, project := range projects {
		header := s.itemTitle.Render(project.Name)
		if project.Repo != "" {
			header += s.faint.Render("  ") + s.link.Render(project.Repo)
		}
		badges := make([]string, 0, len(project.Tech))
		for _, tech := range project.Tech {
			badges = append(badges, s.badge.Render(tech))
		}
		lines = append(lines,
			header,
			s.body.Width(width-2).Render(project.Summary),
			lipgloss.JoinHorizontal(lipgloss.Top, badges...),
			"",
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, trimTrailingBlank(lines)...)
}

func renderGallery(title string, items []domain.GalleryItem, s styles) string {
	lines := []string{sectionHeading(title, s)}
	for _, item := range items {
		lines = append(lines,
			s.frame.Render(item.Art),
			s.caption.Render(item.Caption),
			"",
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, trimTrailingBlank(lines)...)
}

func renderContact(title string, info domain.ContactInfo, width int, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeading(title, s),
		s.body.Width(width-2).Render(info.Blurb),
		"",
		s.faint.Render("Email  ")+s.link.Render(info.Email),
	)
}

func renderMarkdown(source string, theme domain.Theme, width int) (string, error) {
	styleName := "dark"
	if theme == domain.ThemeLight {
		styleName = "light"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		return "", err
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return "", err
	}
	return strings.Trim(rendered, "\n"), nil
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
