package page

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degokisss/CS5709/internal/content"
	"github.com/degokisss/CS5709/internal/domain"
)

func renderDefault(t *testing.T, opts Options) Document {
	t.Helper()

	doc, err := RenderDocument(content.Default(), content.Sections(), opts)
	require.NoError(t, err)
	return doc
}

func TestRenderDocumentContainsEverySection(t *testing.T) {
	doc := renderDefault(t, Options{Theme: domain.ThemeDark, Width: 80})

	assert.Contains(t, doc.Text, "Deniz Gokay")
	assert.Contains(t, doc.Text, "Halifax, Nova Scotia")
	for _, heading := range []string{"ABOUT", "EDUCATION", "SKILLS", "PROJECTS", "GALLERY", "CONTACT"} {
		assert.Contains(t, doc.Text, heading)
	}
	assert.Contains(t, doc.Text, "sourdough")
	assert.Contains(t, doc.Text, "driftwatch")
	assert.Contains(t, doc.Text, "Peggy's Cove lighthouse, 35mm")
	assert.Contains(t, doc.Text, "deniz@denizgokay.dev")
}

func TestRenderDocumentSpansIndexTheText(t *testing.T) {
	doc := renderDefault(t, Options{Theme: domain.ThemeDark, Width: 80})
	sections := content.Sections()

	require.Len(t, doc.Spans, len(sections))
	assert.Equal(t, 0, doc.Spans[0].Start)
	for i, span := range doc.Spans {
		assert.Equal(t, sections[i].ID, span.ID)
		assert.GreaterOrEqual(t, span.End, span.Start)
		if i > 0 {
			assert.Equalf(t, doc.Spans[i-1].End+2, span.Start,
				"section %s should start after one blank separator line", span.ID)
		}
	}
	assert.Equal(t, doc.Spans[len(doc.Spans)-1].End+1, lipgloss.Height(doc.Text))
}

func TestRenderDocumentSpanStartsAtSectionHeading(t *testing.T) {
	doc := renderDefault(t, Options{Theme: domain.ThemeDark, Width: 80})
	lines := strings.Split(doc.Text, "\n")

	about, ok := doc.Span(content.SectionAbout)
	require.True(t, ok)
	assert.Contains(t, lines[about.Start], "ABOUT")

	contact, ok := doc.Span(content.SectionContact)
	require.True(t, ok)
	assert.Contains(t, lines[contact.Start], "CONTACT")
	assert.Equal(t, len(lines)-1, contact.End)
}

func TestRenderDocumentSpanLookupMiss(t *testing.T) {
	doc := renderDefault(t, Options{Theme: domain.ThemeDark, Width: 80})

	_, ok := doc.Span(domain.SectionID("blog"))
	assert.False(t, ok)
}

func TestRenderDocumentRejectsUnknownSection(t *testing.T) {
	_, err := RenderDocument(content.Default(), []domain.Section{{ID: "blog", Title: "Blog"}}, Options{Theme: domain.ThemeDark})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no renderer")
}

func TestRenderDocumentDefaultsWidthAndRendersLightTheme(t *testing.T) {
	doc := renderDefault(t, Options{Theme: domain.ThemeLight})

	assert.NotEmpty(t, doc.Text)
	assert.Contains(t, doc.Text, "Deniz Gokay")
}

func TestRenderMatchesDocumentText(t *testing.T) {
	opts := Options{Theme: domain.ThemeDark, Width: 72}

	output, err := Render(content.Default(), content.Sections(), opts)
	require.NoError(t, err)

	doc, err := RenderDocument(content.Default(), content.Sections(), opts)
	require.NoError(t, err)
	assert.Equal(t, doc.Text, output)
}

func TestRenderSurfacesSectionError(t *testing.T) {
	_, err := Render(content.Default(), []domain.Section{{ID: "blog", Title: "Blog"}}, Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no renderer")
}
