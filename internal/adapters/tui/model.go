// Package tui is the interactive terminal front end. It renders the portfolio
// into a viewport and keeps the navigation service fed with scroll geometry,
// so the active section follows the reader whether they scroll or jump.
package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/degokisss/CS5709/internal/adapters/render/page"
	"github.com/degokisss/CS5709/internal/application"
	"github.com/degokisss/CS5709/internal/domain"
	"github.com/degokisss/CS5709/internal/ports"
)

const (
	headerHeight = 2
	footerHeight = 2

	maxContentWidth = 96

	scrollAnimationFrames = 18
	scrollFrameInterval   = 33 * time.Millisecond

	submitTimeout = 15 * time.Second
)

type viewMode int

const (
	modeBrowse viewMode = iota
	modeContact
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusGood
	statusBad
)

type statusMessage struct {
	text string
	kind statusKind
}

type (
	scrollFrameMsg        struct{}
	suppressionExpiredMsg struct{ generation int }
	contactResultMsg      struct{ err error }
)

// Config carries everything the model needs up front. Theme must already be
// resolved; the model only toggles it from there.
type Config struct {
	Site     domain.Portfolio
	Sections []domain.Section
	Theme    domain.Theme
	Nav      application.NavigationConfig
}

// Model is the bubbletea model for the whole app. It also implements
// ports.Geometry and ports.Scroller on top of its viewport, which is why the
// navigation service is constructed around the model itself.
type Model struct {
	site     domain.Portfolio
	sections []domain.Section
	theme    domain.Theme

	nav     *application.NavigationService
	themes  *application.ThemeService
	contact *application.ContactService
	log     *zap.Logger

	viewport viewport.Model
	doc      page.Document
	ready    bool
	width    int
	height   int

	scrolling    bool
	scrollFrom   int
	scrollTarget int
	scrollFrame  int

	mode    viewMode
	form    contactForm
	sending bool
	spin    spinner.Model
	status  statusMessage

	keys keyMap
	help help.Model
}

var (
	_ tea.Model      = (*Model)(nil)
	_ ports.Geometry = (*Model)(nil)
	_ ports.Scroller = (*Model)(nil)
)

// NewModel wires the model and its navigation service together.
func NewModel(cfg Config, themes *application.ThemeService, contact *application.ContactService, log *zap.Logger) (*Model, error) {
	if len(cfg.Sections) == 0 {
		return nil, errors.New("tui: at least one section is required")
	}
	if themes == nil {
		return nil, errors.New("tui: theme service is required")
	}
	if contact == nil {
		return nil, errors.New("tui: contact service is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	theme := cfg.Theme
	if !theme.Valid() {
		theme = domain.ThemeDark
	}

	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	spin.Style = newStyles(theme).spinnerTint

	m := &Model{
		site:     cfg.Site,
		sections: cfg.Sections,
		theme:    theme,
		themes:   themes,
		contact:  contact,
		log:      log,
		form:     newContactForm(),
		spin:     spin,
		keys:     newKeyMap(len(cfg.Sections)),
		help:     help.New(),
	}

	navCfg := cfg.Nav
	navCfg.Sections = domain.SectionIDs(cfg.Sections)
	nav, err := application.NewNavigationService(navCfg, m, m, log)
	if err != nil {
		return nil, fmt.Errorf("build navigation service: %w", err)
	}
	m.nav = nav

	return m, nil
}

// Theme returns the theme currently applied to the page.
func (m *Model) Theme() domain.Theme {
	return m.theme
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)

	case suppressionExpiredMsg:
		m.nav.ExpireSuppression(msg.generation)
		return m, nil

	case scrollFrameMsg:
		return m, m.advanceScroll()

	case contactResultMsg:
		m.sending = false
		m.finishSubmit(msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.ready || m.mode != modeBrowse {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.interruptScroll()
		m.nav.Tick()
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeContact {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		index := int(msg.String()[0] - '1')
		if index < 0 || index >= len(m.sections) {
			return m, nil
		}
		return m, m.navigate(m.sections[index].ID)

	case key.Matches(msg, m.keys.NextSection):
		return m, m.navigateRelative(1)

	case key.Matches(msg, m.keys.PrevSection):
		return m, m.navigateRelative(-1)

	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Contact):
		m.mode = modeContact
		m.status = statusMessage{}
		return m, m.form.focusField(formFieldName)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.interruptScroll()
	m.nav.Tick()
	return m, cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sending {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.status = statusMessage{}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.startSubmit()

	case key.Matches(msg, m.keys.Next):
		return m, m.form.focusNext()

	case key.Matches(msg, m.keys.Prev):
		return m, m.form.focusPrev()
	}

	return m, m.form.update(msg)
}

func (m *Model) resize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	bodyHeight := height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(width, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = bodyHeight
	}

	m.help.Width = width
	m.form.setWidth(formWidth(width))

	if err := m.renderDocument(); err != nil {
		m.status = statusMessage{text: err.Error(), kind: statusBad}
		return nil
	}
	m.nav.Tick()
	return nil
}

func (m *Model) renderDocument() error {
	width := m.width
	if width > maxContentWidth {
		width = maxContentWidth
	}
	doc, err := page.RenderDocument(m.site, m.sections, page.Options{Theme: m.theme, Width: width})
	if err != nil {
		m.log.Error("render document", zap.Error(err))
		return fmt.Errorf("render document: %w", err)
	}
	m.doc = doc
	m.viewport.SetContent(doc.Text)
	return nil
}

func (m *Model) toggleTheme() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	m.theme = m.themes.Toggle(ctx, m.theme)
	m.spin.Style = newStyles(m.theme).spinnerTint
	if !m.ready {
		return
	}
	if err := m.renderDocument(); err != nil {
		m.status = statusMessage{text: err.Error(), kind: statusBad}
		return
	}
	m.nav.Tick()
}

func (m *Model) navigate(target domain.SectionID) tea.Cmd {
	if !m.ready {
		return nil
	}
	generation, err := m.nav.Navigate(target)
	if err != nil {
		m.status = statusMessage{text: err.Error(), kind: statusBad}
		return nil
	}
	return tea.Batch(
		scrollFrameCmd(),
		suppressionExpiryCmd(generation, m.nav.SuppressionWindow()),
	)
}

func (m *Model) navigateRelative(delta int) tea.Cmd {
	active := m.nav.State().Active
	index := 0
	for i, section := range m.sections {
		if section.ID == active {
			index = i
			break
		}
	}
	count := len(m.sections)
	next := ((index+delta)%count + count) % count
	return m.navigate(m.sections[next].ID)
}

func scrollFrameCmd() tea.Cmd {
	return tea.Tick(scrollFrameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{}
	})
}

func suppressionExpiryCmd(generation int, window time.Duration) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return suppressionExpiredMsg{generation: generation}
	})
}

func (m *Model) advanceScroll() tea.Cmd {
	if !m.scrolling {
		return nil
	}
	m.scrollFrame++
	progress := float64(m.scrollFrame) / float64(scrollAnimationFrames)
	if progress >= 1 {
		m.viewport.SetYOffset(m.scrollTarget)
		m.scrolling = false
		m.nav.Tick()
		return nil
	}
	eased := 1 - math.Pow(1-progress, 3)
	offset := m.scrollFrom + int(math.Round(float64(m.scrollTarget-m.scrollFrom)*eased))
	m.viewport.SetYOffset(offset)
	m.nav.Tick()
	return scrollFrameCmd()
}

func (m *Model) interruptScroll() {
	m.scrolling = false
}

func (m *Model) startSubmit() tea.Cmd {
	message := m.form.values()
	if err := message.Validate(); err != nil {
		m.status = statusMessage{text: err.Error(), kind: statusBad}
		return nil
	}

	m.sending = true
	m.status = statusMessage{}
	service := m.contact
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
			defer cancel()
			return contactResultMsg{err: service.Submit(ctx, message)}
		},
	)
}

func (m *Model) finishSubmit(err error) {
	if err == nil {
		m.form.reset()
		m.mode = modeBrowse
		m.status = statusMessage{text: "Message sent. Thanks for reaching out!", kind: statusGood}
		return
	}

	var limited *domain.RateLimitError
	if errors.As(err, &limited) {
		m.status = statusMessage{
			text: fmt.Sprintf("Too many messages. Try again in %s.", formatRetry(limited.RetryAfter)),
			kind: statusBad,
		}
		return
	}
	m.status = statusMessage{text: "Could not send: " + err.Error(), kind: statusBad}
}

func formatRetry(d time.Duration) string {
	if d < time.Second {
		d = time.Second
	}
	return d.Round(time.Second).String()
}

func formWidth(total int) int {
	width := total - 12
	if width > 60 {
		width = 60
	}
	if width < 20 {
		width = 20
	}
	return width
}

// ScrollOffset implements ports.Geometry.
func (m *Model) ScrollOffset() int {
	return m.viewport.YOffset
}

// ViewportHeight implements ports.Geometry.
func (m *Model) ViewportHeight() int {
	return m.viewport.Height
}

// ContentHeight implements ports.Geometry.
func (m *Model) ContentHeight() int {
	return m.viewport.TotalLineCount()
}

// SectionBounds implements ports.Geometry. Bounds are relative to the
// viewport top so they move as the reader scrolls.
func (m *Model) SectionBounds(id domain.SectionID) (domain.Bounds, error) {
	span, ok := m.doc.Span(id)
	if !ok {
		return domain.Bounds{}, fmt.Errorf("section %q: %w", id, domain.ErrSectionNotFound)
	}
	return domain.Bounds{
		Top:    span.Start - m.viewport.YOffset,
		Bottom: span.End - m.viewport.YOffset,
	}, nil
}

// ScrollTo implements ports.Scroller. It starts the eased scroll animation;
// frames are advanced by scrollFrameMsg ticks.
func (m *Model) ScrollTo(id domain.SectionID) error {
	span, ok := m.doc.Span(id)
	if !ok {
		return fmt.Errorf("section %q: %w", id, domain.ErrSectionNotFound)
	}
	m.scrollFrom = m.viewport.YOffset
	m.scrollTarget = span.Start
	m.scrollFrame = 0
	m.scrolling = true
	return nil
}

// Run starts the interactive program in the alternate screen.
func Run(m *Model) error {
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui program: %w", err)
	}
	return nil
}
