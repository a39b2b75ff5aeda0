package page

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/degokisss/CS5709/internal/domain"
)

// ErrUnexpectedRenderModel reports that the render program finished with a
// model of an unexpected type.
var ErrUnexpectedRenderModel = errors.New("render: unexpected final model type")

type renderReadyMsg struct{}

type renderModel struct {
	site     domain.Portfolio
	sections []domain.Section
	opts     Options
	output   string
	err      error
}

func (m renderModel) Init() tea.Cmd {
	return func() tea.Msg { return renderReadyMsg{} }
}

func (m renderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		doc, err := RenderDocument(m.site, m.sections, m.opts)
		m.output = doc.Text
		m.err = err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m renderModel) View() string {
	return m.output
}

// Render produces the document text through a one-shot bubbletea program, so
// non-interactive commands share the same render path as the TUI.
func Render(site domain.Portfolio, sections []domain.Section, opts Options) (string, error) {
	program := tea.NewProgram(
		renderModel{site: site, sections: sections, opts: opts},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)
	finalModel, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run render program: %w", err)
	}
	rendered, ok := finalModel.(renderModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}
	if rendered.err != nil {
		return "", rendered.err
	}
	return rendered.output, nil
}
