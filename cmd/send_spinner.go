package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// sendFinishedMsg ends the spinner loop once the wrapped call returns.
type sendFinishedMsg struct{}

type sendProgressModel struct {
	spin  spinner.Model
	label string
	done  bool
}

func (m sendProgressModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m sendProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sendFinishedMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m sendProgressModel) View() string {
	if m.done {
		return ""
	}

	return m.spin.View() + " " + m.label
}

// runSendSpinner renders a spinner on output while send runs. The operation
// runs in its own goroutine and reports back through the program's message
// loop, so the caller gets the operation's error rather than the display's.
func runSendSpinner(ctx context.Context, output io.Writer, send func(context.Context) error) error {
	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
	)

	p := tea.NewProgram(
		sendProgressModel{spin: spin, label: "Sending message..."},
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	var sendErr error
	go func() {
		sendErr = send(ctx)
		p.Send(sendFinishedMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("progress display: %w", err)
	}

	return sendErr
}
