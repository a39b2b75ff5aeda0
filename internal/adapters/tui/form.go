package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/degokisss/CS5709/internal/domain"
)

const (
	formFieldName = iota
	formFieldEmail
	formFieldMessage
	formFieldCount
)

// contactForm groups the inputs of the contact view. Focus moves between the
// fields in order and wraps around.
type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int
}

func newContactForm() contactForm {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 120

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254

	message := textarea.New()
	message.Placeholder = "What would you like to say?"
	message.CharLimit = 2000
	message.ShowLineNumbers = false
	message.SetHeight(5)

	return contactForm{name: name, email: email, message: message}
}

func (f *contactForm) setWidth(width int) {
	f.name.Width = width
	f.email.Width = width
	f.message.SetWidth(width)
}

func (f *contactForm) focusField(index int) tea.Cmd {
	f.focus = ((index % formFieldCount) + formFieldCount) % formFieldCount

	f.name.Blur()
	f.email.Blur()
	f.message.Blur()

	switch f.focus {
	case formFieldName:
		return f.name.Focus()
	case formFieldEmail:
		return f.email.Focus()
	default:
		return f.message.Focus()
	}
}

func (f *contactForm) focusNext() tea.Cmd {
	return f.focusField(f.focus + 1)
}

func (f *contactForm) focusPrev() tea.Cmd {
	return f.focusField(f.focus - 1)
}

func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case formFieldName:
		f.name, cmd = f.name.Update(msg)
	case formFieldEmail:
		f.email, cmd = f.email.Update(msg)
	default:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

func (f *contactForm) values() domain.ContactMessage {
	return domain.ContactMessage{
		SenderName: f.name.Value(),
		ReplyTo:    f.email.Value(),
		Body:       f.message.Value(),
	}
}

func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.focus = formFieldName
}
