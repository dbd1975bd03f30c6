package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaultstack/internal/adapters/tui/styles"
)

// FormKeyMap defines key bindings for the setup form
type FormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

// DefaultFormKeys returns the default form key bindings
var DefaultFormKeys = FormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
}

// Field is a single labelled text input
type Field struct {
	Label string
	Input textinput.Model
}

// Form manages multiple text input fields with focus handling
type Form struct {
	Fields  []Field
	Focused int
	Keys    FormKeyMap
}

// NewForm creates a form and focuses the first field
func NewForm(fields ...Field) *Form {
	form := &Form{
		Fields: fields,
		Keys:   DefaultFormKeys,
	}
	if len(fields) > 0 {
		form.Fields[0].Input.Focus()
	}
	return form
}

// NewField creates a labelled field with the given placeholder
func NewField(label, placeholder string, secret bool) Field {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	return Field{Label: label, Input: input}
}

// Init returns the blink command for the focused input
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
// Returns (handled, cmd) where handled is true if the key was processed.
func (f *Form) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.Keys.Tab):
			f.NextField()
			return true, nil
		}
	}

	var cmd tea.Cmd
	if f.Focused >= 0 && f.Focused < len(f.Fields) {
		f.Fields[f.Focused].Input, cmd = f.Fields[f.Focused].Input.Update(msg)
	}
	return false, cmd
}

// NextField moves focus to the next field
func (f *Form) NextField() {
	if len(f.Fields) <= 1 {
		return
	}
	f.Fields[f.Focused].Input.Blur()
	f.Focused = (f.Focused + 1) % len(f.Fields)
	f.Fields[f.Focused].Input.Focus()
}

// Value returns the trimmed value of a field by index
func (f *Form) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

// SetValue sets the value of a field by index
func (f *Form) SetValue(index int, value string) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	f.Fields[index].Input.SetValue(value)
}

// RenderField renders a single field with appropriate styling
func (f *Form) RenderField(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}

	field := f.Fields[index]
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(field.Label))
	b.WriteString("\n")

	if index == f.Focused {
		b.WriteString(styles.InputFocused.Render(field.Input.View()))
	} else {
		b.WriteString(styles.InputField.Render(field.Input.View()))
	}

	return b.String()
}

// RenderHelp renders the help text for the form
func (f *Form) RenderHelp() string {
	parts := []string{
		styles.HelpKey.Render("tab") + " " + styles.HelpDesc.Render("next field"),
		styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("save"),
		styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("cancel"),
	}
	return strings.Join(parts, "  ")
}
