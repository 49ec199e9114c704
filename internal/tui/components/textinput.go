package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/nmehta/pharmaquiz/internal/tui/theme"
)

// TextInput wraps bubbles/textinput with a label and quiz styling.
type TextInput struct {
	Label    string
	Required bool
	Model    textinput.Model
}

// NewTextInput creates a labelled text input.
func NewTextInput(label, placeholder string, required bool) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	return TextInput{Label: label, Required: required, Model: ti}
}

// Focus places the cursor in this input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from this input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and the input field.
func (t TextInput) View() string {
	label := t.Label
	if t.Required {
		label += " *"
	}
	if t.Model.Focused() {
		return theme.Selected.Render(label) + "\n  " + t.Model.View()
	}
	return theme.Subtitle.Render(label) + "\n  " + t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
