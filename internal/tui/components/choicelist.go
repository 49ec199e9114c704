package components

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/nmehta/pharmaquiz/internal/tui/theme"
)

// ChoiceList is an option selector for one question. In multi mode the
// space bar toggles options and enter submits the toggled set; in
// single mode enter submits the cursor position.
type ChoiceList struct {
	Options []string
	Multi   bool

	Cursor  int
	toggled map[int]bool
}

// NewChoiceList creates a selector over the given options.
func NewChoiceList(options []string, multi bool) ChoiceList {
	return ChoiceList{
		Options: options,
		Multi:   multi,
		toggled: make(map[int]bool),
	}
}

// Preselect marks the given indices as toggled, used when revisiting an
// answered question.
func (c ChoiceList) Preselect(indices []int) ChoiceList {
	for _, i := range indices {
		if i >= 0 && i < len(c.Options) {
			c.toggled[i] = true
		}
		if !c.Multi {
			c.Cursor = i
		}
	}
	return c
}

// Update handles keyboard navigation and toggling. Submission is the
// parent model's concern; it reads Selection on enter.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.Multi {
			c.toggled[c.Cursor] = !c.toggled[c.Cursor]
		}
	}

	return c, nil
}

// Selection returns the selected indices: the toggled set in multi
// mode, the cursor position otherwise.
func (c ChoiceList) Selection() []int {
	if !c.Multi {
		return []int{c.Cursor}
	}
	var out []int
	for i, on := range c.toggled {
		if on {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return out
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "> "
		}

		marker := ""
		if c.Multi {
			marker = "[ ] "
			if c.toggled[i] {
				marker = "[x] "
			}
		}

		line := fmt.Sprintf("%s%s%c)  %s", prefix, marker, 'A'+i, opt)
		if i == c.Cursor {
			s += theme.Selected.Render(line) + "\n"
		} else if c.Multi && c.toggled[i] {
			s += theme.Body.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
