package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edugenie/edugenie/internal/ui/theme"
)

// OptionPicker is a horizontal picker for a small fixed set of values
// (difficulty level, summary language).
type OptionPicker struct {
	Label    string
	Options  []string
	Selected int
	focused  bool
}

// NewOptionPicker creates a picker over the given options.
func NewOptionPicker(label string, options []string) OptionPicker {
	return OptionPicker{
		Label:   label,
		Options: options,
	}
}

// Focus gives keyboard focus to the picker.
func (p *OptionPicker) Focus() { p.focused = true }

// Blur removes keyboard focus.
func (p *OptionPicker) Blur() { p.focused = false }

// Focused reports whether the picker has keyboard focus.
func (p OptionPicker) Focused() bool { return p.focused }

// Value returns the selected option.
func (p OptionPicker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// Update handles left/right navigation while focused.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// View renders the picker as a row of options.
func (p OptionPicker) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if p.focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	parts := make([]string, 0, len(p.Options))
	for i, opt := range p.Options {
		if i == p.Selected {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("["+opt+"]"))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(" "+opt+" "))
		}
	}

	return labelStyle.Render(p.Label) + "\n" + strings.Join(parts, " ")
}
