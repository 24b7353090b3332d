package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/edugenie/edugenie/internal/ui/layout"
)

// Screen is one page of the application. The router keeps a stack of
// screens and forwards messages to the one on top.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update reacts to a message and returns the screen to keep showing.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body. Width and height exclude the chrome drawn
	// around it.
	View(width, height int) string

	// Title is shown in the header while the screen is on top.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens that do not implement it get the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
