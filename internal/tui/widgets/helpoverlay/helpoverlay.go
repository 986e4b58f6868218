package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	keyStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"})
)

// Section groups bindings under a heading.
type Section struct {
	Title string
	Keys  []key.Binding
}

// View renders grouped key help from the live bindings, so the overlay
// never drifts from the keymap.
func (HelpOverlay) View(sections []Section) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Help") + "\n")
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		for _, k := range sec.Keys {
			h := k.Help()
			fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render(h.Key), h.Desc)
		}
	}
	b.WriteString("\npress any key to close\n")
	return b.String()
}
