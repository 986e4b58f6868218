package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pictor/internal/session"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

var (
	barStyle     = lipgloss.NewStyle().Faint(true)
	messageStyle = lipgloss.NewStyle().Bold(true)
)

// View composes a concise status line: file, position in folder, zoom,
// dimensions, size, and the current message if any.
func (StatusBar) View(st session.Status, width int) string {
	parts := []string{}
	if st.FileName != "" {
		parts = append(parts, st.FileName)
	}
	if st.Position != "" {
		parts = append(parts, st.Position)
	}
	parts = append(parts, st.Zoom)
	if st.Dimensions != "" {
		parts = append(parts, st.Dimensions)
	}
	if st.FileSize != "" {
		parts = append(parts, st.FileSize)
	}
	line := barStyle.Render(strings.Join(parts, "  |  "))
	if st.Message != "" {
		line += "  " + messageStyle.Render(st.Message)
	}
	if width > 0 {
		line = lipgloss.NewStyle().Width(width).Render(line)
	}
	return line
}
