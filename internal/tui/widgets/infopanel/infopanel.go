package infopanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pictor/internal/document"
)

type InfoPanel struct{}

func NewInfoPanel() InfoPanel { return InfoPanel{} }

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	border     = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1)
)

// View lists the active document's metadata, one field per line.
func (InfoPanel) View(meta document.Metadata, width int) string {
	rows := []struct {
		label, value string
	}{
		{"File", meta.FileName},
		{"Format", meta.Format},
		{"Resolution", meta.ResolutionDisplay()},
		{"Size", meta.FileSizeDisplay()},
		{"Color", meta.Color},
	}
	if meta.PageCount > 0 {
		rows = append(rows, struct{ label, value string }{
			"Pages", fmt.Sprintf("%d", meta.PageCount),
		})
	}
	if meta.Camera != "" {
		rows = append(rows, struct{ label, value string }{"Camera", meta.Camera})
	}
	if meta.Captured != "" {
		rows = append(rows, struct{ label, value string }{"Captured", meta.Captured})
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Info") + "\n")
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		b.WriteString(labelStyle.Render(r.label+": ") + r.value + "\n")
	}
	return border.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}
