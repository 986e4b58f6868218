package filelist

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type FileList struct{}

func NewFileList() FileList { return FileList{} }

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	border = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		PaddingRight(1)
)

// View lists the folder entries with the active one highlighted,
// keeping the selection within the visible window.
func (FileList) View(entries []string, current string, width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Files") + "\n")

	sel := -1
	for i, e := range entries {
		if e == current {
			sel = i
		}
	}
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if sel >= visible {
		start = sel - visible + 1
	}
	end := start + visible
	if end > len(entries) {
		end = len(entries)
	}

	for i := start; i < end; i++ {
		name := filepath.Base(entries[i])
		if i == sel {
			b.WriteString(selStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteByte('\n')
	}
	return border.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}
