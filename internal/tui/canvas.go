package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pictor/internal/viewport"
)

// The canvas draws two document rows per terminal row with the upper
// half block, so a cell grid of cols x rows is a cols x 2*rows pixel
// viewport.

const pixelsPerCell = 2

// canvasViewport converts a cell area to the pixel size the viewport
// state works in.
func canvasViewport(cols, rows int) (w, h float64) {
	return float64(cols), float64(rows * pixelsPerCell)
}

// renderCanvas composites the frame through the viewport: each screen
// pixel is mapped back to a document pixel at the current pan/zoom and
// sampled nearest-neighbor. Pixels outside the document stay blank.
func renderCanvas(frame image.Image, vp viewport.State, cols, rows int) string {
	z := vp.EffectiveZoom()
	if frame == nil || z == 0 || cols <= 0 || rows <= 0 {
		return blankCanvas(cols, rows)
	}
	bounds := frame.Bounds()
	cx, cy := vp.Viewport.W/2, vp.Viewport.H/2

	sample := func(sx, sy float64) (r, g, b uint8, ok bool) {
		// Screen to document: q = pan + (s - center) / zoom.
		qx := vp.Pan.X + (sx-cx)/z + vp.Doc.W/2
		qy := vp.Pan.Y + (sy-cy)/z + vp.Doc.H/2
		px := bounds.Min.X + int(qx)
		py := bounds.Min.Y + int(qy)
		if qx < 0 || qy < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
			return 0, 0, 0, false
		}
		cr, cg, cb, _ := frame.At(px, py).RGBA()
		return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), true
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			sx := float64(col) + 0.5
			syTop := float64(row*pixelsPerCell) + 0.5
			syBot := syTop + 1

			tr, tg, tb, topOK := sample(sx, syTop)
			br, bg, bb, botOK := sample(sx, syBot)
			switch {
			case topOK && botOK:
				st := lipgloss.NewStyle().
					Foreground(hexColor(tr, tg, tb)).
					Background(hexColor(br, bg, bb))
				sb.WriteString(st.Render("▀"))
			case topOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(hexColor(tr, tg, tb)).Render("▀"))
			case botOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(hexColor(br, bg, bb)).Render("▄"))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func blankCanvas(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	line := strings.Repeat(" ", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func hexColor(r, g, b uint8) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
