package input

import (
	"pictor/internal/geom"
	"pictor/internal/viewport"
)

// Pointer tracks an in-progress drag. Press grabs the document at the
// cursor, Move converts screen displacement into a pan, Release lets
// go. Positions are screen pixels in viewport coordinates.
type Pointer struct {
	dragging bool
	last     geom.Vec
}

// Press begins a drag at pos.
func (p *Pointer) Press(pos geom.Vec) {
	p.dragging = true
	p.last = pos
}

// Move pans the viewport by the displacement since the previous
// event. Dragging right brings content from the left into view, so
// the offset moves opposite to the cursor. No-op when no drag is
// active.
func (p *Pointer) Move(s viewport.State, pos geom.Vec) viewport.State {
	if !p.dragging {
		return s
	}
	delta := geom.Vec{X: pos.X - p.last.X, Y: pos.Y - p.last.Y}
	p.last = pos
	return s.PanBy(s.ScreenToDocDelta(delta).Scale(-1))
}

// Release ends the drag.
func (p *Pointer) Release() {
	p.dragging = false
}

// Dragging reports whether a drag is in progress.
func (p *Pointer) Dragging() bool {
	return p.dragging
}

// Wheel applies a scroll-wheel zoom anchored at pos, given in screen
// pixels relative to the viewport's top-left corner. Positive lines
// zoom in.
func Wheel(s viewport.State, pos geom.Vec, lines float64) viewport.State {
	if lines == 0 {
		return s
	}
	factor := viewport.ZoomStep
	if lines < 0 {
		factor = 1 / viewport.ZoomStep
	}
	anchor := geom.Vec{
		X: pos.X - s.Viewport.W/2,
		Y: pos.Y - s.Viewport.H/2,
	}
	return s.ZoomAt(anchor, factor)
}
