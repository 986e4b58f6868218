// Package viewport owns the display geometry of the active document:
// zoom factor, pan offset, and view mode. All operations are pure
// value-to-value reducers; the TUI layer holds the single owned copy.
//
// The pan offset lives in document pixels and is center-relative: (0,0)
// means the document is centered in the viewport, positive X means the
// viewport looks at the right part of the document. Screen displacement
// is pan multiplied by the effective zoom, which makes plain zoom
// changes center-anchored without any pan correction.
package viewport

import "pictor/internal/geom"

// Mode selects how the zoom factor is derived.
type Mode int

const (
	// ModeFit zooms so the document exactly fits the viewport on at
	// least one axis without exceeding it on the other.
	ModeFit Mode = iota
	// ModeActual is one document pixel per display pixel.
	ModeActual
	// ModeCustom uses an explicitly set factor.
	ModeCustom
)

// Zoom limits and the multiplicative step used by ZoomIn/ZoomOut.
const (
	MinZoom  = 0.10
	MaxZoom  = 20.0
	ZoomStep = 1.1
)

// State is the viewport geometry. The zero value is Fit mode with
// nothing laid out; all geometry is deferred until both a viewport and
// a document size are known.
type State struct {
	Mode Mode

	// Zoom is the explicit factor for ModeCustom (ModeActual implies
	// 1.0, ModeFit computes it from the sizes below).
	Zoom float64

	// LastCustom remembers the most recent explicit factor so leaving
	// Fit mode can restore it.
	LastCustom float64

	// Pan is the center-relative offset in document pixels.
	Pan geom.Vec

	// Viewport is the display surface size.
	Viewport geom.Size

	// Doc is the document's effective (transformed) size.
	Doc geom.Size
}

// New returns the initial state for a freshly opened document.
func New() State { return State{Mode: ModeFit} }

// laidOut reports whether geometry can be computed at all.
func (s State) laidOut() bool { return !s.Viewport.IsZero() && !s.Doc.IsZero() }

// FitZoom returns the fit-to-window factor, clamped to the zoom range,
// or 0 when nothing is laid out yet.
func (s State) FitZoom() float64 {
	if !s.laidOut() {
		return 0
	}
	z := min(s.Viewport.W/s.Doc.W, s.Viewport.H/s.Doc.H)
	return geom.Clamp(z, MinZoom, MaxZoom)
}

// EffectiveZoom returns the factor currently in force, or 0 when
// geometry is deferred.
func (s State) EffectiveZoom() float64 {
	switch s.Mode {
	case ModeActual:
		return 1
	case ModeCustom:
		return s.Zoom
	default:
		return s.FitZoom()
	}
}

// ScaledSize returns the document size at the effective zoom.
func (s State) ScaledSize() geom.Size {
	return s.Doc.Scale(s.EffectiveZoom())
}

// SetViewportSize records a new display surface size and reclamps the
// pan. Non-positive sizes keep geometry deferred.
func (s State) SetViewportSize(size geom.Size) State {
	if size.IsZero() {
		s.Viewport = geom.Size{}
		return s
	}
	s.Viewport = size
	return s.clampPan()
}

// SetDocumentSize installs the document's effective size. Called on
// every document switch and after every transform, since rotation may
// swap the axes; the pan is reclamped against the new geometry.
func (s State) SetDocumentSize(size geom.Size) State {
	s.Doc = size
	return s.clampPan()
}

// SetZoom switches to an explicit factor, clamped to the zoom range.
// The pan offset is document-space and therefore center-anchored.
func (s State) SetZoom(factor float64) State {
	s.Zoom = geom.Clamp(factor, MinZoom, MaxZoom)
	s.LastCustom = s.Zoom
	s.Mode = ModeCustom
	return s.clampPan()
}

// ZoomIn multiplies the effective zoom by ZoomStep.
func (s State) ZoomIn() State { return s.stepZoom(ZoomStep) }

// ZoomOut divides the effective zoom by ZoomStep.
func (s State) ZoomOut() State { return s.stepZoom(1 / ZoomStep) }

func (s State) stepZoom(factor float64) State {
	cur := s.EffectiveZoom()
	if cur == 0 {
		return s
	}
	return s.SetZoom(cur * factor)
}

// ZoomAt changes the zoom while keeping the document point under the
// given anchor visually fixed. The anchor is in screen pixels relative
// to the viewport center. factor > 1 zooms in.
func (s State) ZoomAt(anchor geom.Vec, factor float64) State {
	old := s.EffectiveZoom()
	if old == 0 {
		return s
	}
	next := s.SetZoom(old * factor)
	nz := next.EffectiveZoom()
	k := nz / old
	// Keeping screenPoint = (doc - pan)*zoom fixed for the anchor
	// requires shifting the pan by anchor*(k-1)/newZoom.
	next.Pan = s.Pan.Add(anchor.Scale((k - 1) / nz))
	return next.clampPan()
}

// ZoomReset returns to Actual Size and recenters.
func (s State) ZoomReset() State {
	s.Mode = ModeActual
	s.Zoom = 1
	return s.ResetPan()
}

// FitReset returns to Fit mode with a centered pan, as when a new
// document arrives. The last explicit factor is preserved for
// ToggleFit.
func (s State) FitReset() State {
	s.Mode = ModeFit
	return s.ResetPan()
}

// ToggleFit switches into Fit mode, discarding the explicit factor; a
// second toggle restores the last explicit factor (1.0 when none was
// ever set).
func (s State) ToggleFit() State {
	if s.Mode == ModeFit {
		restore := s.LastCustom
		if restore == 0 {
			restore = 1
		}
		return s.SetZoom(restore)
	}
	s.Mode = ModeFit
	return s.ResetPan()
}

// PanBy moves the view by delta document pixels and reclamps.
func (s State) PanBy(delta geom.Vec) State {
	s.Pan = s.Pan.Add(delta)
	return s.clampPan()
}

// ResetPan recenters the document.
func (s State) ResetPan() State {
	s.Pan = geom.Vec{}
	return s
}

// ScreenToDocDelta converts a screen-space displacement to document
// pixels at the current zoom. Zero when geometry is deferred.
func (s State) ScreenToDocDelta(screen geom.Vec) geom.Vec {
	z := s.EffectiveZoom()
	if z == 0 {
		return geom.Vec{}
	}
	return screen.Scale(1 / z)
}

// clampPan enforces the clamp policy: on an axis where the scaled
// document is smaller than the viewport the offset is pinned to the
// centering value, otherwise it may not expose space beyond the
// document's edge. A deferred layout leaves the pan untouched.
func (s State) clampPan() State {
	z := s.EffectiveZoom()
	if z == 0 {
		return s
	}
	maxX := (s.Doc.W*z - s.Viewport.W) / 2 / z
	maxY := (s.Doc.H*z - s.Viewport.H) / 2 / z
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	s.Pan.X = geom.Clamp(s.Pan.X, -maxX, maxX)
	s.Pan.Y = geom.Clamp(s.Pan.Y, -maxY, maxY)
	return s
}
