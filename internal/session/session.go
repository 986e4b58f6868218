// Package session owns the viewer's document-facing state: the single
// resident document, its transform, the viewport, and the directory
// navigation index. All commands funnel through Apply so keyboard and
// pointer input cannot produce divergent states.
package session

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"pictor/internal/document"
	"pictor/internal/geom"
	"pictor/internal/input"
	"pictor/internal/navigate"
	"pictor/internal/scanner"
	"pictor/internal/transform"
	"pictor/internal/viewport"
)

// DecodeRequest asks the caller to decode a document off the update
// loop and hand the result back via Deliver with the same generation.
type DecodeRequest struct {
	Gen  uint64
	Path string
}

// Session is the viewer's central state. Not safe for concurrent use;
// it is driven from a single update loop.
type Session struct {
	doc  document.Document
	path string

	Transform transform.State
	Viewport  viewport.State
	Nav       navigate.Index
	Pointer   input.Pointer

	PanStep float64

	InfoVisible bool
	NavVisible  bool
	CropMode    bool
	ScaleMode   bool

	gen     uint64
	loading bool
	lastErr error

	// copyText is swapped out in tests.
	copyText func(string) error
}

// Options seeds a new session from persisted preferences.
type Options struct {
	PanStep     float64
	InfoVisible bool
	NavVisible  bool
	Wrap        bool
}

func New(opts Options) *Session {
	s := &Session{
		Viewport:    viewport.New(),
		PanStep:     opts.PanStep,
		InfoVisible: opts.InfoVisible,
		NavVisible:  opts.NavVisible,
		copyText:    clipboard.WriteAll,
	}
	if s.PanStep <= 0 {
		s.PanStep = input.DefaultPanStep
	}
	s.Nav.Wrap = opts.Wrap
	return s
}

// Open scans the target's directory, points the navigation index at
// the target and returns the decode request for it. The target may be
// a directory, in which case its first supported entry is opened.
func (s *Session) Open(target string) (*DecodeRequest, error) {
	fi, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", target, err)
	}

	var entries []string
	if fi.IsDir() {
		entries, err = scanner.CollectSupported(target)
		if err == nil && len(entries) == 0 {
			err = errors.New("no supported files")
		}
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", target, err)
		}
		target = entries[0]
	} else {
		entries, err = scanner.Siblings(target)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", target, err)
		}
	}
	s.Nav.Rebuild(entries, target)
	return s.request(target), nil
}

func (s *Session) request(path string) *DecodeRequest {
	s.gen++
	s.loading = true
	return &DecodeRequest{Gen: s.gen, Path: path}
}

// Deliver installs a decode result. Results from superseded requests
// are discarded. A failed decode keeps the previous document on
// screen and records the error for the status line.
func (s *Session) Deliver(gen uint64, doc document.Document, err error) {
	if gen != s.gen {
		if doc != nil {
			doc.Close()
		}
		return
	}
	s.loading = false
	if err != nil {
		s.lastErr = err
		return
	}
	if s.doc != nil {
		s.doc.Close()
	}
	s.doc = doc
	s.path = doc.Metadata().FilePath
	s.lastErr = nil
	s.Transform = transform.State{}
	s.Viewport = s.Viewport.SetDocumentSize(doc.IntrinsicSize())
	s.Viewport = s.Viewport.FitReset()
}

// Apply routes a command. A non-nil request means the caller must
// decode another document. Boundary hits and unsupported transforms
// come back as errors with the state unchanged.
func (s *Session) Apply(cmd input.Command) (*DecodeRequest, error) {
	switch cmd {
	case input.CmdPreviousDocument:
		path, err := s.Nav.Previous()
		if err != nil {
			return nil, err
		}
		return s.request(path), nil
	case input.CmdNextDocument:
		path, err := s.Nav.Next()
		if err != nil {
			return nil, err
		}
		return s.request(path), nil

	case input.CmdRotateCW:
		return nil, s.applyTransform(s.Transform.RotateCW())
	case input.CmdRotateCCW:
		return nil, s.applyTransform(s.Transform.RotateCCW())
	case input.CmdFlipHorizontal:
		return nil, s.applyTransform(s.Transform.FlipHorizontal())
	case input.CmdFlipVertical:
		return nil, s.applyTransform(s.Transform.FlipVertical())

	case input.CmdZoomIn:
		s.Viewport = s.Viewport.ZoomIn()
	case input.CmdZoomOut:
		s.Viewport = s.Viewport.ZoomOut()
	case input.CmdZoomReset:
		s.Viewport = s.Viewport.ZoomReset()
	case input.CmdToggleFit:
		s.Viewport = s.Viewport.ToggleFit()

	case input.CmdPanLeft:
		s.panScreen(geom.Vec{X: -s.PanStep})
	case input.CmdPanRight:
		s.panScreen(geom.Vec{X: s.PanStep})
	case input.CmdPanUp:
		s.panScreen(geom.Vec{Y: -s.PanStep})
	case input.CmdPanDown:
		s.panScreen(geom.Vec{Y: s.PanStep})
	case input.CmdPanReset:
		s.Viewport = s.Viewport.ResetPan()

	case input.CmdToggleCropMode:
		s.CropMode = !s.CropMode
		s.ScaleMode = false
	case input.CmdToggleScaleMode:
		s.ScaleMode = !s.ScaleMode
		s.CropMode = false

	case input.CmdToggleInfo:
		s.InfoVisible = !s.InfoVisible
	case input.CmdToggleNav:
		s.NavVisible = !s.NavVisible
	case input.CmdCopyPath:
		if s.path == "" {
			return nil, errors.New("session: no document open")
		}
		return nil, s.copyText(s.path)
	}
	return nil, nil
}

func (s *Session) applyTransform(next transform.State) error {
	if s.doc == nil {
		return nil
	}
	if !s.doc.SupportsTransform() {
		return document.ErrUnsupportedTransform
	}
	s.Transform = next
	s.Viewport = s.Viewport.SetDocumentSize(
		s.Transform.EffectiveSize(s.doc.IntrinsicSize()))
	return nil
}

func (s *Session) panScreen(screen geom.Vec) {
	s.Viewport = s.Viewport.PanBy(s.Viewport.ScreenToDocDelta(screen))
}

// Resize propagates a new viewport size.
func (s *Session) Resize(size geom.Size) {
	s.Viewport = s.Viewport.SetViewportSize(size)
}

// Wheel applies an anchored scroll zoom at a screen position.
func (s *Session) Wheel(pos geom.Vec, lines float64) {
	s.Viewport = input.Wheel(s.Viewport, pos, lines)
}

// DragStart, DragMove and DragEnd map pointer gestures to panning.
func (s *Session) DragStart(pos geom.Vec) { s.Pointer.Press(pos) }

func (s *Session) DragMove(pos geom.Vec) {
	s.Viewport = s.Pointer.Move(s.Viewport, pos)
}

func (s *Session) DragEnd() { s.Pointer.Release() }

// Document returns the resident document, or nil before the first
// successful decode.
func (s *Session) Document() document.Document { return s.doc }

// Path returns the resident document's absolute path.
func (s *Session) Path() string { return s.path }

// Loading reports whether a decode is outstanding.
func (s *Session) Loading() bool { return s.loading }

// Err returns the most recent decode failure, cleared by the next
// successful decode.
func (s *Session) Err() error { return s.lastErr }

// Render produces the display surface for the resident document under
// the current transform.
func (s *Session) Render() (image.Image, error) {
	if s.doc == nil {
		return nil, errors.New("session: no document open")
	}
	return s.doc.Render(s.Transform)
}

// Close releases the resident document.
func (s *Session) Close() error {
	if s.doc == nil {
		return nil
	}
	err := s.doc.Close()
	s.doc = nil
	return err
}

// Status is the status bar's view of the session.
type Status struct {
	FileName   string
	Zoom       string
	Position   string
	Dimensions string
	FileSize   string
	Message    string
}

func (s *Session) Status() Status {
	st := Status{Zoom: zoomDisplay(s.Viewport)}
	if cur, total := s.Nav.Position(); total > 0 {
		st.Position = fmt.Sprintf("%d / %d", cur, total)
	}
	if s.doc != nil {
		meta := s.doc.Metadata()
		st.FileName = meta.FileName
		st.Dimensions = meta.ResolutionDisplay()
		st.FileSize = meta.FileSizeDisplay()
	} else if s.path != "" {
		st.FileName = filepath.Base(s.path)
	}
	switch {
	case s.loading:
		st.Message = "loading…"
	case s.lastErr != nil:
		st.Message = s.lastErr.Error()
	}
	return st
}

func zoomDisplay(v viewport.State) string {
	if v.Mode == viewport.ModeFit {
		return "Fit"
	}
	return fmt.Sprintf("%.0f%%", v.EffectiveZoom()*100)
}
