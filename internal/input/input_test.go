package input

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pictor/internal/geom"
	"pictor/internal/viewport"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeymapCommands(t *testing.T) {
	k := DefaultKeymap()
	cases := []struct {
		msg  tea.KeyMsg
		want Command
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, CmdPreviousDocument},
		{tea.KeyMsg{Type: tea.KeyRight}, CmdNextDocument},
		{tea.KeyMsg{Type: tea.KeyCtrlLeft}, CmdPanLeft},
		{tea.KeyMsg{Type: tea.KeyCtrlRight}, CmdPanRight},
		{tea.KeyMsg{Type: tea.KeyCtrlUp}, CmdPanUp},
		{tea.KeyMsg{Type: tea.KeyCtrlDown}, CmdPanDown},
		{runeKey('r'), CmdRotateCW},
		{runeKey('R'), CmdRotateCCW},
		{runeKey('h'), CmdFlipHorizontal},
		{runeKey('v'), CmdFlipVertical},
		{runeKey('+'), CmdZoomIn},
		{runeKey('='), CmdZoomIn},
		{runeKey('-'), CmdZoomOut},
		{runeKey('1'), CmdZoomReset},
		{runeKey('f'), CmdToggleFit},
		{runeKey('0'), CmdPanReset},
		{runeKey('c'), CmdToggleCropMode},
		{runeKey('s'), CmdToggleScaleMode},
		{runeKey('i'), CmdToggleInfo},
		{runeKey('n'), CmdToggleNav},
		{runeKey('y'), CmdCopyPath},
		{runeKey('q'), CmdQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, CmdQuit},
	}
	for _, tc := range cases {
		if got := k.CommandFor(tc.msg); got != tc.want {
			t.Errorf("CommandFor(%q) = %v, want %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestKeymapUnboundKey(t *testing.T) {
	k := DefaultKeymap()
	if got := k.CommandFor(runeKey('z')); got != CmdNone {
		t.Fatalf("CommandFor(z) = %v, want CmdNone", got)
	}
}

func zoomedState() viewport.State {
	s := viewport.New()
	s = s.SetViewportSize(geom.Size{W: 800, H: 600})
	s = s.SetDocumentSize(geom.Size{W: 1600, H: 1200})
	return s.SetZoom(2)
}

func TestDragPansAgainstCursor(t *testing.T) {
	s := zoomedState()
	var p Pointer
	p.Press(geom.Vec{X: 400, Y: 300})
	s = p.Move(s, geom.Vec{X: 440, Y: 280})
	p.Release()

	// 40 px right at zoom 2 is 20 document px, offset moves left.
	if got := s.Pan.X; math.Abs(got-(-20)) > 1e-9 {
		t.Errorf("Pan.X = %v, want -20", got)
	}
	if got := s.Pan.Y; math.Abs(got-10) > 1e-9 {
		t.Errorf("Pan.Y = %v, want 10", got)
	}
}

func TestDragAccumulatesAcrossMoves(t *testing.T) {
	s := zoomedState()
	var p Pointer
	p.Press(geom.Vec{X: 100, Y: 100})
	s = p.Move(s, geom.Vec{X: 110, Y: 100})
	s = p.Move(s, geom.Vec{X: 130, Y: 100})
	if got := s.Pan.X; math.Abs(got-(-15)) > 1e-9 {
		t.Errorf("Pan.X = %v, want -15", got)
	}
}

func TestMoveWithoutPressIsNoOp(t *testing.T) {
	s := zoomedState()
	var p Pointer
	got := p.Move(s, geom.Vec{X: 500, Y: 500})
	if got.Pan != s.Pan {
		t.Fatalf("Pan changed without an active drag: %+v", got.Pan)
	}
}

func TestReleaseEndsDrag(t *testing.T) {
	s := zoomedState()
	var p Pointer
	p.Press(geom.Vec{X: 10, Y: 10})
	p.Release()
	if p.Dragging() {
		t.Fatal("Dragging() = true after Release")
	}
	got := p.Move(s, geom.Vec{X: 50, Y: 50})
	if got.Pan != s.Pan {
		t.Fatal("Move after Release changed the pan")
	}
}

func TestWheelZoomsAroundCursor(t *testing.T) {
	s := zoomedState()
	pos := geom.Vec{X: 600, Y: 200}

	before := s.EffectiveZoom()
	s = Wheel(s, pos, 1)
	if got := s.EffectiveZoom(); math.Abs(got-before*viewport.ZoomStep) > 1e-9 {
		t.Errorf("zoom = %v, want %v", got, before*viewport.ZoomStep)
	}

	// The document point under the cursor stays under the cursor.
	anchor := geom.Vec{X: pos.X - 400, Y: pos.Y - 300}
	wantDoc := geom.Vec{
		X: anchor.X/before + 0, // pan was zero before the wheel
		Y: anchor.Y/before + 0,
	}
	gotDoc := geom.Vec{
		X: anchor.X/s.EffectiveZoom() + s.Pan.X,
		Y: anchor.Y/s.EffectiveZoom() + s.Pan.Y,
	}
	if math.Abs(gotDoc.X-wantDoc.X) > 1e-9 || math.Abs(gotDoc.Y-wantDoc.Y) > 1e-9 {
		t.Errorf("document point drifted: got %+v, want %+v", gotDoc, wantDoc)
	}
}

func TestWheelZeroLinesIsNoOp(t *testing.T) {
	s := zoomedState()
	got := Wheel(s, geom.Vec{X: 100, Y: 100}, 0)
	if got.EffectiveZoom() != s.EffectiveZoom() || got.Pan != s.Pan {
		t.Fatal("zero-line wheel changed the state")
	}
}

func TestWheelOutInvertsStep(t *testing.T) {
	s := zoomedState()
	s = Wheel(s, geom.Vec{X: 400, Y: 300}, -1)
	want := 2.0 / viewport.ZoomStep
	if got := s.EffectiveZoom(); math.Abs(got-want) > 1e-9 {
		t.Errorf("zoom = %v, want %v", got, want)
	}
}
