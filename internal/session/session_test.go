package session

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"pictor/internal/document"
	"pictor/internal/geom"
	"pictor/internal/input"
	"pictor/internal/navigate"
	"pictor/internal/transform"
	"pictor/internal/viewport"
)

type fakeDoc struct {
	size       geom.Size
	transforms bool
	closed     bool
	meta       document.Metadata
}

func (d *fakeDoc) Kind() document.Kind          { return document.KindRaster }
func (d *fakeDoc) IntrinsicSize() geom.Size     { return d.size }
func (d *fakeDoc) SupportsTransform() bool      { return d.transforms }
func (d *fakeDoc) Metadata() document.Metadata  { return d.meta }
func (d *fakeDoc) Close() error                 { d.closed = true; return nil }
func (d *fakeDoc) Render(transform.State) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, int(d.size.W), int(d.size.H))), nil
}

func newFake(w, h float64, transforms bool) *fakeDoc {
	return &fakeDoc{
		size:       geom.Size{W: w, H: h},
		transforms: transforms,
		meta: document.Metadata{
			FileName: "fake.png",
			FilePath: "/tmp/fake.png",
			Width:    int(w),
			Height:   int(h),
		},
	}
}

func newSession() *Session {
	s := New(Options{})
	s.Resize(geom.Size{W: 800, H: 600})
	return s
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestOpenScansSiblings(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		writePNG(t, filepath.Join(dir, name))
	}
	s := newSession()

	req, err := s.Open(filepath.Join(dir, "b.png"))
	if err != nil {
		t.Fatal(err)
	}
	if req.Path != filepath.Join(dir, "b.png") {
		t.Errorf("request path = %s", req.Path)
	}
	if cur, total := s.Nav.Position(); cur != 2 || total != 3 {
		t.Errorf("position = %d/%d, want 2/3", cur, total)
	}
	if !s.Loading() {
		t.Error("Loading() = false after Open")
	}
}

func TestOpenDirectoryPicksFirstEntry(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "z.png"))
	writePNG(t, filepath.Join(dir, "a.png"))
	s := newSession()

	req, err := s.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "a.png"); req.Path != want {
		t.Errorf("request path = %s, want %s", req.Path, want)
	}
}

func TestOpenEmptyDirectory(t *testing.T) {
	s := newSession()
	if _, err := s.Open(t.TempDir()); err == nil {
		t.Fatal("Open on an empty directory succeeded")
	}
}

func TestDeliverInstallsDocument(t *testing.T) {
	s := newSession()
	s.Transform = transform.State{FlipH: true}
	doc := newFake(1600, 1200, true)

	s.Deliver(s.request("/tmp/fake.png").Gen, doc, nil)

	if s.Document() != document.Document(doc) {
		t.Fatal("document not installed")
	}
	if !s.Transform.IsIdentity() {
		t.Error("transform not reset for the new document")
	}
	if s.Viewport.Mode != viewport.ModeFit {
		t.Error("viewport not reset to fit")
	}
	if got := s.Viewport.EffectiveZoom(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("fit zoom = %v, want 0.5", got)
	}
	if s.Loading() {
		t.Error("Loading() = true after Deliver")
	}
}

func TestDeliverStaleResultDiscarded(t *testing.T) {
	s := newSession()
	current := newFake(100, 100, true)
	s.Deliver(s.request("a").Gen, current, nil)

	stale := newFake(50, 50, true)
	oldGen := s.request("b").Gen
	s.request("c")

	s.Deliver(oldGen, stale, nil)

	if s.Document() != document.Document(current) {
		t.Error("stale result replaced the resident document")
	}
	if !stale.closed {
		t.Error("stale document was not closed")
	}
}

func TestDeliverFailureKeepsPrevious(t *testing.T) {
	s := newSession()
	doc := newFake(100, 100, true)
	s.Deliver(s.request("a").Gen, doc, nil)

	decodeErr := errors.New("truncated file")
	s.Deliver(s.request("b").Gen, nil, decodeErr)

	if s.Document() != document.Document(doc) {
		t.Error("failed decode evicted the previous document")
	}
	if !errors.Is(s.Err(), decodeErr) {
		t.Errorf("Err() = %v, want %v", s.Err(), decodeErr)
	}

	next := newFake(60, 60, true)
	s.Deliver(s.request("c").Gen, next, nil)
	if s.Err() != nil {
		t.Errorf("Err() = %v after a successful decode", s.Err())
	}
	if !doc.closed {
		t.Error("replaced document was not closed")
	}
}

func TestRotateUpdatesViewportDocSize(t *testing.T) {
	s := newSession()
	s.Deliver(s.request("a").Gen, newFake(1600, 300, true), nil)

	if _, err := s.Apply(input.CmdRotateCW); err != nil {
		t.Fatal(err)
	}
	want := geom.Size{W: 300, H: 1600}
	if s.Viewport.Doc != want {
		t.Errorf("viewport doc size = %+v, want %+v", s.Viewport.Doc, want)
	}
}

func TestTransformRejectedLeavesStateUnchanged(t *testing.T) {
	s := newSession()
	s.Deliver(s.request("a").Gen, newFake(400, 300, false), nil)

	before := s.Transform
	_, err := s.Apply(input.CmdFlipHorizontal)
	if !errors.Is(err, document.ErrUnsupportedTransform) {
		t.Fatalf("err = %v, want ErrUnsupportedTransform", err)
	}
	if s.Transform != before {
		t.Error("transform changed despite the rejection")
	}
}

func TestTransformWithoutDocumentIsNoOp(t *testing.T) {
	s := newSession()
	if _, err := s.Apply(input.CmdRotateCW); err != nil {
		t.Fatalf("err = %v", err)
	}
	if !s.Transform.IsIdentity() {
		t.Error("transform changed with no document open")
	}
}

func TestKeyboardPanUsesScreenStep(t *testing.T) {
	s := newSession()
	s.Deliver(s.request("a").Gen, newFake(1600, 1200, true), nil)
	s.Viewport = s.Viewport.SetZoom(2)

	if _, err := s.Apply(input.CmdPanRight); err != nil {
		t.Fatal(err)
	}
	// 50 screen px at zoom 2 is 25 document px.
	if got := s.Viewport.Pan.X; math.Abs(got-25) > 1e-9 {
		t.Errorf("Pan.X = %v, want 25", got)
	}
}

func TestNavigationBoundaryError(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "only.png"))
	s := newSession()
	if _, err := s.Open(filepath.Join(dir, "only.png")); err != nil {
		t.Fatal(err)
	}

	req, err := s.Apply(input.CmdNextDocument)
	if req != nil {
		t.Error("boundary hit still produced a decode request")
	}
	if !errors.Is(err, navigate.ErrAtBoundary) {
		t.Errorf("err = %v, want ErrAtBoundary", err)
	}
}

func TestCopyPath(t *testing.T) {
	s := newSession()
	var copied string
	s.copyText = func(text string) error {
		copied = text
		return nil
	}

	if _, err := s.Apply(input.CmdCopyPath); err == nil {
		t.Error("CopyPath with no document succeeded")
	}

	s.Deliver(s.request("a").Gen, newFake(10, 10, true), nil)
	if _, err := s.Apply(input.CmdCopyPath); err != nil {
		t.Fatal(err)
	}
	if copied != "/tmp/fake.png" {
		t.Errorf("copied %q", copied)
	}
}

func TestToolModesAreExclusive(t *testing.T) {
	s := newSession()
	s.Apply(input.CmdToggleCropMode)
	s.Apply(input.CmdToggleScaleMode)
	if s.CropMode {
		t.Error("crop mode still set after entering scale mode")
	}
	if !s.ScaleMode {
		t.Error("scale mode not set")
	}
}

func TestStatusDisplay(t *testing.T) {
	s := newSession()
	s.Deliver(s.request("a").Gen, newFake(1600, 1200, true), nil)

	if got := s.Status().Zoom; got != "Fit" {
		t.Errorf("zoom display = %q, want Fit", got)
	}
	s.Viewport = s.Viewport.SetZoom(1.5)
	if got := s.Status().Zoom; got != "150%" {
		t.Errorf("zoom display = %q, want 150%%", got)
	}
	if got := s.Status().FileName; got != "fake.png" {
		t.Errorf("file name = %q", got)
	}
}
