// Package document abstracts the file formats the viewer can display
// behind one contract: every variant reports an intrinsic size, whether
// it accepts geometric transforms, a metadata snapshot, and a lazily
// produced render surface. Callers never branch on the concrete format.
package document

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"pictor/internal/geom"
	"pictor/internal/transform"
)

// Kind identifies a document variant. The set is closed: adding a kind
// means touching every switch in this package, which is intentional.
type Kind int

const (
	KindRaster Kind = iota
	KindVector
	KindPaginated
)

func (k Kind) String() string {
	switch k {
	case KindRaster:
		return "Raster"
	case KindVector:
		return "Vector"
	case KindPaginated:
		return "Paginated"
	default:
		return "Unknown"
	}
}

// Document is the shared contract for all displayable formats.
type Document interface {
	// Kind reports the variant.
	Kind() Kind

	// IntrinsicSize is the native size, before any transform. It is
	// never zero for a successfully opened document.
	IntrinsicSize() geom.Size

	// SupportsTransform reports whether rotate/flip requests are
	// accepted. At this stage only raster documents transform.
	SupportsTransform() bool

	// Metadata returns a snapshot describing the document.
	Metadata() Metadata

	// Render produces the display surface with the given transform
	// applied. Produced lazily; only the active document is rendered.
	Render(ts transform.State) (image.Image, error)

	// Close releases any resources held by the variant.
	Close() error
}

// ErrUnsupportedTransform is returned when a rotate/flip is requested on
// a variant that does not transform. The caller's visible transform
// state must be left unchanged.
var ErrUnsupportedTransform = errors.New("document: transforms not supported for this format")

// DecodeError reports a path that could not be opened or decoded. The
// viewer keeps the previously active document when it sees one.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var rasterExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// DetectKind reports the document kind for a path, judged by extension.
func DetectKind(path string) (Kind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".svg":
		return KindVector, true
	case ext == ".pdf":
		return KindPaginated, true
	case rasterExts[ext]:
		return KindRaster, true
	}
	return 0, false
}

// Supported reports whether the path points at a displayable format.
func Supported(path string) bool {
	_, ok := DetectKind(path)
	return ok
}

// Open decodes the document at path, dispatching on the detected kind.
// Failures are reported as *DecodeError.
func Open(path string) (Document, error) {
	kind, ok := DetectKind(path)
	if !ok {
		return nil, &DecodeError{Path: path, Err: errors.New("unsupported document type")}
	}
	switch kind {
	case KindVector:
		return openVector(path)
	case KindPaginated:
		return openPaginated(path)
	default:
		return openRaster(path)
	}
}
