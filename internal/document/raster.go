package document

import (
	"image"
	"image/draw"
	"os"
	"strings"

	// Raster codecs. The stdlib covers PNG/JPEG/GIF; the x/image
	// modules add BMP, TIFF and WebP.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"pictor/internal/geom"
	"pictor/internal/transform"
)

// rasterDocument holds one decoded pixel buffer. Transformed surfaces
// are derived per render call, so the transform stays lossless.
type rasterDocument struct {
	path   string
	pixels *image.RGBA
	meta   Metadata
}

func openRaster(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, &DecodeError{Path: path, Err: image.ErrFormat}
	}

	pixels := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(pixels, pixels.Bounds(), src, b.Min, draw.Src)

	meta := baseMetadata(path, strings.ToUpper(format), colorDescription(src), b.Dx(), b.Dy())
	return &rasterDocument{path: path, pixels: pixels, meta: meta}, nil
}

func colorDescription(img image.Image) string {
	switch img.(type) {
	case *image.Gray:
		return "Grayscale 8-bit"
	case *image.Gray16:
		return "Grayscale 16-bit"
	case *image.RGBA, *image.NRGBA:
		return "RGBA 8-bit"
	case *image.RGBA64, *image.NRGBA64:
		return "RGBA 16-bit"
	case *image.CMYK:
		return "CMYK 8-bit"
	case *image.Paletted:
		return "Indexed 8-bit"
	case *image.YCbCr:
		return "YCbCr 8-bit"
	default:
		return "RGBA 8-bit"
	}
}

func (d *rasterDocument) Kind() Kind { return KindRaster }

func (d *rasterDocument) IntrinsicSize() geom.Size {
	b := d.pixels.Bounds()
	return geom.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

func (d *rasterDocument) SupportsTransform() bool { return true }

func (d *rasterDocument) Metadata() Metadata { return d.meta }

// Render applies flips first, rotation second, matching the documented
// composition order of transform.State.
func (d *rasterDocument) Render(ts transform.State) (image.Image, error) {
	out := d.pixels
	if ts.FlipH {
		out = flipH(out)
	}
	if ts.FlipV {
		out = flipV(out)
	}
	switch ts.Rotation {
	case transform.Deg90:
		out = rotate90(out)
	case transform.Deg180:
		out = rotate180(out)
	case transform.Deg270:
		out = rotate270(out)
	}
	return out, nil
}

func (d *rasterDocument) Close() error {
	d.pixels = nil
	return nil
}

func flipH(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(w-1-x, y, src.RGBAAt(x, y))
		}
	}
	return dst
}

func flipV(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(x, h-1-y, src.RGBAAt(x, y))
		}
	}
	return dst
}

func rotate90(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(h-1-y, x, src.RGBAAt(x, y))
		}
	}
	return dst
}

func rotate180(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(w-1-x, h-1-y, src.RGBAAt(x, y))
		}
	}
	return dst
}

func rotate270(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(y, w-1-x, src.RGBAAt(x, y))
		}
	}
	return dst
}
