package document

import (
	"encoding/xml"
	"errors"
	"image"
	"os"
	"strconv"
	"strings"

	"pictor/internal/geom"
	"pictor/internal/transform"
)

// vectorDocument keeps the raw scene description plus the intrinsic size
// parsed from the root element. Rasterization is delegated to the
// renderer collaborator; the engine itself only needs the geometry.
type vectorDocument struct {
	path string
	raw  []byte
	size geom.Size
	meta Metadata
}

func openVector(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	size, err := svgSize(raw)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	meta := baseMetadata(path, "SVG", "Vector", int(size.W), int(size.H))
	return &vectorDocument{path: path, raw: raw, size: size, meta: meta}, nil
}

// svgSize extracts the intrinsic size from the root <svg> element,
// preferring explicit width/height and falling back to the viewBox.
func svgSize(raw []byte) (geom.Size, error) {
	dec := xml.NewDecoder(strings.NewReader(string(raw)))
	for {
		tok, err := dec.Token()
		if err != nil {
			return geom.Size{}, errors.New("no <svg> root element")
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return geom.Size{}, errors.New("root element is not <svg>")
		}

		var width, height float64
		var viewBox string
		for _, a := range start.Attr {
			switch a.Name.Local {
			case "width":
				width = parseSVGLength(a.Value)
			case "height":
				height = parseSVGLength(a.Value)
			case "viewBox":
				viewBox = a.Value
			}
		}
		if width > 0 && height > 0 {
			return geom.Size{W: width, H: height}, nil
		}
		if viewBox != "" {
			parts := strings.Fields(viewBox)
			if len(parts) == 4 {
				w, errW := strconv.ParseFloat(parts[2], 64)
				h, errH := strconv.ParseFloat(parts[3], 64)
				if errW == nil && errH == nil && w > 0 && h > 0 {
					return geom.Size{W: w, H: h}, nil
				}
			}
		}
		return geom.Size{}, errors.New("svg has no usable size")
	}
}

// parseSVGLength converts a CSS-style length to pixels at 96 dpi.
// Percentages and unparsable values yield 0 so the viewBox wins.
func parseSVGLength(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, "%") {
		return 0
	}
	unit := 1.0
	switch {
	case strings.HasSuffix(s, "px"):
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "pt"):
		s, unit = s[:len(s)-2], 96.0/72.0
	case strings.HasSuffix(s, "mm"):
		s, unit = s[:len(s)-2], 96.0/25.4
	case strings.HasSuffix(s, "cm"):
		s, unit = s[:len(s)-2], 96.0/2.54
	case strings.HasSuffix(s, "in"):
		s, unit = s[:len(s)-2], 96.0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v * unit
}

func (d *vectorDocument) Kind() Kind { return KindVector }

func (d *vectorDocument) IntrinsicSize() geom.Size { return d.size }

// Vector documents do not transform at this stage.
func (d *vectorDocument) SupportsTransform() bool { return false }

func (d *vectorDocument) Metadata() Metadata { return d.meta }

// Render returns a blank surface at the intrinsic size.
// TODO: delegate to an external SVG rasterizer collaborator.
func (d *vectorDocument) Render(transform.State) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, int(d.size.W), int(d.size.H))), nil
}

func (d *vectorDocument) Close() error {
	d.raw = nil
	return nil
}
