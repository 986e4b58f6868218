package document

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"seehuhn.de/go/pdf"

	"pictor/internal/geom"
	"pictor/internal/transform"
)

// paginatedDocument exposes a PDF through the viewer contract. Only the
// first page is addressable at this stage; the page count is still
// reported so the info panel can show it.
type paginatedDocument struct {
	path  string
	size  geom.Size
	pages int
	meta  Metadata
}

func openPaginated(path string) (Document, error) {
	r, err := pdf.Open(path, nil)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer r.Close()

	catalog := r.GetMeta().Catalog
	root, err := resolveDict(r, catalog.Pages)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	pages, err := resolveInt(r, root["Count"])
	if err != nil || pages <= 0 {
		return nil, &DecodeError{Path: path, Err: errors.New("pdf has no pages")}
	}

	box, err := firstPageMediaBox(r, root)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	size := geom.Size{W: box.URx - box.LLx, H: box.URy - box.LLy}
	if size.IsZero() {
		return nil, &DecodeError{Path: path, Err: errors.New("first page has an empty MediaBox")}
	}

	meta := baseMetadata(path, fmt.Sprintf("PDF (%d pages)", pages), "Rendered", int(size.W), int(size.H))
	meta.PageCount = pages
	return &paginatedDocument{path: path, size: size, pages: pages, meta: meta}, nil
}

// firstPageMediaBox walks the page tree to the first leaf, carrying the
// inheritable MediaBox attribute down from interior nodes.
func firstPageMediaBox(r *pdf.Reader, node pdf.Dict) (*pdf.Rectangle, error) {
	inherited := node["MediaBox"]
	for depth := 0; depth < 64; depth++ {
		tp, _ := node["Type"].(pdf.Name)
		if tp == "Page" {
			boxObj := node["MediaBox"]
			if boxObj == nil {
				boxObj = inherited
			}
			return resolveRectangle(r, boxObj)
		}

		kidsObj, err := pdf.Resolve(r, node["Kids"])
		if err != nil {
			return nil, err
		}
		kids, ok := kidsObj.(pdf.Array)
		if !ok || len(kids) == 0 {
			return nil, errors.New("malformed page tree")
		}
		node, err = resolveDict(r, kids[0])
		if err != nil {
			return nil, err
		}
		if mb := node["MediaBox"]; mb != nil {
			inherited = mb
		}
	}
	return nil, errors.New("page tree too deep")
}

func resolveDict(r *pdf.Reader, obj pdf.Object) (pdf.Dict, error) {
	res, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}
	d, ok := res.(pdf.Dict)
	if !ok {
		return nil, fmt.Errorf("expected dict, got %T", res)
	}
	return d, nil
}

func resolveInt(r *pdf.Reader, obj pdf.Object) (int, error) {
	res, err := pdf.Resolve(r, obj)
	if err != nil {
		return 0, err
	}
	i, ok := res.(pdf.Integer)
	if !ok {
		return 0, fmt.Errorf("expected integer, got %T", res)
	}
	return int(i), nil
}

func resolveNumber(r *pdf.Reader, obj pdf.Object) (float64, error) {
	res, err := pdf.Resolve(r, obj)
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case pdf.Integer:
		return float64(v), nil
	case pdf.Real:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", res)
	}
}

func resolveRectangle(r *pdf.Reader, obj pdf.Object) (*pdf.Rectangle, error) {
	res, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}
	a, ok := res.(pdf.Array)
	if !ok || len(a) != 4 {
		return nil, errors.New("missing or invalid MediaBox")
	}
	var vals [4]float64
	for i, o := range a {
		vals[i], err = resolveNumber(r, o)
		if err != nil {
			return nil, err
		}
	}
	return &pdf.Rectangle{
		LLx: min(vals[0], vals[2]),
		LLy: min(vals[1], vals[3]),
		URx: max(vals[0], vals[2]),
		URy: max(vals[1], vals[3]),
	}, nil
}

func (d *paginatedDocument) Kind() Kind { return KindPaginated }

func (d *paginatedDocument) IntrinsicSize() geom.Size { return d.size }

// Paginated documents do not transform at this stage.
func (d *paginatedDocument) SupportsTransform() bool { return false }

func (d *paginatedDocument) Metadata() Metadata { return d.meta }

// Render returns a white page surface at the intrinsic size; page
// content rendering is the renderer collaborator's job.
func (d *paginatedDocument) Render(transform.State) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, int(d.size.W), int(d.size.H)))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img, nil
}

func (d *paginatedDocument) Close() error { return nil }
