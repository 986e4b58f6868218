package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// Metadata is a snapshot of document properties for the info panel.
// Capture fields (camera, timestamp) come from an external extractor and
// stay empty unless one filled them in.
type Metadata struct {
	FileName string
	FilePath string
	Format   string
	Width    int
	Height   int
	FileSize int64
	Color    string

	// PageCount is zero for single-surface documents.
	PageCount int

	// Optional capture information.
	Camera   string
	Captured string
}

// ResolutionDisplay formats the intrinsic size as "W x H".
func (m Metadata) ResolutionDisplay() string {
	return fmt.Sprintf("%d x %d", m.Width, m.Height)
}

// FileSizeDisplay formats the byte count in human units.
func (m Metadata) FileSizeDisplay() string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case m.FileSize >= gb:
		return fmt.Sprintf("%.2f GB", float64(m.FileSize)/gb)
	case m.FileSize >= mb:
		return fmt.Sprintf("%.2f MB", float64(m.FileSize)/mb)
	case m.FileSize >= kb:
		return fmt.Sprintf("%.1f KB", float64(m.FileSize)/kb)
	default:
		return fmt.Sprintf("%d B", m.FileSize)
	}
}

func baseMetadata(path, format, color string, w, h int) Metadata {
	var size int64
	if fi, err := os.Stat(path); err == nil {
		size = fi.Size()
	}
	return Metadata{
		FileName: filepath.Base(path),
		FilePath: path,
		Format:   format,
		Width:    w,
		Height:   h,
		FileSize: size,
		Color:    color,
	}
}
