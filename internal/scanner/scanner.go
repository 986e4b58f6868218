// Package scanner lists the displayable documents in a folder for the
// navigation index.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"pictor/internal/document"
)

// CollectSupported returns the supported document paths directly inside
// dir, sorted by name. Unreadable entries are skipped.
func CollectSupported(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if document.Supported(p) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Siblings lists the supported documents next to path, including path
// itself when it is supported.
func Siblings(path string) ([]string, error) {
	return CollectSupported(filepath.Dir(path))
}
