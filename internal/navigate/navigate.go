// Package navigate keeps an ordered list of sibling documents and a
// cursor over it.
package navigate

import "errors"

// ErrAtBoundary signals that the cursor is already at the first or last
// entry. It is a defined no-op result, not a failure.
var ErrAtBoundary = errors.New("navigate: already at boundary")

// Index is a cursor over the documents of one folder. The zero value is
// an empty index.
type Index struct {
	// Wrap makes Next/Previous cycle past the ends instead of
	// reporting ErrAtBoundary.
	Wrap bool

	entries []string
	cursor  int
}

// Rebuild replaces the entry list, positioning the cursor on current
// when present and on the first entry otherwise. Called whenever the
// containing folder changes.
func (ix *Index) Rebuild(entries []string, current string) {
	ix.entries = append([]string(nil), entries...)
	ix.cursor = 0
	for i, p := range ix.entries {
		if p == current {
			ix.cursor = i
			break
		}
	}
}

// Len returns the number of entries.
func (ix *Index) Len() int { return len(ix.entries) }

// Current returns the path under the cursor, or "" when empty.
func (ix *Index) Current() string {
	if len(ix.entries) == 0 {
		return ""
	}
	return ix.entries[ix.cursor]
}

// Entries returns the entry list in order. The slice is shared; do
// not mutate it.
func (ix *Index) Entries() []string { return ix.entries }

// Position returns the 1-based cursor position and the total count for
// the "i / n" label. An empty index reports (0, 0).
func (ix *Index) Position() (current, total int) {
	if len(ix.entries) == 0 {
		return 0, 0
	}
	return ix.cursor + 1, len(ix.entries)
}

// Next advances the cursor and returns the new path. At the last entry
// it returns ErrAtBoundary and leaves the cursor unchanged, unless Wrap
// is set.
func (ix *Index) Next() (string, error) {
	if len(ix.entries) == 0 {
		return "", ErrAtBoundary
	}
	if ix.cursor+1 >= len(ix.entries) {
		if !ix.Wrap {
			return "", ErrAtBoundary
		}
		ix.cursor = 0
		return ix.entries[ix.cursor], nil
	}
	ix.cursor++
	return ix.entries[ix.cursor], nil
}

// Previous moves the cursor back and returns the new path. At the first
// entry it returns ErrAtBoundary and leaves the cursor unchanged, unless
// Wrap is set.
func (ix *Index) Previous() (string, error) {
	if len(ix.entries) == 0 {
		return "", ErrAtBoundary
	}
	if ix.cursor == 0 {
		if !ix.Wrap {
			return "", ErrAtBoundary
		}
		ix.cursor = len(ix.entries) - 1
		return ix.entries[ix.cursor], nil
	}
	ix.cursor--
	return ix.entries[ix.cursor], nil
}
