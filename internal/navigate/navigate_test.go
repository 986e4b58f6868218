package navigate

import "testing"

func TestEmptyIndex(t *testing.T) {
	var ix Index
	if _, err := ix.Next(); err != ErrAtBoundary {
		t.Fatalf("Next on empty: %v", err)
	}
	if _, err := ix.Previous(); err != ErrAtBoundary {
		t.Fatalf("Previous on empty: %v", err)
	}
	if cur, total := ix.Position(); cur != 0 || total != 0 {
		t.Fatalf("Position = %d/%d", cur, total)
	}
	if ix.Current() != "" {
		t.Fatal("Current on empty index")
	}
}

func TestBoundariesClampWithoutWrap(t *testing.T) {
	var ix Index
	ix.Rebuild([]string{"a", "b", "c"}, "a")

	if _, err := ix.Previous(); err != ErrAtBoundary {
		t.Fatalf("Previous at start: %v", err)
	}
	if ix.Current() != "a" {
		t.Fatal("cursor moved on boundary no-op")
	}

	if p, err := ix.Next(); err != nil || p != "b" {
		t.Fatalf("Next = %q, %v", p, err)
	}
	if p, err := ix.Next(); err != nil || p != "c" {
		t.Fatalf("Next = %q, %v", p, err)
	}
	if _, err := ix.Next(); err != ErrAtBoundary {
		t.Fatalf("Next at end: %v", err)
	}
	if ix.Current() != "c" {
		t.Fatal("cursor moved on boundary no-op")
	}

	if cur, total := ix.Position(); cur != 3 || total != 3 {
		t.Fatalf("Position = %d/%d", cur, total)
	}
}

func TestWrapAround(t *testing.T) {
	ix := Index{Wrap: true}
	ix.Rebuild([]string{"a", "b"}, "b")

	if p, err := ix.Next(); err != nil || p != "a" {
		t.Fatalf("wrapped Next = %q, %v", p, err)
	}
	if p, err := ix.Previous(); err != nil || p != "b" {
		t.Fatalf("wrapped Previous = %q, %v", p, err)
	}
}

func TestRebuildKeepsCurrent(t *testing.T) {
	var ix Index
	ix.Rebuild([]string{"a", "b", "c"}, "b")
	if cur, _ := ix.Position(); cur != 2 {
		t.Fatalf("cursor = %d, want 2", cur)
	}

	// Unknown current falls back to the first entry.
	ix.Rebuild([]string{"x", "y"}, "gone")
	if ix.Current() != "x" {
		t.Fatalf("Current = %q", ix.Current())
	}
}
