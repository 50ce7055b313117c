package concatdoc

import "testing"

// checkCumulativeStarts verifies the prefix-sum invariant over the slot
// table: each slot starts one separator unit past the previous slot's
// content, and start lines accumulate line counts.
func checkCumulativeStarts(t *testing.T, d *Document) {
	t.Helper()

	off, line := 0, 0
	for i, s := range d.index.slots {
		if s.startOffset != off {
			t.Errorf("Slot %d: expected start offset %d, got %d", i, off, s.startOffset)
		}
		if s.startLine != line {
			t.Errorf("Slot %d: expected start line %d, got %d", i, line, s.startLine)
		}
		off += s.extent()
		line += s.lineCount()
	}
}

func TestIndexInvariantUnderChanges(t *testing.T) {
	a, b := newTestSegments()
	c := NewStaticSegment("mem://nb#c", []string{"one", "two"})

	d := New(a, b)
	checkCumulativeStarts(t, d)

	if err := d.Splice(1, 0, c); err != nil {
		t.Fatalf("Splice failed: %v", err)
	}
	checkCumulativeStarts(t, d)

	if !d.ApplyContentChange(c.ID(), c.SetLines([]string{"one", "two", "three"})) {
		t.Fatal("Expected content change to apply")
	}
	checkCumulativeStarts(t, d)

	if err := d.Splice(0, 1); err != nil {
		t.Fatalf("Splice failed: %v", err)
	}
	checkCumulativeStarts(t, d)

	if err := d.Splice(0, 2, b, a, c); err != nil {
		t.Fatalf("Splice failed: %v", err)
	}
	checkCumulativeStarts(t, d)

	if d.Version() != 4 {
		t.Errorf("Expected version 4, got %d", d.Version())
	}
}

func TestByOffsetBoundaries(t *testing.T) {
	a, b := newTestSegments()
	d := New(a, b)
	ix := d.index

	second := ix.slots[1]
	boundary := second.startOffset - 1 // end position of the first segment

	s, ok := ix.byOffset(boundary)
	if !ok || s != ix.slots[0] {
		t.Error("Expected end-of-segment offset to belong to the first segment")
	}
	s, ok = ix.byOffset(second.startOffset)
	if !ok || s != second {
		t.Error("Expected next start offset to belong to the second segment")
	}
	s, ok = ix.byOffset(1_000_000)
	if !ok || s != second {
		t.Error("Expected past-the-end offset to clamp to the last slot")
	}
}

func TestIndexOf(t *testing.T) {
	a, b := newTestSegments()
	c := NewStaticSegment("mem://nb#c", []string{""})
	d := New(a, c, b)

	for i, s := range d.index.slots {
		if got := d.index.indexOf(s); got != i {
			t.Errorf("Slot %d: indexOf returned %d", i, got)
		}
	}
}
