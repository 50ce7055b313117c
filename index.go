package concatdoc

import "sort"

// slot is the document's record for one segment in the ordered list: the
// segment handle, the version/lines snapshot used to detect staleness, and
// the cached absolute start of the segment's first character within the
// concatenation.
type slot struct {
	seg         Segment
	view        segmentView
	startOffset int
	startLine   int
}

// extent is the number of offset units the slot occupies including the
// separator joining it to the next segment.
func (s *slot) extent() int { return s.view.length + 1 }

// lineCount returns the number of lines the slot contributes.
func (s *slot) lineCount() int { return len(s.view.lines) }

// offsetIndex maintains cumulative starts for the ordered slot list and
// resolves global offsets, global lines, and identities to owning slots.
type offsetIndex struct {
	slots []*slot
	byID  map[SegmentID]*slot
}

func newOffsetIndex() *offsetIndex {
	return &offsetIndex{byID: make(map[SegmentID]*slot)}
}

// recomputeFrom refreshes cached starts for every slot at index >= from.
// Slots before from are untouched; their starts cannot have moved.
func (ix *offsetIndex) recomputeFrom(from int) {
	off, line := 0, 0
	if from > 0 {
		prev := ix.slots[from-1]
		off = prev.startOffset + prev.extent()
		line = prev.startLine + prev.lineCount()
	}
	for _, s := range ix.slots[from:] {
		s.startOffset = off
		s.startLine = line
		off += s.extent()
		line += s.lineCount()
	}
}

// splice replaces deleteCount slots at start with repl, rebuilds the
// identity map entries, and recomputes the suffix starts. Bounds must be
// validated by the caller.
func (ix *offsetIndex) splice(start, deleteCount int, repl []*slot) {
	for _, s := range ix.slots[start : start+deleteCount] {
		delete(ix.byID, s.seg.ID())
	}
	tail := make([]*slot, 0, len(repl)+len(ix.slots)-start-deleteCount)
	tail = append(tail, repl...)
	tail = append(tail, ix.slots[start+deleteCount:]...)
	ix.slots = append(ix.slots[:start], tail...)

	for _, s := range repl {
		ix.byID[s.seg.ID()] = s
	}
	ix.recomputeFrom(start)
}

// byOffset returns the slot owning the given global offset. Segment
// boundaries are closed on the left: the end-of-segment offset still
// belongs to that segment, and the next segment starts one separator unit
// later. Offsets past the end of the document resolve to the last slot.
func (ix *offsetIndex) byOffset(off int) (*slot, bool) {
	if len(ix.slots) == 0 {
		return nil, false
	}
	if off < 0 {
		return ix.slots[0], true
	}
	i := sort.Search(len(ix.slots), func(i int) bool {
		return ix.slots[i].startOffset > off
	})
	return ix.slots[i-1], true
}

// byLine returns the slot owning the given global line, with the same clamp
// policy as byOffset.
func (ix *offsetIndex) byLine(line int) (*slot, bool) {
	if len(ix.slots) == 0 {
		return nil, false
	}
	if line < 0 {
		return ix.slots[0], true
	}
	i := sort.Search(len(ix.slots), func(i int) bool {
		return ix.slots[i].startLine > line
	})
	return ix.slots[i-1], true
}

// find resolves a segment identity to its current slot.
func (ix *offsetIndex) find(id SegmentID) (*slot, bool) {
	s, ok := ix.byID[id]
	return s, ok
}

// indexOf returns the list index of a current slot. Start offsets strictly
// increase (an empty segment still spans one separator unit), so the slot's
// own cached start identifies it even before a suffix recompute.
func (ix *offsetIndex) indexOf(s *slot) int {
	return sort.Search(len(ix.slots), func(i int) bool {
		return ix.slots[i].startOffset >= s.startOffset
	})
}
