package concatdoc

import "strings"

// Document is the concatenated multi-segment document: an ordered list of
// segments presented as one logical text stream. It owns the slot list and
// offset index; segment content is owned by the collaborator that created
// the segments and enters the document only as versioned snapshots.
//
// Document is not safe for concurrent use.
type Document struct {
	index   *offsetIndex
	version int
}

// New creates a document over the given ordered segments. A freshly
// constructed document has version 0 regardless of how many segments it
// starts with.
func New(segments ...Segment) *Document {
	d := &Document{index: newOffsetIndex()}
	if len(segments) > 0 {
		d.index.splice(0, 0, slotsFor(segments))
	}
	return d
}

func slotsFor(segments []Segment) []*slot {
	out := make([]*slot, len(segments))
	for i, seg := range segments {
		out[i] = &slot{seg: seg, view: viewOf(seg, seg.Version())}
	}
	return out
}

// Version reports the document version: 0 at construction, +1 for every
// applied structural or content change. Queries and ignored changes never
// move it.
func (d *Document) Version() int { return d.version }

// Text materializes the concatenation: every segment's lines in order,
// joined by "\n". Recomputed from the cached segment snapshots on each
// call.
func (d *Document) Text() string {
	var b strings.Builder
	for i, s := range d.index.slots {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, ln := range s.view.lines {
			if j > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(ln)
		}
	}
	return b.String()
}

// Lines returns every segment's lines in concatenation order.
func (d *Document) Lines() []string {
	out := make([]string, 0, d.LineCount())
	for _, s := range d.index.slots {
		out = append(out, s.view.lines...)
	}
	return out
}

// LineCount returns the total number of lines. A document with no segments
// has zero lines.
func (d *Document) LineCount() int {
	n := len(d.index.slots)
	if n == 0 {
		return 0
	}
	last := d.index.slots[n-1]
	return last.startLine + last.lineCount()
}

// Line returns the content of one global line. The second result is false
// when the line does not exist.
func (d *Document) Line(line int) (string, bool) {
	s, ok := d.index.byLine(line)
	if !ok {
		return "", false
	}
	local := line - s.startLine
	if local < 0 || local >= s.lineCount() {
		return "", false
	}
	return s.view.lines[local], true
}

// OffsetAt resolves a global position to a global offset. An out-of-range
// line or column clamps to the nearest valid location; a position beyond
// the last segment clamps to the end of the document. An empty document
// maps everything to 0.
func (d *Document) OffsetAt(pos Position) int {
	s, ok := d.index.byLine(pos.Line)
	if !ok {
		return 0
	}
	local := Position{Line: pos.Line - s.startLine, Character: pos.Character}
	return s.startOffset + posToOffset(s.view.lineLens, local)
}

// PositionAt resolves a global offset to a global position, clamping
// out-of-range offsets the same way OffsetAt clamps positions.
func (d *Document) PositionAt(offset int) Position {
	s, ok := d.index.byOffset(offset)
	if !ok {
		return Position{}
	}
	local := offsetToPos(s.view.lineLens, offset-s.startOffset)
	return Position{Line: s.startLine + local.Line, Character: local.Character}
}

// LocationAt resolves a global position to the owning segment and the
// clamped segment-local position. It fails only for a document with no
// segments.
func (d *Document) LocationAt(pos Position) (Location, error) {
	s, ok := d.index.byLine(pos.Line)
	if !ok {
		return Location{}, ErrEmptyDocument
	}
	local := clampPosition(s.view.lineLens, Position{
		Line:      pos.Line - s.startLine,
		Character: pos.Character,
	})
	return Location{Segment: s.seg.ID(), Position: local}, nil
}

// PositionOf maps a segment-local location back into the concatenated
// stream, clamping the local position the way LocationAt clamps. It returns
// ErrSegmentNotFound when the identity is no longer present.
func (d *Document) PositionOf(loc Location) (Position, error) {
	s, ok := d.index.find(loc.Segment)
	if !ok {
		return Position{}, ErrSegmentNotFound
	}
	local := clampPosition(s.view.lineLens, loc.Position)
	return Position{Line: s.startLine + local.Line, Character: local.Character}, nil
}

// Splice applies a structural change: deleteCount segments at start are
// removed and the inserted segments take their place, each snapshotted at
// its current lines and version. Cached starts from start onward are
// recomputed and the document version moves by one. A delta addressing
// slots outside the current list returns ErrRangeInvalid and changes
// nothing.
func (d *Document) Splice(start, deleteCount int, insert ...Segment) error {
	if start < 0 || deleteCount < 0 || start+deleteCount > len(d.index.slots) {
		return ErrRangeInvalid
	}
	d.index.splice(start, deleteCount, slotsFor(insert))
	d.version++
	return nil
}

// ApplyContentChange refreshes one segment's cached snapshot after its
// owner edited it, recomputing starts for every later slot. The change
// applies only when version is strictly newer than the cached version;
// stale or duplicate notifications, and identities that have since been
// removed, are dropped without touching any document state. It reports
// whether the change was applied.
//
// The owner is assumed to deliver content changes in version order per
// segment; nothing stronger than the strict-newer check defends against
// reordering.
func (d *Document) ApplyContentChange(id SegmentID, version int) bool {
	s, ok := d.index.find(id)
	if !ok {
		return false
	}
	if version <= s.view.version {
		return false
	}
	s.view = viewOf(s.seg, version)
	d.index.recomputeFrom(d.index.indexOf(s) + 1)
	d.version++
	return true
}

// Segments returns the identities of the current segments in order.
func (d *Document) Segments() []SegmentID {
	out := make([]SegmentID, len(d.index.slots))
	for i, s := range d.index.slots {
		out[i] = s.seg.ID()
	}
	return out
}

// SegmentCount returns the number of segments.
func (d *Document) SegmentCount() int { return len(d.index.slots) }

// Contains reports whether the identity is currently part of the document.
func (d *Document) Contains(id SegmentID) bool {
	_, ok := d.index.find(id)
	return ok
}

// RangeOf reports the global start and end positions the segment currently
// occupies. End is the position just past the last character of the
// segment's last line.
func (d *Document) RangeOf(id SegmentID) (start, end Position, err error) {
	s, ok := d.index.find(id)
	if !ok {
		return Position{}, Position{}, ErrSegmentNotFound
	}
	last := s.lineCount() - 1
	start = Position{Line: s.startLine}
	end = Position{Line: s.startLine + last, Character: s.view.lineLens[last]}
	return start, end, nil
}

// SegmentText returns the segment's cached content joined by "\n".
func (d *Document) SegmentText(id SegmentID) (string, error) {
	s, ok := d.index.find(id)
	if !ok {
		return "", ErrSegmentNotFound
	}
	return strings.Join(s.view.lines, "\n"), nil
}
