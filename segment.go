package concatdoc

import "github.com/google/uuid"

// SegmentID is the opaque, stable identity of one segment. It never changes
// across content edits; replacing a segment mints a fresh identity.
type SegmentID string

// NewSegmentID generates a unique segment identity.
func NewSegmentID() SegmentID {
	return SegmentID(uuid.New().String())
}

// Segment is the read-side contract implemented by the segment-content
// owner. Lines returns at least one line (an empty segment is exactly one
// empty line) and no line contains a terminator. Version increases strictly
// with each content change and is always consistent with the lines returned
// alongside it.
type Segment interface {
	ID() SegmentID
	URI() string
	Version() int
	Lines() []string
}

// StaticSegment is a self-contained Segment backed by its own line slice.
// It serves construction, ingest, and tests; hosts with their own cell or
// buffer type implement Segment directly instead.
type StaticSegment struct {
	id      SegmentID
	uri     string
	version int
	lines   []string
}

// NewStaticSegment creates a segment with a fresh identity and version 0.
func NewStaticSegment(uri string, lines []string) *StaticSegment {
	return NewStaticSegmentWithID(NewSegmentID(), uri, lines)
}

// NewStaticSegmentWithID creates a segment with a caller-supplied identity,
// for hosts that already track their own cell identities.
func NewStaticSegmentWithID(id SegmentID, uri string, lines []string) *StaticSegment {
	return &StaticSegment{id: id, uri: uri, lines: normalizeLines(lines)}
}

// ID returns the segment's identity.
func (s *StaticSegment) ID() SegmentID { return s.id }

// URI returns the segment's locator.
func (s *StaticSegment) URI() string { return s.uri }

// Version returns the current content version.
func (s *StaticSegment) Version() int { return s.version }

// Lines returns the current content as lines without terminators.
func (s *StaticSegment) Lines() []string { return s.lines }

// SetLines replaces the segment's content and bumps its version, returning
// the new version. The change is not visible in a Document until the
// matching ApplyContentChange.
func (s *StaticSegment) SetLines(lines []string) int {
	s.lines = normalizeLines(lines)
	s.version++
	return s.version
}

// normalizeLines guarantees the at-least-one-line invariant.
func normalizeLines(lines []string) []string {
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// segmentView is a point-in-time read of one segment's content with derived
// UTF-16 lengths. It is refreshed only when the segment's version moves, so
// cached lines and the version are always mutually consistent.
type segmentView struct {
	version  int
	lines    []string
	lineLens []int
	length   int // total units including inner separators
}

// viewOf snapshots seg's current lines under the given version.
func viewOf(seg Segment, version int) segmentView {
	src := seg.Lines()
	lines := make([]string, len(src))
	copy(lines, src)
	if len(lines) == 0 {
		lines = []string{""}
	}

	v := segmentView{
		version:  version,
		lines:    lines,
		lineLens: make([]int, len(lines)),
	}
	for i, ln := range lines {
		v.lineLens[i] = utf16Len(ln)
		v.length += v.lineLens[i]
	}
	v.length += len(lines) - 1
	return v
}
