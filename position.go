package concatdoc

import "fmt"

// Position is a zero-based line and column location in the concatenated
// document. Character is measured in UTF-16 code units; a rune above the
// Basic Multilingual Plane counts as two.
type Position struct {
	Line      int
	Character int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Character)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Character != other.Character {
		if p.Character < other.Character {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Location addresses a position within one originating segment: the
// segment's identity plus a segment-local Position.
type Location struct {
	Segment  SegmentID
	Position Position
}

// utf16Len returns the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// clampPosition reduces p to the nearest valid position within the line
// table. A line beyond the table clamps to the end of the last line; a
// column beyond a line's length clamps to the line's length. lineLens holds
// the UTF-16 length of each line.
func clampPosition(lineLens []int, p Position) Position {
	if len(lineLens) == 0 {
		return Position{}
	}
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(lineLens) {
		last := len(lineLens) - 1
		return Position{Line: last, Character: lineLens[last]}
	}
	if p.Character < 0 {
		p.Character = 0
	}
	if p.Character > lineLens[p.Line] {
		p.Character = lineLens[p.Line]
	}
	return p
}

// posToOffset converts a position to a flat offset within the line table,
// counting one separator unit per line break. The position is clamped
// first.
func posToOffset(lineLens []int, p Position) int {
	p = clampPosition(lineLens, p)
	off := 0
	for i := 0; i < p.Line; i++ {
		off += lineLens[i] + 1
	}
	return off + p.Character
}

// offsetToPos is the inverse of posToOffset. An offset equal to a line's
// length resolves to the end of that line, not the start of the next; an
// offset beyond the table clamps to the end of the last line.
func offsetToPos(lineLens []int, off int) Position {
	if len(lineLens) == 0 {
		return Position{}
	}
	if off < 0 {
		off = 0
	}
	for i, n := range lineLens {
		if off <= n {
			return Position{Line: i, Character: off}
		}
		off -= n + 1
	}
	last := len(lineLens) - 1
	return Position{Line: last, Character: lineLens[last]}
}
