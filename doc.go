// Package concatdoc presents an ordered list of independently-edited text
// segments (for example, notebook cells) as one concatenated virtual
// document, with exact bidirectional mapping between coordinates in the
// concatenated stream and coordinates within the originating segment.
//
// The package provides:
//
//   - A Document joining segment lines with "\n" into one logical text
//   - O(log n) resolution from a global offset or line to the owning segment
//   - Conversion between global offsets, global positions, and
//     segment-local Locations
//   - Deterministic clamping of out-of-range offsets and positions
//   - Incremental index maintenance under structural and content changes
//
// Basic usage:
//
//	a := concatdoc.NewStaticSegment("mem://nb#a", []string{"Hello", "World"})
//	b := concatdoc.NewStaticSegment("mem://nb#b", []string{"Hallo", "Welt"})
//	doc := concatdoc.New(a, b)
//
//	loc, _ := doc.LocationAt(concatdoc.Position{Line: 2, Character: 1})
//	// loc.Segment == b.ID(), loc.Position == (0:1)
//
// Segments are owned elsewhere. The document holds each segment handle and
// a cached snapshot of its lines; the owner announces edits with
// ApplyContentChange and list mutations with Splice, and the document
// refreshes only the affected suffix of its index. Offsets and columns are
// measured in UTF-16 code units, the unit used by LSP and most editor
// hosts.
//
// A Document is not safe for concurrent use. Mutation and queries are
// synchronous and run to completion; hosts on multiple goroutines must
// serialize access with their own lock.
package concatdoc
