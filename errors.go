package concatdoc

import "errors"

// Errors returned by document operations.
var (
	// ErrSegmentNotFound indicates a Location references a segment identity
	// that is no longer part of the document.
	ErrSegmentNotFound = errors.New("segment not found")

	// ErrEmptyDocument indicates a query that needs at least one segment
	// was made against a document with none.
	ErrEmptyDocument = errors.New("document has no segments")

	// ErrRangeInvalid indicates a structural change addressed slots outside
	// the current segment list.
	ErrRangeInvalid = errors.New("invalid range")
)
