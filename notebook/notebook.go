// Package notebook ingests Jupyter-style notebook JSON into concatdoc
// segments, one segment per cell in notebook order.
package notebook

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/concatdoc"
)

// ErrInvalidNotebook indicates the data is not a notebook document with a
// cells array.
var ErrInvalidNotebook = errors.New("invalid notebook document")

// Option configures parsing.
type Option func(*parser)

// WithCellTypes restricts ingest to cells whose cell_type matches one of
// the given types (for example "code"). By default every cell is included.
func WithCellTypes(types ...string) Option {
	return func(p *parser) {
		if p.types == nil {
			p.types = make(map[string]bool)
		}
		for _, t := range types {
			p.types[t] = true
		}
	}
}

type parser struct {
	types map[string]bool
}

func (p *parser) include(cellType string) bool {
	return len(p.types) == 0 || p.types[cellType]
}

// Parse reads a notebook document and returns one segment per included
// cell, in notebook order. Each segment receives a fresh identity and a
// locator of the form "<base>#<id>".
func Parse(base string, data []byte, opts ...Option) ([]concatdoc.Segment, error) {
	var p parser
	for _, opt := range opts {
		opt(&p)
	}

	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidNotebook
	}
	cells := gjson.GetBytes(data, "cells")
	if !cells.IsArray() {
		return nil, ErrInvalidNotebook
	}

	var segments []concatdoc.Segment
	cells.ForEach(func(_, cell gjson.Result) bool {
		if !p.include(cell.Get("cell_type").String()) {
			return true
		}
		id := concatdoc.NewSegmentID()
		uri := base + "#" + string(id)
		segments = append(segments, concatdoc.NewStaticSegmentWithID(id, uri, cellLines(cell.Get("source"))))
		return true
	})
	return segments, nil
}

// cellLines splits a cell's source into terminator-free lines. Notebook
// sources come either as one string or as an array of line fragments that
// keep their trailing newlines.
func cellLines(source gjson.Result) []string {
	var text string
	if source.IsArray() {
		var b strings.Builder
		source.ForEach(func(_, part gjson.Result) bool {
			b.WriteString(part.String())
			return true
		})
		text = b.String()
	} else {
		text = source.String()
	}
	return strings.Split(text, "\n")
}
