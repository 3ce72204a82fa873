// © 2024 Huff Language
//
// SPDX-License-Identifier: Apache-2.0

// Package source holds the combined source text produced by import
// flattening along with the provenance map that ties ranges of the combined
// text back to the files they came from.
package source

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shunkakinoki/huffc/internal/optional"
)

// ErrProvenance reports a malformed provenance map at construction time.
// Provenance records are produced by the flattening step, not by users, so a
// violation is a contract breach and callers are expected to treat it as
// fatal.
var ErrProvenance = errors.New("malformed provenance map")

// Provenance records that bytes [Start, End) of the combined buffer
// originated from File.
type Provenance struct {
	File  FileID
	Start int
	End   int
}

// Part is one input to Flatten: the content of a single origin file.
type Part struct {
	File    FileID
	Content string
}

// Buffer is an immutable combined source text plus its provenance map. A
// Buffer may be shared read-only by any number of lexers.
type Buffer struct {
	text string
	prov []Provenance
}

// New validates the provenance map and wraps it with the combined text. The
// records must be sorted by start offset, non-overlapping, and contained in
// [0, len(text)); gaps between records are allowed and resolve to no origin.
func New(text string, prov []Provenance) (*Buffer, error) {
	end := 0
	for i, p := range prov {
		if p.Start > p.End {
			return nil, fmt.Errorf("%w: record %d has start %d after end %d", ErrProvenance, i, p.Start, p.End)
		}
		if p.Start < end {
			return nil, fmt.Errorf("%w: record %d starting at %d overlaps or precedes the previous record ending at %d", ErrProvenance, i, p.Start, end)
		}
		if p.End > len(text) {
			return nil, fmt.Errorf("%w: record %d ends at %d beyond the buffer length %d", ErrProvenance, i, p.End, len(text))
		}
		end = p.End
	}
	return &Buffer{text: text, prov: prov}, nil
}

// Flatten composes ordered file parts into a single Buffer with a gap-free
// provenance map. This mirrors the output shape of the import-flattening
// step.
func Flatten(parts []Part) *Buffer {
	var b strings.Builder
	prov := make([]Provenance, 0, len(parts))
	for _, part := range parts {
		start := b.Len()
		_, _ = b.WriteString(part.Content)
		prov = append(prov, Provenance{File: part.File, Start: start, End: b.Len()})
	}
	return &Buffer{text: b.String(), prov: prov}
}

func (b *Buffer) Len() int {
	return len(b.text)
}

func (b *Buffer) Text() string {
	return b.text
}

// Slice returns the text covered by the span.
func (b *Buffer) Slice(s Span) string {
	return b.text[s.Start:s.End]
}

// OriginOf resolves the file a byte offset originated from. Offsets inside a
// provenance gap, such as separators inserted by the flattening step, have no
// origin.
func (b *Buffer) OriginOf(offset int) optional.Optional[FileID] {
	i := sort.Search(len(b.prov), func(i int) bool {
		return b.prov[i].End > offset
	})
	if i < len(b.prov) && b.prov[i].Start <= offset && offset < b.prov[i].End {
		return optional.Some(b.prov[i].File)
	}
	return optional.None[FileID]()
}

// Resolve builds a span over [start, end) with its origin looked up once and
// cached on the span.
func (b *Buffer) Resolve(start int, end int) Span {
	return Span{Start: start, End: end, File: b.OriginOf(start)}
}

// LineCol converts a byte offset to 1-based line and column numbers within
// the combined text. Used only when rendering diagnostics.
func (b *Buffer) LineCol(offset int) (int, int) {
	if offset > len(b.text) {
		offset = len(b.text)
	}
	line := 1 + strings.Count(b.text[:offset], "\n")
	col := offset - (strings.LastIndexByte(b.text[:offset], '\n') + 1) + 1
	return line, col
}

// LineAt returns the full text of the line containing the offset, without
// its trailing newline, along with the offset at which the line starts.
func (b *Buffer) LineAt(offset int) (string, int) {
	if offset > len(b.text) {
		offset = len(b.text)
	}
	start := strings.LastIndexByte(b.text[:offset], '\n') + 1
	end := strings.IndexByte(b.text[start:], '\n')
	if end < 0 {
		return b.text[start:], start
	}
	return b.text[start : start+end], start
}
