// © 2024 Huff Language
//
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"fmt"

	"github.com/shunkakinoki/huffc/internal/optional"
)

// FileID identifies the file a range of the combined buffer originated from.
type FileID string

// Span is a half-open byte range [Start, End) into a combined source buffer.
// File is the origin of the span's first byte when the provenance map knows
// it; it is resolved when the span is built and carried for diagnostics only.
// Zero-length spans mark the synthetic end of input.
type Span struct {
	Start int
	End   int
	File  optional.Optional[FileID]
}

// NewSpan builds a span with no resolved origin. Use Buffer.Resolve to attach
// provenance.
func NewSpan(start int, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}
