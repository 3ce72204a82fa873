// © 2024 Huff Language
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"unicode/utf8"

	"github.com/shunkakinoki/huffc/internal/optional"
	"github.com/shunkakinoki/huffc/internal/source"
)

// scanner is the cursor over the combined source text. It tracks the current
// offset and the marked start of the token being classified, and never looks
// behind the mark. Lookahead is unbounded within the remaining buffer.
type scanner struct {
	buf   *source.Buffer
	src   string
	start int
	off   int
}

func newScanner(buf *source.Buffer) scanner {
	return scanner{buf: buf, src: buf.Text()}
}

func (self *scanner) atEnd() bool {
	return self.off >= len(self.src)
}

// peek returns the rune that is ahead runes past the current offset without
// consuming anything. peek(0) is the next unconsumed rune.
func (self *scanner) peek(ahead int) optional.Optional[rune] {
	off := self.off
	for {
		if off >= len(self.src) {
			return optional.None[rune]()
		}
		r, w := utf8.DecodeRuneInString(self.src[off:])
		if ahead == 0 {
			return optional.Some(r)
		}
		ahead = ahead - 1
		off = off + w
	}
}

// advance consumes one rune, moving the offset forward by its encoded width.
func (self *scanner) advance() optional.Optional[rune] {
	if self.off >= len(self.src) {
		return optional.None[rune]()
	}
	r, w := utf8.DecodeRuneInString(self.src[self.off:])
	self.off = self.off + w
	return optional.Some(r)
}

func (self *scanner) markSpanStart() {
	self.start = self.off
}

// currentSpan covers [marked start, current offset) with provenance
// resolved.
func (self *scanner) currentSpan() source.Span {
	return self.buf.Resolve(self.start, self.off)
}
