// © 2024 Huff Language
//
// SPDX-License-Identifier: Apache-2.0

// Package lexer implements the tokenizer for Huff source. It pulls one token
// per call from a flattened source buffer, classifying with maximal munch
// and yielding every byte of input as either a token or a lexical error so
// the stream reproduces the source exactly.
package lexer

import (
	"strings"
	"unicode"

	"github.com/shunkakinoki/huffc/internal/diag"
	"github.com/shunkakinoki/huffc/internal/iter"
	"github.com/shunkakinoki/huffc/internal/optional"
	"github.com/shunkakinoki/huffc/internal/source"
	"github.com/shunkakinoki/huffc/internal/token"
)

// Result holds exactly one of a token or a lexical error. Errors do not
// terminate the stream except when end of input was reached inside an open
// literal or comment; the driving loop decides whether to keep pulling.
type Result struct {
	Token *token.Token
	Err   *diag.LexicalError
}

// Span returns the range of the buffer the result accounts for.
func (res Result) Span() source.Span {
	if res.Err != nil {
		return res.Err.Span
	}
	return res.Token.Span
}

// Lexer produces the token stream for one source buffer. It is single-pass
// and non-restartable, and must not be driven from more than one goroutine.
// Several independent Lexer instances may share one buffer.
type Lexer struct {
	buf  *source.Buffer
	scan scanner
	last source.Span
	eof  bool
	done bool
}

var _ iter.Iterator[Result] = (*Lexer)(nil)

func New(buf *source.Buffer) *Lexer {
	return &Lexer{
		buf:  buf,
		scan: newScanner(buf),
	}
}

// Next advances exactly one classification step. The end-of-input marker is
// yielded once, after which Next returns None forever.
func (self *Lexer) Next() optional.Optional[Result] {
	if self.done {
		return optional.None[Result]()
	}
	self.scan.markSpanStart()
	if self.eof || self.scan.atEnd() {
		self.eof = true
		self.done = true
		res := self.emit(token.KindEOF)
		self.last = res.Token.Span
		return optional.Some(res)
	}

	var res Result
	r := self.scan.peek(0).Value()
	switch {
	case isSpace(r):
		res = self.readWhitespace()
	case r == '/':
		res = self.readSlash()
	case r == '"':
		res = self.readString()
	case r == '#':
		res = self.readDirective()
	case isDigit(r):
		res = self.readNumber()
	case isWordStart(r):
		res = self.readWord()
	default:
		res = self.readSymbol(r)
	}
	self.last = res.Span()
	return optional.Some(res)
}

// CurrentSpan is the span of the most recently produced token or error.
func (self *Lexer) CurrentSpan() source.Span {
	return self.last
}

// AtEnd reports whether the end of input has been reached.
func (self *Lexer) AtEnd() bool {
	return self.eof
}

// Slice returns the source text covered by the span, for diagnostic
// rendering.
func (self *Lexer) Slice(s source.Span) string {
	return self.buf.Slice(s)
}

// NonTrivia filters Whitespace and Comment tokens out of a Result stream.
// Errors and all other tokens pass through. Parsers that want round-trip
// fidelity simply consume the lexer directly instead.
func NonTrivia(it iter.Iterator[Result]) iter.Iterator[Result] {
	return iter.NewIteratorFilter(it, iter.FilterFunc[Result](func(res Result) bool {
		return res.Err != nil || !res.Token.Kind.IsTrivia()
	}))
}

func (self *Lexer) emit(kind token.Kind) Result {
	span := self.scan.currentSpan()
	return Result{Token: token.New(kind, span, self.buf.Slice(span))}
}

func (self *Lexer) fail(kind diag.Kind, detail string) Result {
	return Result{Err: diag.New(kind, self.scan.currentSpan(), detail)}
}

// failEOF is for faults that consumed the rest of the input; the stream ends
// without a separate end marker since the error span already reaches the end
// of the buffer.
func (self *Lexer) failEOF(kind diag.Kind) Result {
	self.eof = true
	self.done = true
	span := self.scan.currentSpan()
	return Result{Err: diag.New(kind, span, self.buf.Slice(span))}
}

func (self *Lexer) readWhitespace() Result {
	for {
		n := self.scan.peek(0)
		if !n.IsPresent() || !isSpace(n.Value()) {
			return self.emit(token.KindWhitespace)
		}
		_ = self.scan.advance()
	}
}

func (self *Lexer) readSlash() Result {
	_ = self.scan.advance()
	n := self.scan.peek(0)
	if !n.IsPresent() {
		return self.emit(token.KindDiv)
	}
	switch n.Value() {
	case '/':
		_ = self.scan.advance()
		return self.readCommentLine()
	case '*':
		_ = self.scan.advance()
		return self.readCommentBlock()
	default:
		return self.emit(token.KindDiv)
	}
}

func (self *Lexer) readCommentLine() Result {
	for {
		n := self.scan.peek(0)
		// The terminating newline is not part of the comment; it starts the
		// next whitespace run.
		if !n.IsPresent() || n.Value() == '\n' {
			return self.emit(token.KindComment)
		}
		_ = self.scan.advance()
	}
}

func (self *Lexer) readCommentBlock() Result {
	for {
		n := self.scan.peek(0)
		if !n.IsPresent() {
			return self.failEOF(diag.KindUnterminatedComment)
		}
		if n.Value() == '*' {
			if nn := self.scan.peek(1); nn.IsPresent() && nn.Value() == '/' {
				_ = self.scan.advance()
				_ = self.scan.advance()
				return self.emit(token.KindComment)
			}
		}
		_ = self.scan.advance()
	}
}

func (self *Lexer) readString() Result {
	_ = self.scan.advance()
	for {
		n := self.scan.peek(0)
		if !n.IsPresent() {
			return self.failEOF(diag.KindUnterminatedString)
		}
		switch n.Value() {
		case '"':
			_ = self.scan.advance()
			return self.emit(token.KindStr)
		case '\\':
			_ = self.scan.advance()
			// Only escaped quotes and backslashes are recognized; any other
			// escape is left for later stages to interpret.
			if nn := self.scan.peek(0); nn.IsPresent() && (nn.Value() == '"' || nn.Value() == '\\') {
				_ = self.scan.advance()
			}
		default:
			_ = self.scan.advance()
		}
	}
}

// readDirective handles the # marker. Only whole-word "#define" and
// "#include" are keywords; any other # yields an error on the marker alone
// and scanning resumes at the next character.
func (self *Lexer) readDirective() Result {
	var word strings.Builder
	for i := 1; ; i = i + 1 {
		n := self.scan.peek(i)
		if !n.IsPresent() || !isWordPart(n.Value()) {
			break
		}
		_, _ = word.WriteRune(n.Value())
	}
	kind, ok := token.Keyword("#" + word.String())
	if !ok {
		_ = self.scan.advance()
		return self.fail(diag.KindUnexpectedCharacter, "#")
	}
	for i := 0; i <= word.Len(); i = i + 1 {
		_ = self.scan.advance()
	}
	return self.emit(kind)
}

func (self *Lexer) readNumber() Result {
	first := self.scan.advance()
	if first.Value() == '0' {
		if n := self.scan.peek(0); n.IsPresent() && n.Value() == 'x' {
			_ = self.scan.advance()
			return self.readHex()
		}
	}
	for {
		n := self.scan.peek(0)
		if !n.IsPresent() || !isDigit(n.Value()) {
			return self.emit(token.KindDec)
		}
		_ = self.scan.advance()
	}
}

func (self *Lexer) readHex() Result {
	digits := 0
	for {
		n := self.scan.peek(0)
		if !n.IsPresent() || !isHexDigit(n.Value()) {
			break
		}
		_ = self.scan.advance()
		digits = digits + 1
	}
	if digits == 0 {
		span := self.scan.currentSpan()
		return Result{Err: diag.New(diag.KindInvalidNumberLiteral, span, self.buf.Slice(span))}
	}
	return self.emit(token.KindHex)
}

func (self *Lexer) readWord() Result {
	_ = self.scan.advance()
	for {
		n := self.scan.peek(0)
		if !n.IsPresent() || !isWordPart(n.Value()) {
			break
		}
		_ = self.scan.advance()
	}
	text := self.buf.Slice(self.scan.currentSpan())
	if strings.HasPrefix(text, "__") {
		if kind, ok := token.Builtin(text); ok {
			return self.emit(kind)
		}
		// Unknown __-prefixed words are plain identifiers; whether they name
		// a real builtin is a semantic question for later stages.
	}
	if kind, ok := token.Keyword(text); ok {
		return self.emit(kind)
	}
	return self.emit(token.KindIdent)
}

func (self *Lexer) readSymbol(r rune) Result {
	_ = self.scan.advance()
	switch r {
	case '=':
		return self.emit(token.KindAssign)
	case '(':
		return self.emit(token.KindOpenParen)
	case ')':
		return self.emit(token.KindCloseParen)
	case '[':
		return self.emit(token.KindOpenBracket)
	case ']':
		return self.emit(token.KindCloseBracket)
	case '{':
		return self.emit(token.KindOpenBrace)
	case '}':
		return self.emit(token.KindCloseBrace)
	case '<':
		return self.emit(token.KindLeftAngle)
	case '>':
		return self.emit(token.KindRightAngle)
	case '+':
		return self.emit(token.KindAdd)
	case '-':
		if n := self.scan.peek(0); n.IsPresent() && n.Value() == '>' {
			_ = self.scan.advance()
			return self.emit(token.KindArrow)
		}
		return self.emit(token.KindSub)
	case '*':
		return self.emit(token.KindMul)
	case ',':
		return self.emit(token.KindComma)
	case ':':
		return self.emit(token.KindColon)
	default:
		return self.fail(diag.KindUnexpectedCharacter, string(r))
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isWordPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
