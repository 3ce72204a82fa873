// © 2024 Huff Language
//
// SPDX-License-Identifier: Apache-2.0

// Package diag defines the lexical error values yielded by the lexer, an
// accumulating reporter for collect-all error handling, and the caret-style
// renderer used by the tool layer.
package diag

import (
	"fmt"

	"github.com/shunkakinoki/huffc/internal/source"
)

// Kind is the closed taxonomy of lexical faults.
type Kind int

const (
	KindUnexpectedCharacter Kind = iota
	KindUnterminatedString
	KindUnterminatedComment
	KindInvalidNumberLiteral
)

// Code returns the stable diagnostic code for the kind.
func (k Kind) Code() string {
	switch k {
	case KindUnexpectedCharacter:
		return "E0001"
	case KindUnterminatedString:
		return "E0002"
	case KindUnterminatedComment:
		return "E0003"
	case KindInvalidNumberLiteral:
		return "E0004"
	}
	return "E0000"
}

func (k Kind) String() string {
	switch k {
	case KindUnexpectedCharacter:
		return "unexpected character"
	case KindUnterminatedString:
		return "unterminated string literal"
	case KindUnterminatedComment:
		return "unterminated block comment"
	case KindInvalidNumberLiteral:
		return "invalid number literal"
	}
	return "unknown lexical error"
}

// LexicalError is yielded in place of a token when classification fails.
// Detail carries the offending character or the partial literal text, enough
// to render a caret diagnostic without re-slicing the buffer.
type LexicalError struct {
	Kind   Kind
	Span   source.Span
	Detail string
}

func New(kind Kind, span source.Span, detail string) *LexicalError {
	return &LexicalError{
		Kind:   kind,
		Span:   span,
		Detail: detail,
	}
}

func (e *LexicalError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s at %s", e.Kind.Code(), e.Kind, e.Span)
	}
	return fmt.Sprintf("%s: %s %q at %s", e.Kind.Code(), e.Kind, e.Detail, e.Span)
}
