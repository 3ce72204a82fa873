// © 2024 Huff Language
//
// SPDX-License-Identifier: Apache-2.0

// Package token defines the token model produced by the lexer: the closed
// set of token kinds, the keyword and builtin lookup tables, and the Token
// value itself.
package token

import (
	"fmt"
	"strconv"

	"github.com/shunkakinoki/huffc/internal/source"
)

// Kind is the closed set of token classifications.
type Kind int

const (
	// KindEOF is the synthetic end-of-input marker, yielded exactly once.
	KindEOF Kind = iota
	// KindWhitespace is a maximal run of spaces, tabs, and line breaks.
	KindWhitespace
	// KindComment is a line or block comment, markers included.
	KindComment
	// KindIdent is a user-defined identifier.
	KindIdent
	// KindStr is a quoted string literal, quotes included.
	KindStr
	// KindHex is a 0x-prefixed hexadecimal literal.
	KindHex
	// KindDec is a decimal integer literal.
	KindDec

	// Keywords.

	KindDefine
	KindInclude
	KindMacro
	KindFn
	KindFunction
	KindEvent
	KindConstant
	KindErrorDef
	KindTakes
	KindReturns
	KindView
	KindPure
	KindPayable
	KindNonPayable
	KindIndexed
	KindJumpTable
	KindJumpTablePacked
	KindCodeTable

	// Builtins. Compile-time-resolved values such as function selectors and
	// table sizes.

	KindBuiltinFuncSig
	KindBuiltinEventHash
	KindBuiltinError
	KindBuiltinRightPad
	KindBuiltinCodeSize
	KindBuiltinTableSize
	KindBuiltinTableStart

	// Punctuation.

	KindAssign
	KindArrow
	KindOpenParen
	KindCloseParen
	KindOpenBracket
	KindCloseBracket
	KindOpenBrace
	KindCloseBrace
	KindLeftAngle
	KindRightAngle
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindComma
	KindColon
)

var keywords = map[string]Kind{
	"#define":           KindDefine,
	"#include":          KindInclude,
	"macro":             KindMacro,
	"fn":                KindFn,
	"function":          KindFunction,
	"event":             KindEvent,
	"constant":          KindConstant,
	"error":             KindErrorDef,
	"takes":             KindTakes,
	"returns":           KindReturns,
	"view":              KindView,
	"pure":              KindPure,
	"payable":           KindPayable,
	"nonpayable":        KindNonPayable,
	"indexed":           KindIndexed,
	"jumptable":         KindJumpTable,
	"jumptable__packed": KindJumpTablePacked,
	"table":             KindCodeTable,
}

var builtins = map[string]Kind{
	"__FUNC_SIG":   KindBuiltinFuncSig,
	"__EVENT_HASH": KindBuiltinEventHash,
	"__ERROR":      KindBuiltinError,
	"__RIGHTPAD":   KindBuiltinRightPad,
	"__codesize":   KindBuiltinCodeSize,
	"__tablesize":  KindBuiltinTableSize,
	"__tablestart": KindBuiltinTableStart,
}

// Keyword looks the exact token text up in the keyword table. Matching is
// whole-token and case-sensitive; a keyword that is a strict prefix of a
// longer identifier never matches because the lexer only calls this with a
// maximal identifier run.
func Keyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// Builtin looks the exact token text up in the builtin table. Unmatched
// __-prefixed text is not an error here; whether it means anything is a
// semantic question for later stages.
func Builtin(text string) (Kind, bool) {
	k, ok := builtins[text]
	return k, ok
}

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindWhitespace:
		return "Whitespace"
	case KindComment:
		return "Comment"
	case KindIdent:
		return "Ident"
	case KindStr:
		return "Str"
	case KindHex:
		return "Hex"
	case KindDec:
		return "Dec"
	case KindDefine:
		return "#define"
	case KindInclude:
		return "#include"
	case KindMacro:
		return "macro"
	case KindFn:
		return "fn"
	case KindFunction:
		return "function"
	case KindEvent:
		return "event"
	case KindConstant:
		return "constant"
	case KindErrorDef:
		return "error"
	case KindTakes:
		return "takes"
	case KindReturns:
		return "returns"
	case KindView:
		return "view"
	case KindPure:
		return "pure"
	case KindPayable:
		return "payable"
	case KindNonPayable:
		return "nonpayable"
	case KindIndexed:
		return "indexed"
	case KindJumpTable:
		return "jumptable"
	case KindJumpTablePacked:
		return "jumptable__packed"
	case KindCodeTable:
		return "table"
	case KindBuiltinFuncSig:
		return "__FUNC_SIG"
	case KindBuiltinEventHash:
		return "__EVENT_HASH"
	case KindBuiltinError:
		return "__ERROR"
	case KindBuiltinRightPad:
		return "__RIGHTPAD"
	case KindBuiltinCodeSize:
		return "__codesize"
	case KindBuiltinTableSize:
		return "__tablesize"
	case KindBuiltinTableStart:
		return "__tablestart"
	case KindAssign:
		return "="
	case KindArrow:
		return "->"
	case KindOpenParen:
		return "("
	case KindCloseParen:
		return ")"
	case KindOpenBracket:
		return "["
	case KindCloseBracket:
		return "]"
	case KindOpenBrace:
		return "{"
	case KindCloseBrace:
		return "}"
	case KindLeftAngle:
		return "<"
	case KindRightAngle:
		return ">"
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindComma:
		return ","
	case KindColon:
		return ":"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsBuiltin reports whether the kind is one of the builtin references.
func (k Kind) IsBuiltin() bool {
	return k >= KindBuiltinFuncSig && k <= KindBuiltinTableStart
}

// IsTrivia reports whether the kind carries no syntactic meaning for the
// parser. The lexer still yields trivia so the token stream reproduces the
// source byte for byte.
func (k Kind) IsTrivia() bool {
	return k == KindWhitespace || k == KindComment
}

// Token is a single classified region of the source buffer. Text is always
// exactly the bytes covered by Span; it is carried on the token so consumers
// do not need the buffer in hand for the common cases.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

func New(kind Kind, span source.Span, text string) *Token {
	return &Token{
		Kind: kind,
		Span: span,
		Text: text,
	}
}

func (t *Token) String() string {
	switch t.Kind {
	case KindIdent, KindStr, KindHex, KindDec, KindComment:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
	return t.Kind.String()
}

// Num parses the numeric value of a Dec or Hex token.
func Num(t *Token) (uint64, error) {
	switch t.Kind {
	case KindDec:
		return strconv.ParseUint(t.Text, 10, 64)
	case KindHex:
		return strconv.ParseUint(t.Text[len("0x"):], 16, 64)
	}
	return 0, fmt.Errorf("token %s is not numeric", t)
}
