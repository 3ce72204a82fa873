// © 2024 Huff Language
//
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/shunkakinoki/huffc/internal/source"
)

// Render writes a caret-style diagnostic for the error to w:
//
//	contract.huff:3:15: error[E0001]: unexpected character '~'
//	    #define macro ~MAIN()
//	                  ^
//
// The location header names the origin file recorded on the span, falling
// back to "<input>" for spans with no provenance. Line and column are
// computed on demand from the buffer; the error value itself stays
// offset-based.
func Render(w io.Writer, buf *source.Buffer, e *LexicalError, colorize bool) {
	header := color.New(color.FgRed, color.Bold)
	location := color.New(color.Bold)
	caret := color.New(color.FgRed)
	if !colorize {
		header.DisableColor()
		location.DisableColor()
		caret.DisableColor()
	}

	origin := string(e.Span.File.OrElse(source.FileID("<input>")))
	line, col := buf.LineCol(e.Span.Start)
	_, _ = location.Fprintf(w, "%s:%d:%d: ", origin, line, col)
	_, _ = header.Fprintf(w, "error[%s]", e.Kind.Code())
	if e.Detail == "" {
		_, _ = fmt.Fprintf(w, ": %s\n", e.Kind)
	} else {
		_, _ = fmt.Fprintf(w, ": %s %q\n", e.Kind, e.Detail)
	}

	text, start := buf.LineAt(e.Span.Start)
	_, _ = fmt.Fprintf(w, "    %s\n", text)

	// The caret underlines the part of the span that falls on its first
	// line; widths are measured in display cells so multi-byte source still
	// lines up.
	pad := runewidth.StringWidth(text[:e.Span.Start-start])
	end := e.Span.End
	if end > start+len(text) {
		end = start + len(text)
	}
	width := runewidth.StringWidth(text[e.Span.Start-start : end-start])
	if width < 1 {
		width = 1
	}
	_, _ = fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), caret.Sprint(strings.Repeat("^", width)))
}
