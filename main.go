// © 2024 Huff Language
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/shunkakinoki/huffc/internal/diag"
	"github.com/shunkakinoki/huffc/internal/lexer"
	"github.com/shunkakinoki/huffc/internal/source"
)

type opts struct {
	DumpTokens bool
	NoColor    bool
}

func main() {
	op := &opts{}
	flags := pflag.NewFlagSet("huffc", pflag.PanicOnError)
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output the token stream as it is produced")
	flags.BoolVar(&op.NoColor, "no-color", false, "Disable colored diagnostics")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "usage: huffc [flags] FILE...")
		os.Exit(2)
	}

	parts := make([]source.Part, 0, len(targets))
	for _, target := range targets {
		content, err := os.ReadFile(target)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		parts = append(parts, source.Part{File: source.FileID(target), Content: string(content)})
	}
	buf := source.Flatten(parts)

	reporter := diag.NewReporter()
	lex := lexer.New(buf)
	for res := lex.Next(); res.IsPresent(); res = lex.Next() {
		if res.Value().Err != nil {
			reporter.Report(res.Value().Err)
			continue
		}
		if op.DumpTokens {
			tok := res.Value().Token
			fmt.Printf("%-12s %s\n", tok.Span, tok)
		}
	}

	for _, e := range reporter.Reported() {
		diag.Render(os.Stderr, buf, e, !op.NoColor)
	}
	if len(reporter.Reported()) > 0 {
		os.Exit(1)
	}
}
