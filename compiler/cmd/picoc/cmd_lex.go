package main

import (
	"flag"
	"os"
	"strings"

	"github.com/picolang/pico/compiler/internal/diag"
	"github.com/picolang/pico/compiler/internal/lexer"
	"github.com/picolang/pico/compiler/internal/term"
	"github.com/picolang/pico/compiler/internal/tokstream"
)

/* ---------- lex ---------- */

func cmdLex(args []string) int {
	fs := flag.NewFlagSet("lex", flag.ContinueOnError)
	fs.SetOutput(term.Stderr)
	noColor := fs.Bool("no-color", false, "disable ANSI colors")
	asJSON := fs.Bool("json", false, "write tokens as NDJSON rows")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		term.Eprintln("usage: picoc lex [--no-color] [--json] <file.pico>")
		return 2
	}
	if *noColor {
		term.Color = false
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		term.Eprintf("read %s: %v\n", path, err)
		return 1
	}
	var warns []lexer.Warning
	if *asJSON {
		lx := lexer.New(string(data))
		if err := tokstream.Encode(term.Stdout, lx); err != nil {
			term.Eprintf("write tokens: %v\n", err)
			return 1
		}
		warns = lx.Warnings()
	} else {
		var toks []lexer.Token
		toks, warns = lexer.Tokenize(string(data))
		term.Printf("%s", dumpTokens(toks))
	}
	printWarnings(path, string(data), warns)
	return 0
}

// dumpTokens renders one token per line: line, kind, quoted lexeme.
func dumpTokens(toks []lexer.Token) string {
	var b strings.Builder
	for _, t := range toks {
		lex := t.Lex
		if len(lex) > 40 {
			lex = lex[:37] + "..."
		}
		if lex == "" {
			term.Bprintf(&b, "%4d  %-9s\n", t.Line, t.Kind)
		} else {
			term.Bprintf(&b, "%4d  %-9s  %q\n", t.Line, t.Kind, lex)
		}
	}
	return b.String()
}

func printWarnings(name, src string, warns []lexer.Warning) {
	for _, w := range warns {
		r := diag.Report{Level: diag.LevelWarning, Code: w.Code, Line: w.Line, Msg: w.Msg}
		term.Eprintf("%s", term.Yellow(diag.Render(r, name, src)))
	}
}
