package main

import "github.com/picolang/pico/compiler/internal/term"

func usage() {
	term.Eprintln("picoc: pico front end (lexer, parser, type checker)")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  picoc <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                   Print version")
	term.Eprintln("  help                                      Show this help")
	term.Eprintln("  lex [--no-color] [--json] <file>          Print the token stream and lexical warnings")
	term.Eprintln("  check [--no-color] [--werror] [--quiet] <file|dir>...")
	term.Eprintln("                                            Check each program, continuing after failures")
	term.Eprintln("  repl                                      Type programs interactively; each is checked at its final END")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - A directory argument expands to its *.pico files in natural name order.")
	term.Eprintln("  - check also accepts *.ndjson token streams as written by lex --json.")
	term.Eprintln("  - Exit status: 0 all ok, 1 some program failed, 2 usage error.")
}
