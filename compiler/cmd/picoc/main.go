package main

import (
	"flag"
	"os"

	"github.com/picolang/pico/compiler/internal/term"
	"github.com/picolang/pico/compiler/internal/version"
)

/* ---------- main ---------- */

func main() {
	flag.Usage = usage
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	switch args[0] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
		return 0
	case "help", "--help", "-h":
		usage()
		return 0
	case "lex":
		return cmdLex(args[1:])
	case "check":
		return cmdCheck(args[1:])
	case "repl":
		return cmdRepl(args[1:])
	default:
		term.Eprintf("unknown command: %s\n\n", args[0])
		usage()
		return 2
	}
}
