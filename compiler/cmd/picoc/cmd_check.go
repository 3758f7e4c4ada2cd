package main

import (
	"flag"

	"github.com/picolang/pico/compiler/internal/build"
	"github.com/picolang/pico/compiler/internal/diag"
	"github.com/picolang/pico/compiler/internal/term"
)

/* ---------- check ---------- */

func cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(term.Stderr)
	noColor := fs.Bool("no-color", false, "disable ANSI colors")
	werror := fs.Bool("werror", false, "treat lexical warnings as errors")
	quiet := fs.Bool("quiet", false, "only report failures")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		term.Eprintln("usage: picoc check [--no-color] [--werror] [--quiet] <file|dir>...")
		return 2
	}
	if *noColor {
		term.Color = false
	}

	outcomes := build.CheckAll(fs.Args())
	if len(outcomes) == 0 {
		term.Eprintln("no .pico files found")
		return 1
	}

	failed := 0
	for _, o := range outcomes {
		u := o.Unit
		nwarn := 0
		if u.Result != nil {
			nwarn = len(u.Result.Warnings)
			if !*quiet || *werror {
				printWarnings(u.Path, u.Src, u.Result.Warnings)
			}
		}
		switch {
		case o.Err != nil:
			failed++
			if r, ok := diag.FromError(o.Err); ok {
				term.Eprintf("%s", term.Red(diag.Render(r, u.Path, u.Src)))
			} else {
				term.Eprintf("%s\n", term.Red(o.Err.Error()))
			}
		case *werror && nwarn > 0:
			failed++
			term.Eprintf("%s: %d warning(s) treated as errors\n", u.Path, nwarn)
		case !*quiet:
			term.Printf("%s: %s\n", u.Path, term.Green("ok"))
		}
	}

	if !*quiet {
		term.Printf("%d checked, %d failed\n", len(outcomes), failed)
	}
	if failed > 0 {
		return 1
	}
	return 0
}
