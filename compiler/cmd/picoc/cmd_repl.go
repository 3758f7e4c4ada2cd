package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/picolang/pico/compiler/internal/diag"
	"github.com/picolang/pico/compiler/internal/parser"
	"github.com/picolang/pico/compiler/internal/term"
	"github.com/picolang/pico/compiler/internal/version"
)

/* ---------- repl ---------- */

const (
	historyFile = ".pico_history"
	promptMain  = "pico> "
	promptCont  = "....> "
	replName    = "<repl>"
)

func cmdRepl(_ []string) int {
	term.Printf("%s (type :help for commands)\n", version.String())

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath, ok := historyPath(os.UserHomeDir); ok {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	replLoop(ln.Prompt, ln.AppendHistory)
	return 0
}

// historyPath places the history file in the home directory. Without one
// there is no history.
func historyPath(homeDir func() (string, error)) (string, bool) {
	home, err := homeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, historyFile), true
}

// promptFunc reads one line after showing prompt. io.EOF ends the session.
type promptFunc func(prompt string) (string, error)

// replLoop reads programs until EOF or :quit and reports each one.
func replLoop(prompt promptFunc, remember func(string)) {
	for {
		src, ok := readProgram(prompt)
		if !ok {
			term.Println()
			return
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return
			case ":help":
				term.Println("Type a program from PROGRAM to END; it is checked once complete.")
				term.Println("  :reset  discard a partly typed program")
				term.Println("  :quit   leave the repl")
			case ":reset":
				term.Println("nothing to discard")
			default:
				term.Println("unknown command. Type :help for commands.")
			}
			continue
		}
		if remember != nil {
			remember(strings.ReplaceAll(src, "\n", " "))
		}
		reportProgram(src)
	}
}

// readProgram collects lines until the source either checks or fails for a
// reason other than running out of input. A line starting with ':' at the
// main prompt is returned as a command. ok is false at end of input.
func readProgram(prompt promptFunc) (string, bool) {
	var b strings.Builder
	for {
		p := promptMain
		if b.Len() > 0 {
			p = promptCont
		}
		line, err := prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if err != nil {
			return "", false
		}

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, true
		}
		if b.Len() > 0 && strings.EqualFold(strings.TrimSpace(line), ":reset") {
			b.Reset()
			term.Println("discarded")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			return src, true
		}
		if _, err := parser.Check(src); err != nil && parser.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

func reportProgram(src string) {
	res, err := parser.Check(src)
	if res != nil {
		printWarnings(replName, src, res.Warnings)
	}
	if err != nil {
		if r, ok := diag.FromError(err); ok {
			term.Eprintf("%s", term.Red(diag.Render(r, replName, src)))
		} else {
			term.Eprintf("%s\n", term.Red(err.Error()))
		}
		return
	}
	term.Printf("%s\n", term.Green("ok"))
}
