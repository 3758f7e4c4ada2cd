package term

import (
	"fmt"
	"os"
)

// Stdout/Stderr print helpers that ignore (n, err) to satisfy linters.
// They write through Stdout/Stderr so the CLI tests can capture output.
func Printf(format string, a ...any)  { Wprintf(Stdout, format, a...) }
func Println(a ...any)                { _, _ = fmt.Fprintln(Stdout, a...) }
func Eprintf(format string, a ...any) { Wprintf(Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(Stderr, a...) }

// Color toggles ANSI colors for Red/Yellow/Green. The CLI turns it off
// for --no-color and when stderr is not a terminal.
var Color = isTerminal(os.Stderr)

func paint(code, s string) string {
	if !Color {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func Red(s string) string    { return paint("31", s) }
func Yellow(s string) string { return paint("33", s) }
func Green(s string) string  { return paint("32", s) }

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
