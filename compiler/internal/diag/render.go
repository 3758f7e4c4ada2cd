package diag

import (
	"errors"
	"fmt"
	"strings"
)

type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Report is a renderable diagnostic.
type Report struct {
	Level Level
	Code  string
	Line  int
	Msg   string
}

// FromError converts a *CompileError (possibly wrapped) into a Report.
// ok is false for any other error.
func FromError(err error) (Report, bool) {
	var ce *CompileError
	if !errors.As(err, &ce) {
		return Report{}, false
	}
	return Report{
		Level: LevelError,
		Code:  ce.Code,
		Line:  ce.Line,
		Msg:   fmt.Sprintf("%s: %s", ce.Category, ce.Msg),
	}, true
}

// Render formats r against the source it refers to:
//
//	error[PTE0002]: semantic: y not declared
//	 --> prog.pico:3
//	    2 | BEGIN
//	>   3 |   y = 1
//	    4 | END
//	help: ...
//
// Up to one line of context is shown on each side. Out-of-range lines are
// clamped, so an empty source still renders the header.
func Render(r Report, name, src string) string {
	var b strings.Builder
	if r.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", r.Level, r.Code, r.Msg)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", r.Level, r.Msg)
	}
	if name != "" && r.Line > 0 {
		fmt.Fprintf(&b, " --> %s:%d\n", name, r.Line)
	}

	lines := strings.Split(src, "\n")
	if src != "" && r.Line > 0 {
		line := r.Line
		if line > len(lines) {
			line = len(lines)
		}
		for n := line - 1; n <= line+1; n++ {
			if n < 1 || n > len(lines) {
				continue
			}
			marker := " "
			if n == line {
				marker = ">"
			}
			fmt.Fprintf(&b, "%s%4d | %s\n", marker, n, strings.TrimRight(lines[n-1], "\r"))
		}
	}

	if ce, ok := ByID(r.Code); ok && strings.TrimSpace(ce.Help) != "" {
		fmt.Fprintf(&b, "help: %s\n", ce.Help)
	}
	return b.String()
}
