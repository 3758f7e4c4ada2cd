package term

import (
	"fmt"
	"io"
	"os"
)

// Destinations for the print helpers; tests swap them for buffers.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Wprintf writes formatted text to any io.Writer and ignores (n, err)
// so linters don't complain about unhandled fmt.Fprintf results.
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }
