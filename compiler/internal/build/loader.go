package build

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/picolang/pico/compiler/internal/parser"
	"github.com/picolang/pico/compiler/internal/tokstream"
)

// Ext is the source file extension picked up when a directory is given.
const Ext = ".pico"

// TokExt marks a pre-lexed token stream (see package tokstream). Such files
// are parsed directly and never picked up from a directory.
const TokExt = ".ndjson"

// Unit is one source file that went through the front end.
type Unit struct {
	Path   string // as given or as found in a directory
	Src    string
	Result *parser.Result // nil if the file could not be read
}

// Outcome pairs a unit with its error: nil, a read error, or a
// *diag.CompileError from the parser.
type Outcome struct {
	Unit *Unit
	Err  error
}

// CheckFile reads and checks a single file.
func CheckFile(path string) (*Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Unit{Path: path}, fmt.Errorf("read %s: %w", path, err)
	}
	u := &Unit{Path: path, Src: string(data)}
	if strings.EqualFold(filepath.Ext(path), TokExt) {
		return checkTokens(u)
	}
	res, err := parser.Check(u.Src)
	u.Result = res
	return u, err
}

// checkTokens parses a token stream. Src is left empty since the rows carry
// no source lines to show.
func checkTokens(u *Unit) (*Unit, error) {
	toks, err := tokstream.Decode(strings.NewReader(u.Src))
	u.Src = ""
	if err != nil {
		return u, fmt.Errorf("decode %s: %w", u.Path, err)
	}
	u.Result = &parser.Result{Tokens: len(toks)}
	return u, parser.ParseProgram(toks)
}

// CheckAll checks every file in order and keeps going after failures, so a
// batch reports each file. Directories expand to their *.pico files in
// name order; a file named twice is checked once.
func CheckAll(paths []string) []Outcome {
	var out []Outcome
	var seen []string
	for _, p := range Expand(paths) {
		dup := false
		for _, s := range seen {
			if same(s, p) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen = append(seen, p)
		u, err := CheckFile(p)
		out = append(out, Outcome{Unit: u, Err: err})
	}
	return out
}

// Expand replaces directories with the sources they contain. Anything that
// is not a directory is passed through untouched so a missing file surfaces
// as a read error.
func Expand(paths []string) []string {
	var out []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil || !fi.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			out = append(out, p)
			continue
		}
		var names []string
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), Ext) {
				names = append(names, e.Name())
			}
		}
		sort.Slice(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })
		for _, n := range names {
			out = append(out, filepath.Join(p, n))
		}
	}
	return out
}

// naturalLess orders "example2" before "example10".
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		da, ra := leadingDigits(a)
		db, rb := leadingDigits(b)
		if da != "" && db != "" {
			ta, tb := strings.TrimLeft(da, "0"), strings.TrimLeft(db, "0")
			if len(ta) != len(tb) {
				return len(ta) < len(tb)
			}
			if ta != tb {
				return ta < tb
			}
			a, b = ra, rb
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func leadingDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

func same(a, b string) bool {
	aa, _ := filepath.EvalSymlinks(a)
	bb, _ := filepath.EvalSymlinks(b)
	if aa == "" {
		aa, _ = filepath.Abs(a)
	}
	if bb == "" {
		bb, _ = filepath.Abs(b)
	}
	return aa == bb
}
