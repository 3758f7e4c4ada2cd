package build

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/picolang/pico/compiler/internal/diag"
)

const okProgram = "PROGRAM int: x; BEGIN x = 1 END\n"

func writeFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(src), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"example2.pico", "example10.pico", true},
		{"example10.pico", "example2.pico", false},
		{"a.pico", "b.pico", true},
		{"ex02.pico", "ex3.pico", true},
		{"ex", "ex1", true},
		{"same.pico", "same.pico", false},
	}
	for _, c := range cases {
		t.Run(c.a+"<"+c.b, func(t *testing.T) {
			if got := naturalLess(c.a, c.b); got != c.want {
				t.Fatalf("naturalLess(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestExpandDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"p10.pico", "p2.pico", "notes.txt", "P1.PICO"} {
		writeFile(t, dir, n, okProgram)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.pico"), 0o755); err != nil {
		t.Fatal(err)
	}

	got := Expand([]string{dir, "missing.pico"})
	want := []string{
		filepath.Join(dir, "P1.PICO"),
		filepath.Join(dir, "p2.pico"),
		filepath.Join(dir, "p10.pico"),
		"missing.pico",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}
}

func TestCheckAllKeepsGoing(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.pico", okProgram)
	bad := writeFile(t, dir, "bad.pico", "PROGRAM BEGIN y = 1 END\n")
	missing := filepath.Join(dir, "missing.pico")

	out := CheckAll([]string{bad, missing, good, good})
	if len(out) != 3 {
		t.Fatalf("got %d outcomes, want 3 (duplicate dropped)", len(out))
	}

	var ce *diag.CompileError
	if !errors.As(out[0].Err, &ce) || ce.Code != "PTE0002" {
		t.Fatalf("bad.pico err = %v, want PTE0002", out[0].Err)
	}
	if out[0].Unit.Result == nil || out[0].Unit.Src == "" {
		t.Fatalf("bad.pico unit not filled: %+v", out[0].Unit)
	}

	if out[1].Err == nil || !strings.HasPrefix(out[1].Err.Error(), "read "+missing) {
		t.Fatalf("missing err = %v", out[1].Err)
	}
	if !errors.Is(out[1].Err, os.ErrNotExist) {
		t.Fatalf("read error does not wrap ErrNotExist: %v", out[1].Err)
	}
	if out[1].Unit.Result != nil {
		t.Fatalf("unread file has a result")
	}

	if out[2].Err != nil || out[2].Unit.Path != good {
		t.Fatalf("good.pico outcome = %+v", out[2])
	}
}

func TestCheckFileWarnings(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "w.pico", "PROGRAM int: x; BEGIN x = 1 @ END\n")
	u, err := CheckFile(p)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if len(u.Result.Warnings) != 1 || u.Result.Warnings[0].Code != "PLW0002" {
		t.Fatalf("warnings = %v", u.Result.Warnings)
	}
}

func TestCheckFileTokenStream(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.ndjson", `{"kind":"Program","text":"PROGRAM","line":1}
{"kind":"IntType","text":"int","line":1}
{"kind":"Colon","text":":","line":1}
{"kind":"Ident","text":"x","line":1}
{"kind":"Semi","text":";","line":1}
{"kind":"Begin","text":"BEGIN","line":2}
{"kind":"Ident","text":"x","line":3}
{"kind":"Assign","text":"=","line":3}
{"kind":"Int","text":"1","line":3}
{"kind":"End","text":"END","line":4}
`)
	u, err := CheckFile(good)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if u.Src != "" || u.Result.Tokens != 10 {
		t.Fatalf("unit = %+v", u)
	}

	bad := writeFile(t, dir, "bad.ndjson", "not json\n")
	if _, err := CheckFile(bad); err == nil || !strings.HasPrefix(err.Error(), "decode "+bad) {
		t.Fatalf("err = %v", err)
	}

	// Directories only contribute sources.
	if got := Expand([]string{dir}); len(got) != 0 {
		t.Fatalf("Expand picked up %v", got)
	}
}
