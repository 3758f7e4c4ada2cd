// Package tokstream moves token streams in and out of the process as
// NDJSON, one token per line:
//
//	{"kind":"Ident","text":"x","line":3}
//	{"kind":"EOF","text":"","line":9}
//
// Kinds use lexer.TokKind names. A stream produced by `picoc lex --json`
// can be edited or generated by another tool and fed back to `picoc check`.
package tokstream

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/picolang/pico/compiler/internal/lexer"
)

// Row is the wire form of one token.
type Row struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Line int    `json:"line"`
}

// Encode drains src to w, one JSON object per line, ending with the EOF row.
func Encode(w io.Writer, src lexer.Source) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for {
		t := src.Next()
		if err := enc.Encode(Row{Kind: t.Kind.String(), Text: t.Lex, Line: t.Line}); err != nil {
			return err
		}
		if t.Kind == lexer.TokEOF {
			return nil
		}
	}
}

// Decode reads a stream written by Encode. Blank lines and a leading BOM
// are skipped; an unknown kind, a malformed row or any row after an EOF row
// is an error naming its line.
func Decode(r io.Reader) ([]lexer.Token, error) {
	var toks []lexer.Token

	sc := bufio.NewScanner(r)
	// Long string literals make long rows.
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	lineNo := 0
	sawEOF := false
	for sc.Scan() {
		lineNo++
		raw := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if raw == "" {
			continue
		}
		var row Row
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			return toks, fmt.Errorf("line %d: %w", lineNo, err)
		}
		k, ok := kindByName(row.Kind)
		if !ok {
			return toks, fmt.Errorf("line %d: unknown token kind %q", lineNo, row.Kind)
		}
		if sawEOF {
			return toks, fmt.Errorf("line %d: %s row after EOF", lineNo, row.Kind)
		}
		sawEOF = k == lexer.TokEOF
		line := row.Line
		if line < 1 {
			line = 1
		}
		toks = append(toks, lexer.Token{Kind: k, Lex: row.Text, Line: line})
	}
	if err := sc.Err(); err != nil {
		return toks, err
	}
	return toks, nil
}

var (
	kindsOnce sync.Once
	kinds     map[string]lexer.TokKind
)

// kindByName maps a TokKind name, any case, back to its kind.
func kindByName(name string) (lexer.TokKind, bool) {
	kindsOnce.Do(func() {
		kinds = map[string]lexer.TokKind{}
		for k := lexer.TokKind(0); ; k++ {
			s := k.String()
			if strings.HasPrefix(s, "TokKind(") {
				break
			}
			kinds[strings.ToLower(s)] = k
		}
	})
	k, ok := kinds[strings.ToLower(name)]
	return k, ok
}
