package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/picolang/pico/compiler/internal/diag"
)

// Warning is a recoverable lexical diagnostic. The offending input produced
// no token; scanning continued after it.
type Warning struct {
	Code string // e.g., PLW0002
	Line int
	Msg  string
}

func (w Warning) String() string {
	if w.Code == "" {
		return fmt.Sprintf("warning at line %d: %s", w.Line, w.Msg)
	}
	return fmt.Sprintf("%s at line %d: %s", w.Code, w.Line, w.Msg)
}

// Lexer scans pico source into tokens. Keywords and identifiers are matched
// case-insensitively; comments and whitespace never reach the token stream.
type Lexer struct {
	src []rune
	i   int

	line int

	warns []Warning
}

func New(src string) *Lexer {
	return &Lexer{
		src:  []rune(src),
		line: 1,
	}
}

// Tokenize scans the whole source. The returned slice always ends with
// exactly one TokEOF; problems in the input are reported as warnings.
func Tokenize(src string) ([]Token, []Warning) {
	lx := New(src)
	var toks []Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == TokEOF {
			break
		}
	}
	return toks, lx.Warnings()
}

// Warnings returns the diagnostics collected so far.
func (lx *Lexer) Warnings() []Warning { return lx.warns }

func (lx *Lexer) make(kind TokKind, lex string, line int) Token {
	return Token{Kind: kind, Lex: lex, Line: line}
}

func (lx *Lexer) warn(key string, line int, format string, a ...any) {
	lx.warns = append(lx.warns, Warning{
		Code: diag.Code(diag.DomainLexer, key),
		Line: line,
		Msg:  fmt.Sprintf(format, a...),
	})
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.i >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i], true
}

func (lx *Lexer) peekNext() (rune, bool) {
	if lx.i+1 >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i+1], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.i++
	if ch == '\n' {
		lx.line++
	}
	return ch, true
}

func (lx *Lexer) match(expect rune) bool {
	ch, ok := lx.peek()
	if ok && ch == expect {
		lx.advance()
		return true
	}
	return false
}

func (lx *Lexer) atEOF() bool { return lx.i >= len(lx.src) }

// Next returns the next token. Once the input is exhausted it keeps
// returning TokEOF. It never panics on user input.
func (lx *Lexer) Next() Token {
	for !lx.atEOF() {
		if t, ok := lx.scan(); ok {
			return t
		}
	}
	return lx.make(TokEOF, "", lx.line)
}

// scan consumes one lexical element. ok is false when the element produced
// no token (whitespace, comments, rejected input).
func (lx *Lexer) scan() (Token, bool) {
	startLine := lx.line
	ch, _ := lx.advance()

	switch ch {
	case ' ', '\t', '\r', '\n':
		return Token{}, false
	case '{':
		lx.skipBlockComment(startLine)
		return Token{}, false
	case '%':
		for {
			r, ok := lx.peek()
			if !ok || r == '\n' {
				break
			}
			lx.advance()
		}
		return Token{}, false

	case ':':
		return lx.make(TokColon, ":", startLine), true
	case ';':
		return lx.make(TokSemi, ";", startLine), true
	case ',':
		return lx.make(TokComma, ",", startLine), true
	case '(':
		return lx.make(TokLParen, "(", startLine), true
	case ')':
		return lx.make(TokRParen, ")", startLine), true
	case '+':
		return lx.make(TokPlus, "+", startLine), true
	case '-':
		return lx.make(TokMinus, "-", startLine), true
	case '*':
		return lx.make(TokStar, "*", startLine), true
	case '/':
		return lx.make(TokSlash, "/", startLine), true

	// Two-character operators fall back to their one-character form.
	case '=':
		if lx.match('=') {
			return lx.make(TokEqEq, "==", startLine), true
		}
		return lx.make(TokAssign, "=", startLine), true
	case '!':
		if lx.match('=') {
			return lx.make(TokNe, "!=", startLine), true
		}
		return lx.make(TokBang, "!", startLine), true
	case '>':
		if lx.match('=') {
			return lx.make(TokGe, ">=", startLine), true
		}
		return lx.make(TokGt, ">", startLine), true
	case '<':
		if lx.match('=') {
			return lx.make(TokLe, "<=", startLine), true
		}
		return lx.make(TokLt, "<", startLine), true
	case '&':
		if lx.match('&') {
			return lx.make(TokAnd, "&&", startLine), true
		}
		lx.warn("lone-operator", startLine, "unexpected '&' (did you mean '&&'?)")
		return Token{}, false
	case '|':
		if lx.match('|') {
			return lx.make(TokOr, "||", startLine), true
		}
		lx.warn("lone-operator", startLine, "unexpected '|' (did you mean '||'?)")
		return Token{}, false

	case '\'':
		return lx.scanChar(startLine)
	case '"':
		return lx.scanString(startLine)
	}

	if isDigit(ch) {
		kind, lex := lx.scanNumber(ch)
		return lx.make(kind, lex, startLine), true
	}
	if isIdentStart(ch) {
		lex := lx.scanIdent()
		if kind, ok := keywordKind(lex); ok {
			return lx.make(kind, lex, startLine), true
		}
		return lx.make(TokIdent, lex, startLine), true
	}

	lx.warn("unexpected-char", startLine, "unexpected character %q", ch)
	return Token{}, false
}

// ----- scanning helpers -----

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || isDigit(r)
}

func (lx *Lexer) skipBlockComment(startLine int) {
	for {
		r, ok := lx.advance()
		if !ok {
			lx.warn("unterminated-comment", startLine, "comment opened here is never closed")
			return
		}
		if r == '}' {
			return
		}
	}
}

// scanIdent is entered with the first character already consumed.
func (lx *Lexer) scanIdent() string {
	start := lx.i - 1
	for {
		r, ok := lx.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

// scanNumber reads digits and, when a '.' is followed by at least one
// digit, the fractional part of a float.
func (lx *Lexer) scanNumber(first rune) (TokKind, string) {
	var b strings.Builder
	b.WriteRune(first)
	lx.digits(&b)

	if dot, ok := lx.peek(); ok && dot == '.' {
		if next, ok := lx.peekNext(); ok && isDigit(next) {
			lx.advance()
			b.WriteRune('.')
			lx.digits(&b)
			return TokFloat, b.String()
		}
	}
	return TokInt, b.String()
}

func (lx *Lexer) digits(b *strings.Builder) {
	for {
		r, ok := lx.peek()
		if !ok || !isDigit(r) {
			return
		}
		lx.advance()
		b.WriteRune(r)
	}
}

// scanChar handles 'c'. Only 7-bit characters are accepted.
func (lx *Lexer) scanChar(startLine int) (Token, bool) {
	r, ok := lx.peek()
	if ok && r > unicode.MaxASCII {
		lx.advance()
		lx.match('\'')
		lx.warn("invalid-char", startLine, "character literal %q is outside the 7-bit range", r)
		return Token{}, false
	}
	if ok {
		lx.advance()
	}
	if !lx.match('\'') {
		lx.warn("unterminated-char", startLine, "expected closing ' in character literal")
		return Token{}, false
	}
	return lx.make(TokChar, string(r), startLine), true
}

// scanString reads "..." on a single line. The token lexeme excludes quotes.
func (lx *Lexer) scanString(startLine int) (Token, bool) {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || r == '\n' {
			lx.warn("unterminated-string", startLine, "string literal is not terminated")
			return Token{}, false
		}
		if r == '"' {
			break
		}
		lx.advance()
	}
	text := string(lx.src[start:lx.i])
	lx.advance() // closing "
	return lx.make(TokStr, text, startLine), true
}

// keywordKind maps identifiers to keyword tokens, ignoring case.
func keywordKind(s string) (TokKind, bool) {
	k, ok := keywords[strings.ToLower(s)]
	return k, ok
}
