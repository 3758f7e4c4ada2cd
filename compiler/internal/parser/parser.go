package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/picolang/pico/compiler/internal/check"
	"github.com/picolang/pico/compiler/internal/diag"
	"github.com/picolang/pico/compiler/internal/lexer"
)

// Parser checks one tokenized program in a single top-down pass. No tree is
// built: every rule returns the type it synthesizes and the first error
// aborts the parse.
type Parser struct {
	toks []lexer.Token

	cur  *lexer.Cursor
	tok  lexer.Token
	syms *check.Table

	// pending holds an undeclared-name error found inside an expression;
	// it is raised once the enclosing statement or condition is parsed.
	pending *diag.CompileError
}

func New(toks []lexer.Token) *Parser {
	return &Parser{toks: toks}
}

// ParseProgram is shorthand for New(toks).ParseProgram().
func ParseProgram(toks []lexer.Token) error {
	return New(toks).ParseProgram()
}

// Result describes a source that went through Check.
type Result struct {
	Tokens   int // EOF included
	Warnings []lexer.Warning
}

// Check tokenizes src and parses the result. Lexical warnings are returned
// even when the parse fails.
func Check(src string) (*Result, error) {
	toks, warns := lexer.Tokenize(src)
	res := &Result{Tokens: len(toks), Warnings: warns}
	return res, ParseProgram(toks)
}

func (p *Parser) next()                   { p.cur.Next(); p.tok = p.cur.Peek() }
func (p *Parser) at(k lexer.TokKind) bool { return p.tok.Kind == k }
func (p *Parser) accept(k lexer.TokKind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}
func (p *Parser) expect(k lexer.TokKind) (lexer.Token, error) {
	if !p.at(k) {
		return p.tok, p.syntaxErr("unexpected-token", "expected %s, found %s", spell(k), describe(p.tok))
	}
	t := p.tok
	p.next()
	return t, nil
}

// syntaxErr reports an unexpected lookahead token. An error raised at
// TokEOF is marked incomplete: more input could still fix it.
func (p *Parser) syntaxErr(key, format string, a ...any) *diag.CompileError {
	err := diag.Syntaxf(key, p.tok.Line, format, a...)
	err.Incomplete = p.at(lexer.TokEOF)
	return err
}

// IsIncomplete reports whether err is a syntax error caused by the input
// ending early.
func IsIncomplete(err error) bool {
	var ce *diag.CompileError
	return errors.As(err, &ce) && ce.Incomplete
}

// deferErr records err unless an earlier expression error is already pending.
func (p *Parser) deferErr(err *diag.CompileError) {
	if p.pending == nil {
		p.pending = err
	}
}

// flush returns and clears the pending expression error, if any.
func (p *Parser) flush() error {
	if p.pending == nil {
		return nil
	}
	err := p.pending
	p.pending = nil
	return err
}

// fail reports err, unless an earlier error from the same expression is
// still pending; source order wins.
func (p *Parser) fail(err *diag.CompileError) error {
	if pend := p.flush(); pend != nil {
		return pend
	}
	return err
}

// block runs fn inside a fresh scope.
func (p *Parser) block(fn func() error) error {
	p.syms.EnterScope()
	defer p.syms.ExitScope()
	return fn()
}

// ParseProgram checks the whole token sequence.
//
//	program ::= PROGRAM opt-decl-list BEGIN stmt-list END
func (p *Parser) ParseProgram() error {
	p.cur = lexer.NewCursor(p.toks)
	p.tok = p.cur.Peek()
	p.syms = check.NewTable()
	p.pending = nil

	if _, err := p.expect(lexer.TokProgram); err != nil {
		return err
	}
	err := p.block(func() error {
		if err := p.parseOptDeclList(); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokBegin); err != nil {
			return err
		}
		if err := p.parseStmtList(); err != nil {
			return err
		}
		_, err := p.expect(lexer.TokEnd)
		return err
	})
	if err != nil {
		// An undeclared name seen earlier in the same expression comes first.
		if pend := p.flush(); pend != nil {
			return pend
		}
		return err
	}
	if !p.at(lexer.TokEOF) {
		return p.syntaxErr("trailing-input", "unexpected %s after END of program", describe(p.tok))
	}
	// A hand-built or decoded slice may carry tokens past an inner EOF.
	if i := p.cur.Pos() + 1; i < p.cur.Len() && i < len(p.toks) {
		extra := p.toks[i]
		return diag.Syntaxf("trailing-input", extra.Line, "unexpected %s after end of input", describe(extra))
	}
	return nil
}

/* ---------- declarations ---------- */

// opt-decl-list ::= decl-list | ε
func (p *Parser) parseOptDeclList() error {
	for p.tok.Kind.IsType() {
		if err := p.parseDecl(); err != nil {
			return err
		}
	}
	return nil
}

// decl ::= type ':' ident-list ';'
func (p *Parser) parseDecl() error {
	typ, err := p.parseType()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokColon); err != nil {
		return err
	}
	ids, err := p.parseIdentList()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokSemi); err != nil {
		return err
	}
	for _, id := range ids {
		if !p.syms.Declare(id.Lex, typ) {
			return diag.Semanticf("redeclared", id.Line, "redeclaration of %s", id.Lex)
		}
	}
	return nil
}

// ident-list ::= IDENT (',' IDENT)*
func (p *Parser) parseIdentList() ([]lexer.Token, error) {
	var ids []lexer.Token
	for {
		id, err := p.expect(lexer.TokIdent)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		if !p.accept(lexer.TokComma) {
			return ids, nil
		}
	}
}

// type ::= INT | FLOAT | CHAR
func (p *Parser) parseType() (check.Type, error) {
	var typ check.Type
	switch p.tok.Kind {
	case lexer.TokIntType:
		typ = check.TypeInt
	case lexer.TokFloatType:
		typ = check.TypeFloat
	case lexer.TokCharType:
		typ = check.TypeChar
	default:
		return check.TypeError, p.syntaxErr("expected-type", "expected int, float or char, found %s", describe(p.tok))
	}
	p.next()
	return typ, nil
}

/* ---------- statements ---------- */

// stmt-list ::= stmt (';' stmt)*
func (p *Parser) parseStmtList() error {
	if err := p.parseStmt(); err != nil {
		return err
	}
	for p.accept(lexer.TokSemi) {
		if err := p.parseStmt(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseStmt() error {
	switch p.tok.Kind {
	case lexer.TokIdent:
		return p.parseAssign()
	case lexer.TokIf:
		return p.parseIf()
	case lexer.TokWhile:
		return p.parseWhile()
	case lexer.TokRepeat:
		return p.parseRepeat()
	case lexer.TokIn:
		return p.parseRead()
	case lexer.TokOut:
		return p.parseWrite()
	default:
		return p.syntaxErr("invalid-statement", "invalid statement starting with %s", describe(p.tok))
	}
}

// assign ::= IDENT '=' simple-expr
func (p *Parser) parseAssign() error {
	name := p.tok
	if _, ok := p.syms.Lookup(name.Lex); !ok {
		return diag.Semanticf("undeclared", name.Line, "%s not declared", name.Lex)
	}
	p.next()
	if _, err := p.expect(lexer.TokAssign); err != nil {
		return err
	}
	if _, err := p.parseSimpleExpr(); err != nil {
		return err
	}
	return p.flush()
}

// if ::= IF condition THEN opt-decl-list stmt-list (END | ELSE decl stmt-list END)
func (p *Parser) parseIf() error {
	p.next()
	if err := p.parseCondition(); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokThen); err != nil {
		return err
	}
	err := p.block(func() error {
		if err := p.parseOptDeclList(); err != nil {
			return err
		}
		return p.parseStmtList()
	})
	if err != nil {
		return err
	}

	switch {
	case p.accept(lexer.TokEnd):
		return nil
	case p.accept(lexer.TokElse):
		err := p.block(func() error {
			// The else arm takes exactly one declaration.
			if err := p.parseDecl(); err != nil {
				return err
			}
			return p.parseStmtList()
		})
		if err != nil {
			return err
		}
		_, err = p.expect(lexer.TokEnd)
		return err
	default:
		return p.syntaxErr("expected-end-or-else", "expected END or ELSE, found %s", describe(p.tok))
	}
}

// while ::= WHILE condition DO opt-decl-list stmt-list END
func (p *Parser) parseWhile() error {
	p.next()
	if err := p.parseCondition(); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokDo); err != nil {
		return err
	}
	return p.block(func() error {
		if err := p.parseOptDeclList(); err != nil {
			return err
		}
		if err := p.parseStmtList(); err != nil {
			return err
		}
		_, err := p.expect(lexer.TokEnd)
		return err
	})
}

// repeat ::= REPEAT opt-decl-list stmt-list UNTIL condition
//
// The body's declarations stay visible in the UNTIL condition.
func (p *Parser) parseRepeat() error {
	p.next()
	return p.block(func() error {
		if err := p.parseOptDeclList(); err != nil {
			return err
		}
		if err := p.parseStmtList(); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokUntil); err != nil {
			return err
		}
		return p.parseCondition()
	})
}

// read ::= IN '(' IDENT ')'
func (p *Parser) parseRead() error {
	p.next()
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return err
	}
	id, err := p.expect(lexer.TokIdent)
	if err != nil {
		return err
	}
	if _, ok := p.syms.Lookup(id.Lex); !ok {
		return diag.Semanticf("undeclared", id.Line, "%s not declared", id.Lex)
	}
	_, err = p.expect(lexer.TokRParen)
	return err
}

// write ::= OUT '(' writable ')'
// writable ::= STRING | simple-expr
//
// A character constant is read through simple-expr, which accepts it too.
func (p *Parser) parseWrite() error {
	out := p.tok
	p.next()
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return err
	}

	var typ check.Type
	if p.at(lexer.TokStr) {
		p.next()
		typ = check.TypeString
	} else {
		t, err := p.parseSimpleExpr()
		if err != nil {
			return err
		}
		if err := p.flush(); err != nil {
			return err
		}
		typ = t
	}
	if !check.Writable(typ) {
		return diag.Semanticf("write", out.Line, "type %s cannot be written", typ)
	}
	_, err := p.expect(lexer.TokRParen)
	return err
}

// condition ::= expression, which must be boolean.
func (p *Parser) parseCondition() error {
	start := p.tok
	typ, err := p.parseExpression()
	if err != nil {
		return err
	}
	if err := p.flush(); err != nil {
		return err
	}
	if typ != check.TypeBoolean {
		return diag.Semanticf("condition", start.Line, "condition must be boolean, got %s", typ)
	}
	return nil
}

/* ---------- token text ---------- */

var spelled = map[lexer.TokKind]string{
	lexer.TokEOF:    "end of input",
	lexer.TokIdent:  "identifier",
	lexer.TokInt:    "integer constant",
	lexer.TokFloat:  "float constant",
	lexer.TokChar:   "character constant",
	lexer.TokStr:    "string",
	lexer.TokColon:  "':'",
	lexer.TokSemi:   "';'",
	lexer.TokComma:  "','",
	lexer.TokAssign: "'='",
	lexer.TokLParen: "'('",
	lexer.TokRParen: "')'",
}

// spell names a token kind the way a user would write it.
func spell(k lexer.TokKind) string {
	if s, ok := spelled[k]; ok {
		return s
	}
	return strings.ToUpper(k.String())
}

// describe names the token actually found.
func describe(t lexer.Token) string {
	switch t.Kind {
	case lexer.TokEOF:
		return "end of input"
	case lexer.TokIdent:
		return fmt.Sprintf("identifier %q", t.Lex)
	case lexer.TokStr:
		return fmt.Sprintf("string %q", t.Lex)
	}
	return fmt.Sprintf("%q", t.Lex)
}
