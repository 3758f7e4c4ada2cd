package parser

import (
	"github.com/picolang/pico/compiler/internal/check"
	"github.com/picolang/pico/compiler/internal/diag"
	"github.com/picolang/pico/compiler/internal/lexer"
)

/* ---------- expressions ---------- */

// expression ::= simple-expr (relop simple-expr)?
func (p *Parser) parseExpression() (check.Type, error) {
	left, err := p.parseSimpleExpr()
	if err != nil {
		return check.TypeError, err
	}
	if !p.tok.Kind.IsRelOp() {
		return left, nil
	}
	op := p.tok
	p.next()
	right, err := p.parseSimpleExpr()
	if err != nil {
		return check.TypeError, err
	}
	equality := op.Kind == lexer.TokEqEq || op.Kind == lexer.TokNe
	typ, ok := check.Relational(equality, left, right)
	if !ok {
		return check.TypeError, p.fail(diag.Semanticf("relational", op.Line,
			"incompatible types for %s: %s and %s", op.Lex, left, right))
	}
	return typ, nil
}

// simple-expr ::= term (addop term)*
func (p *Parser) parseSimpleExpr() (check.Type, error) {
	typ, err := p.parseTerm()
	if err != nil {
		return check.TypeError, err
	}
	for p.tok.Kind.IsAddOp() {
		op := p.tok
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return check.TypeError, err
		}
		if typ, err = p.binary(op, typ, right); err != nil {
			return check.TypeError, err
		}
	}
	return typ, nil
}

// term ::= factor-a (mulop factor-a)*
func (p *Parser) parseTerm() (check.Type, error) {
	typ, err := p.parseFactorA()
	if err != nil {
		return check.TypeError, err
	}
	for p.tok.Kind.IsMulOp() {
		op := p.tok
		p.next()
		right, err := p.parseFactorA()
		if err != nil {
			return check.TypeError, err
		}
		if typ, err = p.binary(op, typ, right); err != nil {
			return check.TypeError, err
		}
	}
	return typ, nil
}

// binary types an additive or multiplicative operator.
func (p *Parser) binary(op lexer.Token, left, right check.Type) (check.Type, error) {
	if op.Kind == lexer.TokAnd || op.Kind == lexer.TokOr {
		typ, ok := check.Logical(left, right)
		if !ok {
			return check.TypeError, p.fail(diag.Semanticf("logical", op.Line,
				"operator %s requires boolean operands, got %s and %s", op.Lex, left, right))
		}
		return typ, nil
	}
	typ, ok := check.Arithmetic(left, right)
	if !ok {
		return check.TypeError, p.fail(diag.Semanticf("arithmetic", op.Line,
			"incompatible operands for %s: %s and %s", op.Lex, left, right))
	}
	return typ, nil
}

// factor-a ::= '!' factor | '-' factor | factor
func (p *Parser) parseFactorA() (check.Type, error) {
	op := p.tok
	switch op.Kind {
	case lexer.TokBang:
		p.next()
		operand, err := p.parseFactor()
		if err != nil {
			return check.TypeError, err
		}
		typ, ok := check.Not(operand)
		if !ok {
			return check.TypeError, p.fail(diag.Semanticf("unary", op.Line,
				"operator ! requires a boolean operand, got %s", operand))
		}
		return typ, nil
	case lexer.TokMinus:
		p.next()
		operand, err := p.parseFactor()
		if err != nil {
			return check.TypeError, err
		}
		typ, ok := check.Negate(operand)
		if !ok {
			return check.TypeError, p.fail(diag.Semanticf("unary", op.Line,
				"unary - requires a numeric operand, got %s", operand))
		}
		return typ, nil
	default:
		return p.parseFactor()
	}
}

// factor ::= IDENT | constant | '(' expression ')'
// constant ::= INTEGER_CONST | FLOAT_CONST | CHAR_CONST
func (p *Parser) parseFactor() (check.Type, error) {
	t := p.tok
	switch t.Kind {
	case lexer.TokIdent:
		p.next()
		d, ok := p.syms.Lookup(t.Lex)
		if !ok {
			p.deferErr(diag.Semanticf("undeclared", t.Line, "%s not declared", t.Lex))
			return check.TypeError, nil
		}
		return d.Type, nil
	case lexer.TokInt:
		p.next()
		return check.TypeInt, nil
	case lexer.TokFloat:
		p.next()
		return check.TypeFloat, nil
	case lexer.TokChar:
		p.next()
		return check.TypeChar, nil
	case lexer.TokLParen:
		p.next()
		typ, err := p.parseExpression()
		if err != nil {
			return check.TypeError, err
		}
		if _, err := p.expect(lexer.TokRParen); err != nil {
			return check.TypeError, err
		}
		return typ, nil
	default:
		return check.TypeError, p.syntaxErr("invalid-factor", "unexpected %s in expression", describe(t))
	}
}
