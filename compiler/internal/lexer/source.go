package lexer

// Source is a minimal token source. Both *Lexer and *Cursor satisfy it.
type Source interface {
	Next() Token
}

// Cursor walks a tokenized program left to right. It never moves past the
// terminating TokEOF, so Peek is always valid.
type Cursor struct {
	toks []Token
	pos  int
}

// NewCursor returns a cursor over toks. A missing trailing TokEOF is
// supplied so callers may pass hand-built slices.
func NewCursor(toks []Token) *Cursor {
	if n := len(toks); n == 0 || toks[n-1].Kind != TokEOF {
		line := 1
		if n > 0 {
			line = toks[n-1].Line
		}
		toks = append(toks[:n:n], Token{Kind: TokEOF, Line: line})
	}
	return &Cursor{toks: toks}
}

// Peek returns the current lookahead token.
func (c *Cursor) Peek() Token { return c.toks[c.pos] }

// Next returns the current token and advances, staying on TokEOF once reached.
func (c *Cursor) Next() Token {
	t := c.toks[c.pos]
	if t.Kind != TokEOF {
		c.pos++
	}
	return t
}

// Pos is the index of the lookahead token.
func (c *Cursor) Pos() int { return c.pos }

// Len is the number of tokens, EOF included.
func (c *Cursor) Len() int { return len(c.toks) }
