package lexer

import "testing"

func kindsFrom(src string) []TokKind {
	toks, _ := Tokenize(src)
	var kinds []TokKind
	for _, t := range toks {
		kinds = append(kinds, t.Kind)
	}
	return kinds
}

func expectKinds(t *testing.T, src string, want ...TokKind) {
	t.Helper()
	ks := kindsFrom(src)
	if len(ks) != len(want) {
		t.Fatalf("token count mismatch: got %d, want %d (%v)", len(ks), len(want), ks)
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("ks[%d]=%v, want %v (full=%v)", i, ks[i], want[i], ks)
		}
	}
}

func TestEmptySourceIsJustEOF(t *testing.T) {
	toks, warns := Tokenize("")
	if len(toks) != 1 || toks[0].Kind != TokEOF {
		t.Fatalf("expected single EOF, got %v", toks)
	}
	if toks[0].Lex != "" || toks[0].Line != 1 {
		t.Fatalf("EOF token = %+v, want empty lexeme on line 1", toks[0])
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
}

func TestSmallProgram(t *testing.T) {
	src := "PROGRAM int:x; BEGIN x=1; OUT(x) END"
	expectKinds(t, src,
		TokProgram, TokIntType, TokColon, TokIdent, TokSemi,
		TokBegin, TokIdent, TokAssign, TokInt, TokSemi,
		TokOut, TokLParen, TokIdent, TokRParen,
		TokEnd, TokEOF,
	)
}

func TestKeywordsIgnoreCase(t *testing.T) {
	for _, src := range []string{"program", "Program", "PROGRAM", "pRoGrAm"} {
		toks, _ := Tokenize(src)
		if toks[0].Kind != TokProgram {
			t.Fatalf("%q lexed as %v, want Program", src, toks[0].Kind)
		}
		if toks[0].Lex != src {
			t.Fatalf("lexeme %q, want original spelling %q", toks[0].Lex, src)
		}
	}
	expectKinds(t, "begin end int float char if then else repeat until while do in out",
		TokBegin, TokEnd, TokIntType, TokFloatType, TokCharType, TokIf, TokThen, TokElse,
		TokRepeat, TokUntil, TokWhile, TokDo, TokIn, TokOut, TokEOF)
}

func TestIdentifiersKeepCase(t *testing.T) {
	toks, _ := Tokenize("Counter _tmp1 x9_")
	want := []string{"Counter", "_tmp1", "x9_"}
	for i, w := range want {
		if toks[i].Kind != TokIdent || toks[i].Lex != w {
			t.Fatalf("toks[%d]=%+v, want identifier %q", i, toks[i], w)
		}
	}
}

func TestOperators(t *testing.T) {
	expectKinds(t, "= == ! != > >= < <= && || + - * / : ; , ( )",
		TokAssign, TokEqEq, TokBang, TokNe, TokGt, TokGe, TokLt, TokLe, TokAnd, TokOr,
		TokPlus, TokMinus, TokStar, TokSlash, TokColon, TokSemi, TokComma, TokLParen, TokRParen,
		TokEOF)
	// No space needed between two-character operators and operands.
	expectKinds(t, "a>=b", TokIdent, TokGe, TokIdent, TokEOF)
	expectKinds(t, "a=-b", TokIdent, TokAssign, TokMinus, TokIdent, TokEOF)
}

func TestLoneAmpersandAndPipeAreDropped(t *testing.T) {
	toks, warns := Tokenize("a & b | c")
	want := []TokKind{TokIdent, TokIdent, TokIdent, TokEOF}
	if len(toks) != len(want) {
		t.Fatalf("got %v, want kinds %v", toks, want)
	}
	if len(warns) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warns), warns)
	}
	for _, w := range warns {
		if w.Code != "PLW0003" {
			t.Fatalf("warning code %q, want PLW0003", w.Code)
		}
	}
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		src  string
		kind TokKind
		lex  string
	}{
		{"0", TokInt, "0"},
		{"12345", TokInt, "12345"},
		{"3.14", TokFloat, "3.14"},
		{"10.0", TokFloat, "10.0"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks, warns := Tokenize(c.src)
			if toks[0].Kind != c.kind || toks[0].Lex != c.lex {
				t.Fatalf("got %+v, want %v %q", toks[0], c.kind, c.lex)
			}
			if len(warns) != 0 {
				t.Fatalf("unexpected warnings: %v", warns)
			}
		})
	}
}

func TestNumberWithoutFractionDigits(t *testing.T) {
	// "5." is an integer followed by a stray '.'.
	toks, warns := Tokenize("5.")
	if toks[0].Kind != TokInt || toks[0].Lex != "5" {
		t.Fatalf("got %+v, want Int 5", toks[0])
	}
	if toks[1].Kind != TokEOF {
		t.Fatalf("got %+v after 5, want EOF", toks[1])
	}
	if len(warns) != 1 || warns[0].Code != "PLW0002" {
		t.Fatalf("warnings = %v, want one PLW0002", warns)
	}
}

func TestComments(t *testing.T) {
	src := "x { a block\ncomment } y % line comment\nz"
	toks, warns := Tokenize(src)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	want := []struct {
		lex  string
		line int
	}{{"x", 1}, {"y", 2}, {"z", 3}}
	for i, w := range want {
		if toks[i].Lex != w.lex || toks[i].Line != w.line {
			t.Fatalf("toks[%d]=%+v, want %q on line %d", i, toks[i], w.lex, w.line)
		}
	}
	if toks[3].Kind != TokEOF || toks[3].Line != 3 {
		t.Fatalf("EOF = %+v, want line 3", toks[3])
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	toks, warns := Tokenize("x {never\nclosed")
	if len(toks) != 2 || toks[1].Kind != TokEOF {
		t.Fatalf("got %v, want identifier then EOF", toks)
	}
	if toks[1].Line != 2 {
		t.Fatalf("EOF line %d, want 2", toks[1].Line)
	}
	if len(warns) != 1 || warns[0].Code != "PLW0001" || warns[0].Line != 1 {
		t.Fatalf("warnings = %v, want PLW0001 at line 1", warns)
	}
}

func TestCharLiterals(t *testing.T) {
	toks, warns := Tokenize("'a' 'Z' ' '")
	for i, want := range []string{"a", "Z", " "} {
		if toks[i].Kind != TokChar || toks[i].Lex != want {
			t.Fatalf("toks[%d]=%+v, want Char %q", i, toks[i], want)
		}
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
}

func TestBadCharLiterals(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code string
	}{
		{"unterminated", "'ab", "PLW0004"},
		{"at_eof", "'", "PLW0004"},
		{"non_ascii", "'é'", "PLW0006"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, warns := Tokenize(c.src)
			for _, tk := range toks {
				if tk.Kind == TokChar {
					t.Fatalf("unexpected char token %+v", tk)
				}
			}
			if len(warns) == 0 || warns[0].Code != c.code {
				t.Fatalf("warnings = %v, want first %s", warns, c.code)
			}
		})
	}
}

func TestNonASCIICharLiteralIsConsumed(t *testing.T) {
	// The literal is dropped whole; nothing of it leaks into the stream.
	expectKinds(t, "x = 'é'; y", TokIdent, TokAssign, TokSemi, TokIdent, TokEOF)
}

func TestStrings(t *testing.T) {
	toks, warns := Tokenize(`OUT("hello, world")`)
	if toks[2].Kind != TokStr || toks[2].Lex != "hello, world" {
		t.Fatalf("got %+v, want string without quotes", toks[2])
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
}

func TestUnterminatedString(t *testing.T) {
	toks, warns := Tokenize("\"open\nx")
	if toks[0].Kind != TokIdent || toks[0].Line != 2 {
		t.Fatalf("got %+v, want identifier on line 2", toks[0])
	}
	if len(warns) != 1 || warns[0].Code != "PLW0005" || warns[0].Line != 1 {
		t.Fatalf("warnings = %v, want PLW0005 at line 1", warns)
	}
}

func TestUnexpectedCharacterIsSkipped(t *testing.T) {
	toks, warns := Tokenize("a # b @")
	if len(toks) != 3 {
		t.Fatalf("got %v, want a, b, EOF", toks)
	}
	if len(warns) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warns), warns)
	}
	if warns[0].String() != `PLW0002 at line 1: unexpected character '#'` {
		t.Fatalf("warning text = %q", warns[0].String())
	}
}

func TestLineCounting(t *testing.T) {
	src := "PROGRAM\r\n  int:x;\r\n\tBEGIN\n\nx=1\nEND"
	toks, _ := Tokenize(src)
	lines := map[TokKind]int{}
	for _, tk := range toks {
		if _, seen := lines[tk.Kind]; !seen {
			lines[tk.Kind] = tk.Line
		}
	}
	want := map[TokKind]int{TokProgram: 1, TokIntType: 2, TokBegin: 3, TokAssign: 5, TokEnd: 6, TokEOF: 6}
	for k, l := range want {
		if lines[k] != l {
			t.Fatalf("%v on line %d, want %d", k, lines[k], l)
		}
	}
}

func TestNextKeepsReturningEOF(t *testing.T) {
	lx := New("x")
	if tk := lx.Next(); tk.Kind != TokIdent {
		t.Fatalf("got %v, want Ident", tk.Kind)
	}
	for i := 0; i < 3; i++ {
		if tk := lx.Next(); tk.Kind != TokEOF {
			t.Fatalf("call %d: got %v, want EOF", i, tk.Kind)
		}
	}
}

func TestTokKindString(t *testing.T) {
	if got := TokSemi.String(); got != "Semi" {
		t.Fatalf("TokSemi.String() = %q", got)
	}
	if got := TokKind(999).String(); got != "TokKind(999)" {
		t.Fatalf("out of range String() = %q", got)
	}
}
