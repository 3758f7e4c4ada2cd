//go:generate go run golang.org/x/tools/cmd/stringer -type=TokKind -trimprefix=Tok

package lexer

// TokKind enumerates token kinds produced by the lexer.
type TokKind int

const (
	// Special
	TokEOF TokKind = iota

	// Literals/identifiers
	TokIdent
	TokInt
	TokFloat
	TokChar
	TokStr

	// Keywords
	TokProgram
	TokBegin
	TokEnd
	TokIntType
	TokFloatType
	TokCharType
	TokIf
	TokThen
	TokElse
	TokRepeat
	TokUntil
	TokWhile
	TokDo
	TokIn
	TokOut

	// Operators/punctuation
	TokColon  // :
	TokSemi   // ;
	TokComma  // ,
	TokAssign // =
	TokLParen // (
	TokRParen // )
	TokBang   // !
	TokMinus  // -
	TokPlus   // +
	TokStar   // *
	TokSlash  // /
	TokOr     // ||
	TokAnd    // &&
	TokEqEq   // ==
	TokNe     // !=
	TokGt     // >
	TokGe     // >=
	TokLt     // <
	TokLe     // <=
)

// Token is a single lexeme with its source line.
type Token struct {
	Kind TokKind
	Lex  string
	Line int
}

// IsType reports whether k names one of the declarable primitive types.
func (k TokKind) IsType() bool {
	return k == TokIntType || k == TokFloatType || k == TokCharType
}

// IsRelOp reports whether k is a relational operator.
func (k TokKind) IsRelOp() bool {
	switch k {
	case TokEqEq, TokNe, TokGt, TokGe, TokLt, TokLe:
		return true
	}
	return false
}

// IsAddOp reports whether k binds at additive precedence (+, -, ||).
func (k TokKind) IsAddOp() bool {
	return k == TokPlus || k == TokMinus || k == TokOr
}

// IsMulOp reports whether k binds at multiplicative precedence (*, /, &&).
func (k TokKind) IsMulOp() bool {
	return k == TokStar || k == TokSlash || k == TokAnd
}

// keywords maps lower-cased identifiers to keyword kinds.
var keywords = map[string]TokKind{
	"program": TokProgram,
	"begin":   TokBegin,
	"end":     TokEnd,
	"int":     TokIntType,
	"float":   TokFloatType,
	"char":    TokCharType,
	"if":      TokIf,
	"then":    TokThen,
	"else":    TokElse,
	"repeat":  TokRepeat,
	"until":   TokUntil,
	"while":   TokWhile,
	"do":      TokDo,
	"in":      TokIn,
	"out":     TokOut,
}
