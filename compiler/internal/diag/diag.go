package diag

import "fmt"

// Category separates the two fatal tiers of compile errors.
type Category int

const (
	CategorySyntax Category = iota + 1
	CategorySemantic
)

func (c Category) String() string {
	switch c {
	case CategorySyntax:
		return "syntax"
	case CategorySemantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// CompileError aborts a parse. Line is the 1-based source line of the
// token that triggered it.
type CompileError struct {
	Category Category
	Code     string
	Line     int
	Msg      string

	// Incomplete is set on syntax errors raised at end of input.
	Incomplete bool
}

func (e *CompileError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s error at line %d: %s", e.Category, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s error [%s] at line %d: %s", e.Category, e.Code, e.Line, e.Msg)
}

// Syntaxf builds a syntax error whose code comes from the parser catalog.
func Syntaxf(key string, line int, format string, a ...any) *CompileError {
	return &CompileError{
		Category: CategorySyntax,
		Code:     Code(DomainParser, key),
		Line:     line,
		Msg:      fmt.Sprintf(format, a...),
	}
}

// Semanticf builds a semantic error whose code comes from the type catalog.
func Semanticf(key string, line int, format string, a ...any) *CompileError {
	return &CompileError{
		Category: CategorySemantic,
		Code:     Code(DomainType, key),
		Line:     line,
		Msg:      fmt.Sprintf(format, a...),
	}
}
