package check

// Declaration is a declared variable. Name keeps the spelling of the
// declaration; Depth is the number of open scopes when it was declared
// (the program scope is depth 1).
type Declaration struct {
	Name  string
	Type  Type
	Depth int
}

type frame map[string]Declaration

// Table is a stack of scopes, innermost last. A name may occur once per
// frame; inner frames shadow outer ones.
type Table struct {
	frames []frame
}

// NewTable returns a table with no open scope.
func NewTable() *Table { return &Table{} }

// EnterScope opens a new innermost scope.
func (t *Table) EnterScope() {
	t.frames = push(t.frames, frame{})
}

// ExitScope closes the innermost scope. Calls must balance EnterScope.
func (t *Table) ExitScope() {
	if len(t.frames) == 0 {
		panic("check: ExitScope without matching EnterScope")
	}
	t.frames = pop(t.frames)
}

// depth is the number of open scopes.
func (t *Table) depth() int { return len(t.frames) }

// Declare adds name to the innermost scope. It reports false, leaving the
// table unchanged, if that scope already holds the name.
func (t *Table) Declare(name string, typ Type) bool {
	cur := top(t.frames)
	if cur == nil {
		panic("check: Declare with no open scope")
	}
	key := Normalize(name)
	if _, exists := (*cur)[key]; exists {
		return false
	}
	(*cur)[key] = Declaration{Name: name, Type: typ, Depth: t.depth()}
	return true
}

// Lookup resolves name innermost scope first.
func (t *Table) Lookup(name string) (Declaration, bool) {
	key := Normalize(name)
	for i := len(t.frames) - 1; i >= 0; i-- {
		if d, ok := t.frames[i][key]; ok {
			return d, true
		}
	}
	return Declaration{}, false
}
