package check

/* ---------- types ---------- */

// Type is the synthesized type of an expression or the declared type of a
// variable. TypeError marks an expression whose type could not be computed
// because an error has already been recorded for it.
type Type int

const (
	TypeError Type = iota
	TypeInt
	TypeFloat
	TypeChar
	TypeString
	TypeBoolean
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeChar:
		return "char"
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	default:
		return "error"
	}
}

// IsNumeric reports whether t takes part in arithmetic and ordering.
func (t Type) IsNumeric() bool {
	switch t {
	case TypeInt, TypeFloat, TypeChar:
		return true
	}
	return false
}

