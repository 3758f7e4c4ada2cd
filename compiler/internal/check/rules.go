package check

// The functions below implement the compatibility table. Each returns the
// result type and whether the operands are acceptable. A TypeError operand
// is always accepted and yields TypeError, so one bad name reports once.

// Arithmetic types + - * / .
func Arithmetic(a, b Type) (Type, bool) {
	if a == TypeError || b == TypeError {
		return TypeError, true
	}
	switch {
	case a == TypeFloat && (b == TypeFloat || b == TypeInt),
		b == TypeFloat && a == TypeInt:
		return TypeFloat, true
	case a == TypeInt && (b == TypeInt || b == TypeChar),
		a == TypeChar && (b == TypeInt || b == TypeChar):
		return TypeInt, true
	}
	return TypeError, false
}

// Logical types && and ||.
func Logical(a, b Type) (Type, bool) {
	if a == TypeError || b == TypeError {
		return TypeError, true
	}
	if a == TypeBoolean && b == TypeBoolean {
		return TypeBoolean, true
	}
	return TypeError, false
}

// Relational types == and != (equality) or < <= > >= (ordering).
func Relational(equality bool, a, b Type) (Type, bool) {
	if a == TypeError || b == TypeError {
		return TypeError, true
	}
	if a.IsNumeric() && b.IsNumeric() {
		return TypeBoolean, true
	}
	if equality && a == b {
		return TypeBoolean, true
	}
	return TypeError, false
}

// Negate types unary minus.
func Negate(t Type) (Type, bool) {
	if t == TypeError || t.IsNumeric() {
		return t, true
	}
	return TypeError, false
}

// Not types unary !.
func Not(t Type) (Type, bool) {
	switch t {
	case TypeError:
		return TypeError, true
	case TypeBoolean:
		return TypeBoolean, true
	}
	return TypeError, false
}

// Writable reports whether out(...) accepts a value of type t.
func Writable(t Type) bool {
	switch t {
	case TypeInt, TypeFloat, TypeChar, TypeString, TypeBoolean:
		return true
	}
	return false
}
