package trit

// And returns the conjunction of all its operands by folding Both from the
// left: False if any operand is False, else Unknown if any operand is
// Unknown, else True. The signature requires at least one operand; And of a
// single operand is that operand.
//
// All operands are evaluated by the caller before the fold runs, so the
// fact that the fold does not stop early on a dominating False is not
// observable.
func And(v Value, vs ...Value) Value {
	for _, w := range vs {
		v = Both(v, w)
	}
	return v
}

// Or returns the disjunction of all its operands by folding Either from the
// left: True if any operand is True, else Unknown if any operand is
// Unknown, else False.
func Or(v Value, vs ...Value) Value {
	for _, w := range vs {
		v = Either(v, w)
	}
	return v
}

// Xor returns Unknown if any operand is Unknown. Otherwise it returns True
// if the operands are not all equal, and False if they all agree. For two
// operands this coincides with Differ.
//
// Note that "not all equal" is not boolean parity: Xor(True, False, True)
// is True where a parity xor would give False. The generalization is
// deliberate, not a shortcut.
func Xor(v Value, vs ...Value) Value {
	if v == Unknown {
		return Unknown
	}
	allSame := true
	for _, w := range vs {
		if w == Unknown {
			return Unknown
		}
		if w != v {
			allSame = false
		}
	}
	return Lift(!allSame)
}

// Xnor is the negation of Xor: True if all operands are equal, Unknown if
// any operand is Unknown, and False otherwise. For two operands this
// coincides with Same.
func Xnor(v Value, vs ...Value) Value {
	return Not(Xor(v, vs...))
}

// Eq is a mnemonic alias for Xnor.
var Eq = Xnor
