// Package trit implements Kleene's strong three-valued logic: the usual
// booleans extended with a third value, Unknown, which propagates through
// the connectives unless a dominating operand resolves it.
package trit

// Value represents a three-valued truth value, which is either True, False,
// or Unknown. The zero value is Unknown.
//
// Values are totally ordered: False < Unknown < True. The underlying
// integers -1, 0, and 1 (the balanced encoding) make this order literal:
// conjunction is minimum, disjunction is maximum, and negation is integer
// negation.
type Value int8

const (
	False   Value = -1
	Unknown Value = 0
	True    Value = 1
)

// Lift returns the Value corresponding to the given bool.
func Lift(b bool) Value {
	if b {
		return True
	} else {
		return False
	}
}

// Not returns the value with reversed polarity as follows:
//
//	True -> False
//	False -> True
//	Unknown -> Unknown
func Not(a Value) Value {
	return -a
}

// Both returns the conjunction of a and b, that is their order minimum:
// False if either operand is False, else Unknown if either is Unknown,
// else True.
func Both(a, b Value) Value {
	if a < b {
		return a
	}
	return b
}

// Either returns the disjunction of a and b, that is their order maximum:
// True if either operand is True, else Unknown if either is Unknown, else
// False.
func Either(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}

// Differ is the three-valued exclusive or: True if a and b are different
// known values, False if they are the same known value, and Unknown if
// either operand is Unknown.
func Differ(a, b Value) Value {
	return Both(Either(a, b), Not(Both(a, b)))
}

// Same is the negation of Differ: True if a and b are the same known value,
// False if they are different known values, and Unknown if either operand
// is Unknown.
func Same(a, b Value) Value {
	return Not(Differ(a, b))
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}
