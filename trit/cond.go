package trit

// Resolve selects between three results: ifTrue when c is True, ifFalse
// when c is False, and ifUnknown when c is Unknown. This treats Unknown as
// a genuine third outcome; callers with no meaningful result for it can
// pass the zero value of T.
//
// The selected argument is returned unchanged. T can be any type, including
// a function type that the caller then invokes itself.
func Resolve[T any](c Value, ifTrue, ifFalse, ifUnknown T) T {
	switch c {
	case True:
		return ifTrue
	case False:
		return ifFalse
	default:
		return ifUnknown
	}
}

// Collapse forces a binary outcome: it returns ifFalse only when c is
// False, and ifTrue otherwise. Unknown, read as "both true and false at
// once", resolves toward true. Use Resolve to keep Unknown as its own
// branch; the two differ exactly when c is Unknown.
func Collapse[T any](c Value, ifTrue, ifFalse T) T {
	if c == False {
		return ifFalse
	}
	return ifTrue
}

// Bool collapses a to a plain bool: false only if a is False. This is
// Collapse(a, true, false).
func Bool(a Value) bool {
	return a != False
}
