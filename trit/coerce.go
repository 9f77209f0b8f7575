package trit

import (
	"math"
	"reflect"
)

// Of coerces an arbitrary Go value to a Value. Go has no ambient truthiness
// rules, so the mapping below is the coercion contract:
//
//   - no argument: Unknown
//   - a Value: returned as is
//   - a *bool: Unknown if nil, else the lifted target (see FromPtr)
//   - untyped nil: False
//   - bool: lifted
//   - integers: False iff zero
//   - floats: False iff zero (including negative zero) or NaN
//   - complex numbers: False iff zero
//   - strings: False iff empty
//   - nil pointers, maps, slices, channels, funcs, interfaces: False
//   - everything else (structs, arrays, non-nil composites): True
//
// Arguments beyond the first are ignored. Note that only three inputs
// produce Unknown: an absent argument, Unknown itself, and a nil *bool.
// The returned Value doubles as a thin wrapper around the coerced
// primitive: String gives its textual form and Bool its collapsed bool.
func Of(x ...any) Value {
	if len(x) == 0 {
		return Unknown
	}
	switch v := x[0].(type) {
	case nil:
		return False
	case Value:
		return v
	case *bool:
		return FromPtr(v)
	case bool:
		return Lift(v)
	case string:
		return Lift(v != "")
	}

	rv := reflect.ValueOf(x[0])
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Lift(rv.Int() != 0)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Lift(rv.Uint() != 0)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return Lift(f != 0 && !math.IsNaN(f))
	case reflect.Complex64, reflect.Complex128:
		return Lift(rv.Complex() != 0)
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return Lift(!rv.IsNil())
	default:
		return True
	}
}

// Ptr converts v to the optional-boolean encoding: nil for Unknown, else a
// pointer to the corresponding bool.
func (v Value) Ptr() *bool {
	if v == Unknown {
		return nil
	}
	b := v == True
	return &b
}

// FromPtr is the inverse of Ptr: nil maps to Unknown, everything else to
// the lifted target.
func FromPtr(p *bool) Value {
	if p == nil {
		return Unknown
	}
	return Lift(*p)
}

// Balanced returns v in the balanced integer encoding: -1 for False, 0 for
// Unknown, and 1 for True.
func (v Value) Balanced() int8 {
	return int8(v)
}

// FromBalanced maps a balanced integer back to a Value. Out-of-range
// integers are normalized by sign, which keeps the function total.
func FromBalanced(i int8) Value {
	switch {
	case i < 0:
		return False
	case i > 0:
		return True
	default:
		return Unknown
	}
}

// Bool returns the collapsed primitive: false only if v is False.
func (v Value) Bool() bool {
	return Bool(v)
}
