package trit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// domain lists the three truth values in ascending order. Tests iterate
// over it to cover the whole (finite) domain exhaustively.
var domain = []Value{False, Unknown, True}

func TestNot(t *testing.T) {
	testCases := []struct {
		in   Value
		want Value
	}{
		{False, True},
		{Unknown, Unknown},
		{True, False},
	}

	for _, tc := range testCases {
		if got := Not(tc.in); got != tc.want {
			t.Errorf("Not(%s): got %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestNot_Involution(t *testing.T) {
	for _, a := range domain {
		if got := Not(Not(a)); got != a {
			t.Errorf("Not(Not(%s)): got %s, want %s", a, got, a)
		}
	}
}

// table applies a binary connective to every pair of domain values and
// returns the resulting truth table.
func table(f func(a, b Value) Value) map[[2]Value]Value {
	tt := map[[2]Value]Value{}
	for _, a := range domain {
		for _, b := range domain {
			tt[[2]Value{a, b}] = f(a, b)
		}
	}
	return tt
}

func TestBoth_TruthTable(t *testing.T) {
	want := map[[2]Value]Value{
		{False, False}: False, {False, Unknown}: False, {False, True}: False,
		{Unknown, False}: False, {Unknown, Unknown}: Unknown, {Unknown, True}: Unknown,
		{True, False}: False, {True, Unknown}: Unknown, {True, True}: True,
	}

	if diff := cmp.Diff(want, table(Both)); diff != "" {
		t.Errorf("Both truth table mismatch (-want +got):\n%s", diff)
	}
}

func TestEither_TruthTable(t *testing.T) {
	want := map[[2]Value]Value{
		{False, False}: False, {False, Unknown}: Unknown, {False, True}: True,
		{Unknown, False}: Unknown, {Unknown, Unknown}: Unknown, {Unknown, True}: True,
		{True, False}: True, {True, Unknown}: True, {True, True}: True,
	}

	if diff := cmp.Diff(want, table(Either)); diff != "" {
		t.Errorf("Either truth table mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffer_TruthTable(t *testing.T) {
	want := map[[2]Value]Value{
		{False, False}: False, {False, Unknown}: Unknown, {False, True}: True,
		{Unknown, False}: Unknown, {Unknown, Unknown}: Unknown, {Unknown, True}: Unknown,
		{True, False}: True, {True, Unknown}: Unknown, {True, True}: False,
	}

	if diff := cmp.Diff(want, table(Differ)); diff != "" {
		t.Errorf("Differ truth table mismatch (-want +got):\n%s", diff)
	}
}

func TestSame_IsNotDiffer(t *testing.T) {
	for _, a := range domain {
		for _, b := range domain {
			if got, want := Same(a, b), Not(Differ(a, b)); got != want {
				t.Errorf("Same(%s, %s): got %s, want %s", a, b, got, want)
			}
		}
	}
}

func TestDeMorgan(t *testing.T) {
	for _, a := range domain {
		for _, b := range domain {
			left := Not(Both(a, b))
			right := Either(Not(a), Not(b))
			if left != right {
				t.Errorf("De Morgan violated for (%s, %s): Not(Both) = %s, Either(Not, Not) = %s", a, b, left, right)
			}
		}
	}
}

func TestCommutativity(t *testing.T) {
	for _, a := range domain {
		for _, b := range domain {
			if Both(a, b) != Both(b, a) {
				t.Errorf("Both is not commutative for (%s, %s)", a, b)
			}
			if Either(a, b) != Either(b, a) {
				t.Errorf("Either is not commutative for (%s, %s)", a, b)
			}
		}
	}
}

func TestAssociativity(t *testing.T) {
	for _, a := range domain {
		for _, b := range domain {
			for _, c := range domain {
				if Both(Both(a, b), c) != Both(a, Both(b, c)) {
					t.Errorf("Both is not associative for (%s, %s, %s)", a, b, c)
				}
				if Either(Either(a, b), c) != Either(a, Either(b, c)) {
					t.Errorf("Either is not associative for (%s, %s, %s)", a, b, c)
				}
			}
		}
	}
}

func TestLift(t *testing.T) {
	if got := Lift(true); got != True {
		t.Errorf("Lift(true): got %s, want true", got)
	}
	if got := Lift(false); got != False {
		t.Errorf("Lift(false): got %s, want false", got)
	}
}

func TestValue_String(t *testing.T) {
	testCases := []struct {
		in   Value
		want string
	}{
		{True, "true"},
		{False, "false"},
		{Unknown, "unknown"},
	}

	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%d.String(): got %q, want %q", int8(tc.in), got, tc.want)
		}
	}
}
