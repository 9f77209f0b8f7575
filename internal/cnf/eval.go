package cnf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rhartert/trilean/trit"
)

// Assignment maps each variable to a truth value. Index 0 is unused so
// that variable v lives at index v, mirroring DIMACS numbering. Variables
// that were never assigned are Unknown.
type Assignment []trit.Value

// NewAssignment returns an assignment over nVars variables with every
// variable Unknown.
func NewAssignment(nVars int) Assignment {
	return make(Assignment, nVars+1)
}

// Assign sets the variable of the given signed literal: positive literals
// assign True, negative literals assign False.
func (a Assignment) Assign(lit int) error {
	v := lit
	if v < 0 {
		v = -v
	}
	if v == 0 || v >= len(a) {
		return fmt.Errorf("literal %d is out of range", lit)
	}
	a[v] = trit.Lift(lit > 0)
	return nil
}

// Lit returns the value of the given signed literal under the assignment.
func (a Assignment) Lit(lit int) trit.Value {
	if lit < 0 {
		return trit.Not(a[-lit])
	}
	return a[lit]
}

// ParseAssignment builds an assignment over nVars variables from a list of
// whitespace-separated signed literals, e.g. "1 -3 4".
func ParseAssignment(s string, nVars int) (Assignment, error) {
	a := NewAssignment(nVars)
	for _, field := range strings.Fields(s) {
		lit, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("could not parse literal %q: %w", field, err)
		}
		if err := a.Assign(lit); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Stats counts the instance's clauses by status under an assignment.
type Stats struct {
	Satisfied    int
	Falsified    int
	Undetermined int
}

// evalClause returns the clause's status under a: the disjunction of its
// literal values. The empty clause is False.
func evalClause(clause []int, a Assignment) trit.Value {
	v := trit.False
	for _, lit := range clause {
		v = trit.Either(v, a.Lit(lit))
	}
	return v
}

// Eval returns the instance's truth value under a, that is the conjunction
// of its clause statuses, together with per-status clause counts. An
// instance with no clauses is True.
func (in *Instance) Eval(a Assignment) (trit.Value, Stats) {
	stats := Stats{}
	v := trit.True
	for _, clause := range in.Clauses {
		cv := evalClause(clause, a)
		switch cv {
		case trit.True:
			stats.Satisfied++
		case trit.False:
			stats.Falsified++
		default:
			stats.Undetermined++
		}
		v = trit.Both(v, cv)
	}
	return v, stats
}
