// Package cnf evaluates DIMACS CNF instances under partial assignments
// using three-valued logic: a clause over unassigned variables is neither
// satisfied nor falsified, it is unknown.
package cnf

import (
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"
)

// Instance is a CNF formula. Clauses contain non-zero signed literals:
// literal v > 0 refers to variable v, literal -v to its negation.
// Variables are numbered from 1, as in DIMACS.
type Instance struct {
	Variables int
	Clauses   [][]int
}

// builder wraps an instance to implement dimacs.Builder.
type builder struct {
	instance *Instance
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	b.instance.Variables = nVars
	b.instance.Clauses = make([][]int, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	// The parser re-uses tmpClause across calls.
	clause := make([]int, len(tmpClause))
	for i, lit := range tmpClause {
		v := lit
		if v < 0 {
			v = -v
		}
		if v == 0 || v > b.instance.Variables {
			return fmt.Errorf("literal %d is out of range", lit)
		}
		clause[i] = lit
	}
	b.instance.Clauses = append(b.instance.Clauses, clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// Load parses a DIMACS CNF formula from r.
func Load(r io.Reader) (*Instance, error) {
	instance := &Instance{}
	if err := dimacs.ReadBuilder(r, &builder{instance}); err != nil {
		return nil, err
	}
	return instance, nil
}

// LoadFile parses the DIMACS CNF file with the given name.
func LoadFile(filename string) (*Instance, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer file.Close()

	instance, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", filename, err)
	}
	return instance, nil
}
