// Precomputed qubit Hamiltonians used when the ab initio driver is
// unavailable. Coefficients are standard literature values (O'Malley et
// al., common VQE tutorials) for the Jordan-Wigner mapped Hamiltonian in
// the STO-3G basis.

package fallback

import (
	"errors"
	"fmt"

	"github.com/Kukyos/GroundStateFinder/internal/operator"
)

// ErrNoTable is returned for molecules without a precomputed table.
var ErrNoTable = errors.New("fallback: no precomputed table")

type table struct {
	numQubits int
	terms     []operator.Term
}

// H2 at ~0.735 A, STO-3G, Jordan-Wigner. Qubit 0 is the leftmost label
// symbol.
var tables = map[string]table{
	"H2": {
		numQubits: 4,
		terms: []operator.Term{
			{Coeff: -1.052373245772859, Label: "IIII"},
			{Coeff: 0.39793742484318045, Label: "ZIII"},
			{Coeff: -0.39793742484318045, Label: "IZII"},
			{Coeff: -0.01128010425623538, Label: "IIZI"},
			{Coeff: 0.18093119978423156, Label: "IIIZ"},
			{Coeff: 0.39793742484318045, Label: "ZZII"},
			{Coeff: -0.18093119978423156, Label: "ZIIZ"},
			{Coeff: -0.01128010425623538, Label: "IZZI"},
			{Coeff: 0.18093119978423156, Label: "IIZZ"},
			{Coeff: 0.1689275387008791, Label: "XXYY"},
			{Coeff: -0.1689275387008791, Label: "XYYX"},
			{Coeff: -0.1689275387008791, Label: "YXXY"},
			{Coeff: 0.1689275387008791, Label: "YYXX"},
		},
	},
}

// Has reports whether a precomputed table exists for the formula.
func Has(formula string) bool {
	_, ok := tables[formula]
	return ok
}

// Operator materializes a fresh, validated operator from the table for the
// given formula.
func Operator(formula string) (*operator.Op, error) {
	t, ok := tables[formula]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoTable, formula)
	}
	return operator.New(t.numQubits, t.terms)
}

// TermCount returns the number of terms in the table for the formula, or 0
// when none exists.
func TermCount(formula string) int {
	return len(tables[formula].terms)
}
