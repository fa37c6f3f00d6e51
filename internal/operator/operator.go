// Qubit operator representation: a weighted sum of Pauli strings.
// This is the output type of the Hamiltonian builder in both the ab initio
// and precomputed paths.

package operator

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// DisplayCutoff is the magnitude below which terms are dropped from the
// human-readable rendering.
const DisplayCutoff = 1e-10

// Term is a single (coefficient, Pauli string) pair. The label has one
// symbol per qubit over {I, X, Y, Z}; qubit 0 is the leftmost character.
type Term struct {
	Coeff complex128
	Label string
}

// Op is an immutable qubit operator over a fixed number of qubits.
type Op struct {
	numQubits int
	terms     []Term
}

// New validates the term list and returns an operator. Every label must
// have length numQubits, use only I/X/Y/Z, and carry a finite coefficient.
func New(numQubits int, terms []Term) (*Op, error) {
	if numQubits <= 0 {
		return nil, fmt.Errorf("operator: qubit count must be positive, got %d", numQubits)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("operator: at least one term required")
	}
	out := make([]Term, len(terms))
	for i, t := range terms {
		if len(t.Label) != numQubits {
			return nil, fmt.Errorf("operator: label %q has length %d, want %d", t.Label, len(t.Label), numQubits)
		}
		for _, c := range t.Label {
			switch c {
			case 'I', 'X', 'Y', 'Z':
			default:
				return nil, fmt.Errorf("operator: label %q contains invalid symbol %q", t.Label, c)
			}
		}
		re, im := real(t.Coeff), imag(t.Coeff)
		if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
			return nil, fmt.Errorf("operator: non-finite coefficient for label %q", t.Label)
		}
		out[i] = t
	}
	return &Op{numQubits: numQubits, terms: out}, nil
}

// NumQubits returns the qubit count shared by all labels.
func (o *Op) NumQubits() int { return o.numQubits }

// Len returns the number of terms.
func (o *Op) Len() int { return len(o.terms) }

// Terms returns a copy of the term list in construction order.
func (o *Op) Terms() []Term {
	out := make([]Term, len(o.terms))
	copy(out, o.terms)
	return out
}

// Sorted returns the terms ordered by label, then by real part. This is the
// deterministic order used for display and comparison.
func (o *Op) Sorted() []Term {
	out := o.Terms()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return real(out[i].Coeff) < real(out[j].Coeff)
	})
	return out
}

// FormatTerm renders one term in the display form `<coefficient> * <PauliString>`.
// Real coefficients print as %+.12f; coefficients with a non-negligible
// imaginary part print as (%+.12f%+.12fj).
func FormatTerm(t Term) string {
	if math.Abs(imag(t.Coeff)) < DisplayCutoff {
		return fmt.Sprintf("%+.12f * %s", real(t.Coeff), t.Label)
	}
	return fmt.Sprintf("(%+.12f%+.12fj) * %s", real(t.Coeff), imag(t.Coeff), t.Label)
}

// Lines renders every term whose magnitude is at least cutoff, sorted
// lexicographically for reproducible output.
func (o *Op) Lines(cutoff float64) []string {
	lines := make([]string, 0, len(o.terms))
	for _, t := range o.terms {
		if cmplxAbs(t.Coeff) < cutoff {
			continue
		}
		lines = append(lines, FormatTerm(t))
	}
	sort.Strings(lines)
	return lines
}

// String renders the operator as one display line per term.
func (o *Op) String() string {
	return strings.Join(o.Lines(DisplayCutoff), "\n")
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

// document is the JSON wire form, matching the save-file schema:
// Pauli labels alongside [re, im] coefficient pairs.
type document struct {
	NumQubits int          `json:"num_qubits"`
	Paulis    []string     `json:"paulis"`
	Coeffs    [][2]float64 `json:"coeffs"`
}

// MarshalJSON encodes the operator as {num_qubits, paulis, coeffs}.
func (o *Op) MarshalJSON() ([]byte, error) {
	doc := document{
		NumQubits: o.numQubits,
		Paulis:    make([]string, len(o.terms)),
		Coeffs:    make([][2]float64, len(o.terms)),
	}
	for i, t := range o.terms {
		doc.Paulis[i] = t.Label
		doc.Coeffs[i] = [2]float64{real(t.Coeff), imag(t.Coeff)}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes the {num_qubits, paulis, coeffs} document. A missing
// num_qubits field is inferred from the first label.
func (o *Op) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("operator: decode: %w", err)
	}
	if len(doc.Paulis) != len(doc.Coeffs) {
		return fmt.Errorf("operator: %d labels but %d coefficients", len(doc.Paulis), len(doc.Coeffs))
	}
	if doc.NumQubits == 0 && len(doc.Paulis) > 0 {
		doc.NumQubits = len(doc.Paulis[0])
	}
	terms := make([]Term, len(doc.Paulis))
	for i, p := range doc.Paulis {
		terms[i] = Term{Label: p, Coeff: complex(doc.Coeffs[i][0], doc.Coeffs[i][1])}
	}
	op, err := New(doc.NumQubits, terms)
	if err != nil {
		return err
	}
	*o = *op
	return nil
}
