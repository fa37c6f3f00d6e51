package operator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// maxDenseQubits bounds the dense realization; 2^12 x 2^12 complex entries
// is already 256 MB.
const maxDenseQubits = 12

var pauliFactors = map[byte][2][2]complex128{
	'I': {{1, 0}, {0, 1}},
	'X': {{0, 1}, {1, 0}},
	'Z': {{1, 0}, {0, -1}},
	'Y': {{0, complex(0, -1)}, {complex(0, 1), 0}},
}

// Matrix returns the dense 2^n x 2^n realization of the operator. Qubit 0
// (leftmost label symbol) is the most significant bit of the basis index.
func (o *Op) Matrix() (*mat.CDense, error) {
	n := o.numQubits
	if n > maxDenseQubits {
		return nil, fmt.Errorf("operator: dense realization of %d qubits exceeds the %d-qubit limit", n, maxDenseQubits)
	}
	dim := 1 << n
	m := mat.NewCDense(dim, dim, nil)
	for _, t := range o.terms {
		for row := 0; row < dim; row++ {
			for col := 0; col < dim; col++ {
				entry := t.Coeff
				for q := 0; q < n && entry != 0; q++ {
					rb := (row >> (n - 1 - q)) & 1
					cb := (col >> (n - 1 - q)) & 1
					entry *= pauliFactors[t.Label[q]][rb][cb]
				}
				if entry != 0 {
					m.Set(row, col, m.At(row, col)+entry)
				}
			}
		}
	}
	return m, nil
}

// GroundEnergy returns the minimum eigenvalue of the operator by exact
// diagonalization. The realization must be real symmetric, which holds for
// any molecular Hamiltonian after Jordan-Wigner mapping.
func (o *Op) GroundEnergy() (float64, error) {
	m, err := o.Matrix()
	if err != nil {
		return 0, err
	}
	dim := 1 << o.numQubits
	sym := mat.NewSymDense(dim, nil)
	for row := 0; row < dim; row++ {
		for col := row; col < dim; col++ {
			v := m.At(row, col)
			if math.Abs(imag(v)) > 1e-9 {
				return 0, fmt.Errorf("operator: realization has complex entry %v at (%d,%d)", v, row, col)
			}
			if math.Abs(real(v)-real(m.At(col, row))) > 1e-9 {
				return 0, fmt.Errorf("operator: realization is not symmetric at (%d,%d)", row, col)
			}
			sym.SetSym(row, col, real(v))
		}
	}
	var eig mat.EigenSym
	if !eig.Factorize(sym, false) {
		return 0, fmt.Errorf("operator: eigendecomposition failed")
	}
	values := eig.Values(nil)
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}
