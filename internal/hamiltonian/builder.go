// Hamiltonian builder: ab initio via the external driver when possible,
// precomputed table otherwise.

package hamiltonian

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Kukyos/GroundStateFinder/internal/cache"
	"github.com/Kukyos/GroundStateFinder/internal/driver"
	"github.com/Kukyos/GroundStateFinder/internal/fallback"
	"github.com/Kukyos/GroundStateFinder/internal/molecule"
	"github.com/Kukyos/GroundStateFinder/internal/operator"
)

// Source identifies which path produced an operator.
type Source string

const (
	SourceAbInitio    Source = "ab-initio"
	SourcePrecomputed Source = "precomputed"
)

// Provenance records where an operator came from. It rides beside the
// operator, not inside it.
type Provenance struct {
	MoleculeID string    `json:"molecule_id"`
	Formula    string    `json:"formula"`
	Basis      string    `json:"basis"`
	Mapping    string    `json:"mapping"`
	Source     Source    `json:"source"`
	Driver     string    `json:"driver,omitempty"`
	Cached     bool      `json:"cached,omitempty"`
	BuiltAt    time.Time `json:"built_at"`
}

// Result is an operator plus its provenance.
type Result struct {
	Operator   *operator.Op
	Provenance Provenance
}

// Precomputed reports whether the fallback path produced this result.
func (r *Result) Precomputed() bool {
	return r.Provenance.Source == SourcePrecomputed
}

// Document is the JSON form written by the save helper and served by the
// API: the operator wire schema plus provenance.
type Document struct {
	Provenance Provenance   `json:"provenance"`
	NumQubits  int          `json:"num_qubits"`
	Paulis     []string     `json:"paulis"`
	Coeffs     [][2]float64 `json:"coeffs"`
}

// Document flattens the result into its serializable form.
func (r *Result) Document() Document {
	terms := r.Operator.Terms()
	doc := Document{
		Provenance: r.Provenance,
		NumQubits:  r.Operator.NumQubits(),
		Paulis:     make([]string, len(terms)),
		Coeffs:     make([][2]float64, len(terms)),
	}
	for i, t := range terms {
		doc.Paulis[i] = t.Label
		doc.Coeffs[i] = [2]float64{real(t.Coeff), imag(t.Coeff)}
	}
	return doc
}

// Builder produces qubit Hamiltonians for library molecules.
type Builder struct {
	drv   driver.Driver
	cache *cache.Cache
	log   *zap.Logger
}

// New wires a builder. The cache may be nil.
func New(drv driver.Driver, c *cache.Cache, log *zap.Logger) *Builder {
	return &Builder{drv: drv, cache: c, log: log}
}

// Build returns the qubit Hamiltonian for the molecule preset with the
// given ID. When forcePrecomputed is false it first attempts the ab initio
// driver; any driver failure selects the precomputed table for the
// molecule's formula instead of propagating. The error return is non-nil
// only for unknown molecules and for molecules that have no precomputed
// table when the table is the selected path.
func (b *Builder) Build(ctx context.Context, moleculeID string, forcePrecomputed bool) (*Result, error) {
	mol, err := molecule.Get(moleculeID)
	if err != nil {
		return nil, err
	}

	if !forcePrecomputed {
		if res, ok := b.buildAbInitio(ctx, mol); ok {
			return res, nil
		}
	}

	op, err := fallback.Operator(mol.Formula)
	if err != nil {
		return nil, fmt.Errorf("hamiltonian: %s: %w", mol.ID, err)
	}
	return &Result{
		Operator: op,
		Provenance: Provenance{
			MoleculeID: mol.ID,
			Formula:    mol.Formula,
			Basis:      mol.Basis,
			Mapping:    driver.MappingJordanWigner,
			Source:     SourcePrecomputed,
			BuiltAt:    time.Now().UTC(),
		},
	}, nil
}

func (b *Builder) buildAbInitio(ctx context.Context, mol molecule.Molecule) (*Result, bool) {
	prov := Provenance{
		MoleculeID: mol.ID,
		Formula:    mol.Formula,
		Basis:      mol.Basis,
		Mapping:    driver.MappingJordanWigner,
		Source:     SourceAbInitio,
		Driver:     b.drv.Name(),
		BuiltAt:    time.Now().UTC(),
	}

	key := cache.Key(mol, driver.MappingJordanWigner)
	if op, ok := b.cache.Get(ctx, key); ok {
		prov.Cached = true
		return &Result{Operator: op, Provenance: prov}, true
	}

	op, err := b.drv.BuildQubitOperator(ctx, mol)
	if err != nil {
		b.log.Warn("ab initio driver failed, selecting precomputed table",
			zap.String("molecule", mol.ID),
			zap.String("driver", b.drv.Name()),
			zap.Error(err))
		return nil, false
	}

	b.cache.Put(ctx, key, op)
	b.log.Info("built ab initio hamiltonian",
		zap.String("molecule", mol.ID),
		zap.Int("qubits", op.NumQubits()),
		zap.Int("terms", op.Len()))
	return &Result{Operator: op, Provenance: prov}, true
}
