// Predefined molecular configurations for Hamiltonian generation.

package molecule

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultID is the molecule built when the caller does not pick one.
const DefaultID = "H2_equilibrium"

// Basis is the only basis set the preset library is tabulated for.
const Basis = "sto-3g"

// Atom is one nucleus at Cartesian coordinates in Angstroms.
type Atom struct {
	Element string  `json:"element"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
}

// Molecule describes a preset geometry plus the metadata needed to request
// an ab initio run and to annotate whichever operator comes back.
type Molecule struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Formula          string  `json:"formula"`
	Atoms            []Atom  `json:"atoms"`
	Charge           int     `json:"charge"`
	Multiplicity     int     `json:"multiplicity"`
	Basis            string  `json:"basis"`
	NuclearRepulsion float64 `json:"nuclear_repulsion"` // Hartree
	ReferenceEnergy  float64 `json:"reference_energy"`  // Hartree, exact FCI where known
	Description      string  `json:"description"`
}

// Geometry renders the driver wire form: "H 0 0 0; H 0 0 0.735".
func (m Molecule) Geometry() string {
	parts := make([]string, len(m.Atoms))
	for i, a := range m.Atoms {
		parts[i] = fmt.Sprintf("%s %g %g %g", a.Element, a.X, a.Y, a.Z)
	}
	return strings.Join(parts, "; ")
}

var library = map[string]Molecule{
	"H2_equilibrium": {
		ID:      "H2_equilibrium",
		Name:    "Hydrogen Molecule (equilibrium)",
		Formula: "H2",
		Atoms: []Atom{
			{Element: "H"},
			{Element: "H", Z: 0.735},
		},
		Charge:           0,
		Multiplicity:     1,
		Basis:            Basis,
		NuclearRepulsion: 0.7200,
		ReferenceEnergy:  -1.1372838,
		Description:      "Hydrogen molecule at equilibrium bond length (0.735 A)",
	},
	"H2_stretched": {
		ID:      "H2_stretched",
		Name:    "Hydrogen Molecule (stretched)",
		Formula: "H2",
		Atoms: []Atom{
			{Element: "H"},
			{Element: "H", Z: 1.5},
		},
		Charge:           0,
		Multiplicity:     1,
		Basis:            Basis,
		NuclearRepulsion: 0.3528,
		ReferenceEnergy:  -0.9486,
		Description:      "Hydrogen molecule at stretched bond (1.5 A) - more correlation",
	},
	"HeH+": {
		ID:      "HeH+",
		Name:    "Helium Hydride Cation",
		Formula: "HeH+",
		Atoms: []Atom{
			{Element: "He"},
			{Element: "H", Z: 0.772},
		},
		Charge:           1,
		Multiplicity:     1,
		Basis:            Basis,
		NuclearRepulsion: 1.3709,
		ReferenceEnergy:  -2.8552,
		Description:      "Helium hydride cation - simplest heteronuclear molecule",
	},
	"LiH": {
		ID:      "LiH",
		Name:    "Lithium Hydride",
		Formula: "LiH",
		Atoms: []Atom{
			{Element: "Li"},
			{Element: "H", Z: 1.595},
		},
		Charge:           0,
		Multiplicity:     1,
		Basis:            Basis,
		NuclearRepulsion: 0.9953,
		ReferenceEnergy:  -7.8823,
		Description:      "Lithium hydride - first ionic molecule",
	},
	"NH3": {
		ID:      "NH3",
		Name:    "Ammonia",
		Formula: "NH3",
		Atoms: []Atom{
			{Element: "N", Z: 0.116489},
			{Element: "H", Y: 0.939731, Z: -0.271808},
			{Element: "H", X: 0.813831, Y: -0.469865, Z: -0.271808},
			{Element: "H", X: -0.813831, Y: -0.469865, Z: -0.271808},
		},
		Charge:           0,
		Multiplicity:     1,
		Basis:            Basis,
		NuclearRepulsion: 11.98,
		ReferenceEnergy:  -55.4554,
		Description:      "Ammonia at experimental geometry - requires the ab initio driver, no precomputed table",
	},
}

// Get looks a preset up by ID.
func Get(id string) (Molecule, error) {
	m, ok := library[id]
	if !ok {
		return Molecule{}, fmt.Errorf("molecule: unknown preset %q", id)
	}
	return m, nil
}

// List returns all presets ordered by ID.
func List() []Molecule {
	out := make([]Molecule, 0, len(library))
	for _, m := range library {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
