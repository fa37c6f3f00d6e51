package molecule

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefault(t *testing.T) {
	m, err := Get(DefaultID)
	require.NoError(t, err)
	assert.Equal(t, "H2", m.Formula)
	assert.Equal(t, Basis, m.Basis)
	assert.Len(t, m.Atoms, 2)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("C60")
	assert.Error(t, err)
}

func TestGeometryWireForm(t *testing.T) {
	m, err := Get("H2_equilibrium")
	require.NoError(t, err)
	assert.Equal(t, "H 0 0 0; H 0 0 0.735", m.Geometry())

	nh3, err := Get("NH3")
	require.NoError(t, err)
	assert.Equal(t, "N 0 0 0.116489; H 0 0.939731 -0.271808; H 0.813831 -0.469865 -0.271808; H -0.813831 -0.469865 -0.271808", nh3.Geometry())
}

func TestDiatomicNuclearRepulsion(t *testing.T) {
	// Z1*Z2 * 0.529177 / R for the tabulated bond lengths.
	charges := map[string]int{"H": 1, "He": 2, "Li": 3}
	for _, id := range []string{"H2_equilibrium", "H2_stretched", "HeH+", "LiH"} {
		m, err := Get(id)
		require.NoError(t, err)
		require.Len(t, m.Atoms, 2)

		r := m.Atoms[1].Z - m.Atoms[0].Z
		want := float64(charges[m.Atoms[0].Element]*charges[m.Atoms[1].Element]) * 0.529177 / r
		assert.InDelta(t, want, m.NuclearRepulsion, 5e-4, "preset %s", id)
	}

	m, err := Get("H2_equilibrium")
	require.NoError(t, err)
	assert.InDelta(t, 0.7200, m.NuclearRepulsion, 1e-9)
}

func TestListIsSorted(t *testing.T) {
	mols := List()
	require.NotEmpty(t, mols)
	ids := make([]string, len(mols))
	for i, m := range mols {
		ids[i] = m.ID
	}
	assert.True(t, sort.StringsAreSorted(ids))
}
