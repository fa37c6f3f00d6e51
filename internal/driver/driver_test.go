package driver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kukyos/GroundStateFinder/internal/molecule"
)

func testMolecule(t *testing.T) molecule.Molecule {
	t.Helper()
	m, err := molecule.Get(molecule.DefaultID)
	require.NoError(t, err)
	return m
}

func TestBuildQubitOperatorOK(t *testing.T) {
	var gotReq hamiltonianRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/hamiltonian", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(hamiltonianResponse{
			NumQubits: 4,
			Paulis:    []string{"IIII", "ZIII"},
			Coeffs:    [][2]float64{{-1.05, 0}, {0.39, 0}},
		})
	}))
	defer srv.Close()

	d := NewHTTPDriver(srv.URL, 5*time.Second, zap.NewNop())
	op, err := d.BuildQubitOperator(context.Background(), testMolecule(t))
	require.NoError(t, err)

	assert.Equal(t, 4, op.NumQubits())
	assert.Equal(t, 2, op.Len())

	assert.Equal(t, "H2", gotReq.Molecule)
	assert.Equal(t, "H 0 0 0; H 0 0 0.735", gotReq.Geometry)
	assert.Equal(t, "sto-3g", gotReq.Basis)
	assert.Equal(t, MappingJordanWigner, gotReq.Mapping)
}

func TestBuildQubitOperatorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"scf did not converge"}`))
	}))
	defer srv.Close()

	d := NewHTTPDriver(srv.URL, 5*time.Second, zap.NewNop())
	_, err := d.BuildQubitOperator(context.Background(), testMolecule(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scf did not converge")
}

func TestBuildQubitOperatorUnreachable(t *testing.T) {
	d := NewHTTPDriver("http://127.0.0.1:1", 500*time.Millisecond, zap.NewNop())
	_, err := d.BuildQubitOperator(context.Background(), testMolecule(t))
	assert.Error(t, err)
}

func TestBuildQubitOperatorMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"num_qubits":4,"paulis":["IIII","ZIII"],"coeffs":[[1,0]]}`))
	}))
	defer srv.Close()

	d := NewHTTPDriver(srv.URL, 5*time.Second, zap.NewNop())
	_, err := d.BuildQubitOperator(context.Background(), testMolecule(t))
	assert.Error(t, err)
}
