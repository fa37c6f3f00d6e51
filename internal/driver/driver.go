// External chemistry driver abstraction. The driver is a black box that
// takes geometry+basis and returns a qubit operator; its electronic
// structure internals are not reproduced here.

package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Kukyos/GroundStateFinder/internal/molecule"
	"github.com/Kukyos/GroundStateFinder/internal/operator"
)

// MappingJordanWigner is the only fermion-to-qubit mapping requested from
// the driver.
const MappingJordanWigner = "jordan-wigner"

// Driver computes a qubit operator for a molecule.
type Driver interface {
	Name() string
	BuildQubitOperator(ctx context.Context, mol molecule.Molecule) (*operator.Op, error)
}

// HTTPDriver talks to a chemistry bridge service (typically a thin PySCF
// wrapper) over HTTP JSON.
type HTTPDriver struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewHTTPDriver returns a driver for the bridge at baseURL.
func NewHTTPDriver(baseURL string, timeout time.Duration, log *zap.Logger) *HTTPDriver {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPDriver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (d *HTTPDriver) Name() string { return "pyscf-bridge" }

type hamiltonianRequest struct {
	Molecule     string `json:"molecule"`
	Geometry     string `json:"geometry"`
	Basis        string `json:"basis"`
	Charge       int    `json:"charge"`
	Multiplicity int    `json:"multiplicity"`
	Mapping      string `json:"mapping"`
}

type hamiltonianResponse struct {
	NumQubits int          `json:"num_qubits"`
	Paulis    []string     `json:"paulis"`
	Coeffs    [][2]float64 `json:"coeffs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// BuildQubitOperator requests integrals plus Jordan-Wigner mapping from the
// bridge and decodes the result. Any transport or protocol failure is
// returned to the caller; the fallback decision lives in the builder.
func (d *HTTPDriver) BuildQubitOperator(ctx context.Context, mol molecule.Molecule) (*operator.Op, error) {
	payload := hamiltonianRequest{
		Molecule:     mol.Formula,
		Geometry:     mol.Geometry(),
		Basis:        mol.Basis,
		Charge:       mol.Charge,
		Multiplicity: mol.Multiplicity,
		Mapping:      MappingJordanWigner,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("driver: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/v1/hamiltonian", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("driver: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	d.log.Debug("requesting ab initio hamiltonian",
		zap.String("molecule", mol.ID),
		zap.String("basis", mol.Basis),
		zap.String("driver", d.Name()))

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("driver: %s unreachable: %w", d.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg := readErrorMessage(resp.Body)
		return nil, fmt.Errorf("driver: %s returned %s: %s", d.Name(), resp.Status, msg)
	}

	var result hamiltonianResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("driver: decode response: %w", err)
	}
	if len(result.Paulis) != len(result.Coeffs) {
		return nil, fmt.Errorf("driver: response has %d labels but %d coefficients", len(result.Paulis), len(result.Coeffs))
	}

	terms := make([]operator.Term, len(result.Paulis))
	for i, p := range result.Paulis {
		terms[i] = operator.Term{
			Label: p,
			Coeff: complex(result.Coeffs[i][0], result.Coeffs[i][1]),
		}
	}
	op, err := operator.New(result.NumQubits, terms)
	if err != nil {
		return nil, fmt.Errorf("driver: invalid operator from %s: %w", d.Name(), err)
	}
	return op, nil
}

func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "no error detail"
	}
	var e errorResponse
	if json.Unmarshal(data, &e) == nil && e.Error != "" {
		return e.Error
	}
	return string(data)
}
