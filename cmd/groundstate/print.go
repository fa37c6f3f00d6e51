package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kukyos/GroundStateFinder/internal/operator"
)

// runPrint is the root command: build the Hamiltonian and print one sorted
// term line per Pauli string.
func runPrint(cmd *cobra.Command, args []string) error {
	builder, cleanup := newBuilder()
	defer cleanup()

	res, err := builder.Build(cmd.Context(), moleculeID, forcePrecomputed)
	if err != nil {
		return err
	}

	fmt.Printf("Qubit Hamiltonian for %s (%s, %s):\n",
		res.Provenance.MoleculeID, res.Provenance.Mapping, res.Provenance.Basis)
	if res.Precomputed() {
		fmt.Println("(precomputed fallback coefficients used; ab initio driver unavailable or skipped)")
	}
	for _, line := range res.Operator.Lines(operator.DisplayCutoff) {
		fmt.Println(line)
	}
	return nil
}
