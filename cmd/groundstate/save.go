package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var saveOut string

// saveCmd writes the operator and its provenance to a JSON file so it can
// be reloaded later. Existing files are overwritten.
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Build the Hamiltonian and write it to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		builder, cleanup := newBuilder()
		defer cleanup()

		res, err := builder.Build(cmd.Context(), moleculeID, forcePrecomputed)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(res.Document(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode operator: %w", err)
		}
		if err := os.WriteFile(saveOut, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", saveOut, err)
		}

		fmt.Printf("Saved operator with %d terms to %s\n", res.Operator.Len(), saveOut)
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveOut, "out", "", "output JSON file path")
	saveCmd.MarkFlagRequired("out")
}
