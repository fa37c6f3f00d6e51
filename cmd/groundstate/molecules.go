package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kukyos/GroundStateFinder/internal/fallback"
	"github.com/Kukyos/GroundStateFinder/internal/molecule"
)

var moleculesCmd = &cobra.Command{
	Use:   "molecules",
	Short: "List the molecule preset library",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, m := range molecule.List() {
			table := "driver only"
			if fallback.Has(m.Formula) {
				table = "precomputed table available"
			}
			fmt.Printf("%-16s %-8s %s (%s)\n", m.ID, m.Formula, m.Description, table)
		}
		return nil
	},
}
