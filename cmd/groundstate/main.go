// groundstate generates qubit-encoded molecular Hamiltonians, printing,
// saving, serving, or diagonalizing them.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Kukyos/GroundStateFinder/internal/cache"
	"github.com/Kukyos/GroundStateFinder/internal/config"
	"github.com/Kukyos/GroundStateFinder/internal/driver"
	"github.com/Kukyos/GroundStateFinder/internal/hamiltonian"
)

var (
	// Global flags
	moleculeID       string
	forcePrecomputed bool
	verbose          bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "groundstate",
	Short: "Qubit Hamiltonian generator for small molecules",
	Long: `groundstate builds the Jordan-Wigner qubit Hamiltonian for a library of
small molecules in the STO-3G basis. It asks an external ab initio chemistry
driver when one is reachable and substitutes a precomputed literature table
otherwise, so it always produces an operator.

Run without a subcommand to print the Hamiltonian, one term per line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if moleculeID == "" {
			moleculeID = cfg.DefaultMolecule
		}

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(logLevel(cfg.LogLevel))
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		zc.OutputPaths = []string{"stderr"}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPrint,
}

func logLevel(s string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// newBuilder wires the driver, optional cache, and builder from config.
func newBuilder() (*hamiltonian.Builder, func()) {
	drv := driver.NewHTTPDriver(cfg.DriverURL, cfg.DriverTimeout, logger)
	c := cache.New(cfg.RedisAddr, cfg.CacheTTL, logger)
	cleanup := func() {
		_ = c.Close()
	}
	return hamiltonian.New(drv, c, logger), cleanup
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&moleculeID, "molecule", "m", "", "molecule preset ID (default from config)")
	rootCmd.PersistentFlags().BoolVar(&forcePrecomputed, "precomputed", false, "skip the ab initio driver and use the precomputed table")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(energyCmd)
	rootCmd.AddCommand(moleculesCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
