// Command crystal builds finite atomic-lattice models of nitinol and
// reports their derived geometry: atom counts per species, bond-graph
// size, and the equal-aspect view frame. Rendering proper is left to
// downstream consumers; this tool prints textual summaries.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	paramsPath string

	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "crystal",
	Short: "Build and inspect finite atomic-lattice models",
	Long: `crystal constructs periodic unit cells from lattice parameters, tiles
them into finite structures, optionally carves a wire-shaped sample, and
derives the bond graph and bounding geometry used for rendering.

Subcommands:
  compare  build the B2 austenite and B19' martensite phases side by side
  wire     carve a cylindrical wire from a bulk B2 lattice`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
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
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(compareCmd, wireCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
