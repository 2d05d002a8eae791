package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
)

var (
	// Global flags
	verbose   bool
	libraries []string
)

var rootCmd = &cobra.Command{
	Use:   "otc",
	Short: "OpenTraceCircuit - circuit topology and routing tools",
	Long: `OpenTraceCircuit (otc) inspects circuit description files (.otc):
component placement, pin positions, connection validity and wire routing.

Examples:
  otc info blink.otc                  # Summary of a circuit file
  otc pins blink.otc MCU1             # Absolute pin positions
  otc route blink.otc W1              # Route one wire and print the path
  otc validate blink.otc              # Check every wire against the validator`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringArrayVarP(&libraries, "library", "l", nil, "extra component library YAML file (repeatable)")
}

// newRegistry builds the component registry: built-in parts plus any
// libraries named on the command line.
func newRegistry() (*circuit.Registry, error) {
	reg := circuit.NewRegistry()
	for _, path := range libraries {
		if err := reg.LoadLibraryFile(path); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// newLogger returns a development logger when --verbose is set, a no-op
// logger otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
