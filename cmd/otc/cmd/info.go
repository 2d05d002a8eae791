package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circfile"
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
)

var infoCmd = &cobra.Command{
	Use:   "info <circuit_file>",
	Short: "Show circuit information",
	Long: `Display a summary of a circuit description file: components grouped
by type, wire count, and pin statistics per kind.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	c, err := circfile.Load(args[0], reg)
	if err != nil {
		return fmt.Errorf("error loading circuit: %w", err)
	}

	fmt.Printf("Circuit: %s\n\n", args[0])
	fmt.Println("Statistics:")
	fmt.Printf("  Components: %d\n", len(c.Components))
	fmt.Printf("  Wires: %d\n", len(c.Wires))

	byType := make(map[string][]string)
	kindCounts := make(map[circuit.PinKind]int)
	for _, comp := range c.Components {
		byType[comp.Type] = append(byType[comp.Type], comp.ID)
		for _, pin := range comp.Pins {
			kindCounts[pin.Kind]++
		}
	}

	if len(byType) > 0 {
		fmt.Println("\nComponents:")
		var types []string
		for t := range byType {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			ids := byType[t]
			sort.Strings(ids)
			fmt.Printf("  %s:", t)
			for _, id := range ids {
				fmt.Printf(" %s", id)
			}
			fmt.Println()
		}
	}

	if len(kindCounts) > 0 {
		fmt.Println("\nPins by kind:")
		for k := circuit.KindPower; k <= circuit.KindSPI; k++ {
			if n := kindCounts[k]; n > 0 {
				fmt.Printf("  %s: %d\n", k, n)
			}
		}
	}
	return nil
}
