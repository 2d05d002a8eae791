package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circfile"
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
)

var pinsCmd = &cobra.Command{
	Use:   "pins <circuit_file> <component_id>",
	Short: "Show a component's pins",
	Long: `Display every pin of a component with its kind and absolute position
in both view modes.`,
	Args: cobra.ExactArgs(2),
	RunE: runPins,
}

func init() {
	rootCmd.AddCommand(pinsCmd)
}

func runPins(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	c, err := circfile.Load(args[0], reg)
	if err != nil {
		return fmt.Errorf("error loading circuit: %w", err)
	}
	comp := c.Component(args[1])
	if comp == nil {
		return fmt.Errorf("no component %q in %s", args[1], args[0])
	}

	fmt.Printf("Component %s (%s", comp.ID, comp.Type)
	if comp.Variant != "" {
		fmt.Printf(" %s", comp.Variant)
	}
	fmt.Printf(") at (%g, %g) rotation %d\n\n", comp.X, comp.Y, comp.Rotation)

	for _, pin := range comp.Pins {
		fmt.Printf("  %-8s %-8s", pin.ID, pin.Kind)
		for view := circuit.ViewSchematic; view < circuit.ViewCount; view++ {
			if pos, ok := comp.PinPosition(pin.ID, view); ok {
				fmt.Printf("  %s (%g, %g)", view, pos.X, pos.Y)
			}
		}
		fmt.Println()
	}
	return nil
}
