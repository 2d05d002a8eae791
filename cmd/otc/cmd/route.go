package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circfile"
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/store"
)

var routeView string

var routeCmd = &cobra.Command{
	Use:   "route <circuit_file> [wire_id]",
	Short: "Route wires and print their paths",
	Long: `Route one wire (or all wires) of a circuit description file through
the obstacle-avoiding Manhattan router and print the resulting point lists.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&routeView, "view", "schematic", "view mode (schematic or breadboard)")
	rootCmd.AddCommand(routeCmd)
}

func parseView(name string) (circuit.ViewMode, error) {
	switch name {
	case "schematic":
		return circuit.ViewSchematic, nil
	case "breadboard":
		return circuit.ViewBreadboard, nil
	}
	return 0, fmt.Errorf("unknown view %q (want schematic or breadboard)", name)
}

func runRoute(cmd *cobra.Command, args []string) error {
	view, err := parseView(routeView)
	if err != nil {
		return err
	}
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	c, err := circfile.Load(args[0], reg)
	if err != nil {
		return fmt.Errorf("error loading circuit: %w", err)
	}
	s := store.NewFromCircuit(reg, c, store.WithLogger(newLogger()))

	wires := c.Wires
	if len(args) == 2 {
		w := c.Wire(args[1])
		if w == nil {
			return fmt.Errorf("no wire %q in %s", args[1], args[0])
		}
		wires = []*circuit.Wire{w}
	}

	for _, w := range wires {
		path := s.WirePath(w.ID, view)
		if path == nil {
			fmt.Printf("%s: unroutable (missing endpoint)\n", w.ID)
			continue
		}
		fmt.Printf("%s: %s.%s -> %s.%s\n", w.ID, w.From.Component, w.From.Pin, w.To.Component, w.To.Pin)
		for _, p := range path {
			fmt.Printf("  (%g, %g)\n", p.X, p.Y)
		}
	}
	return nil
}
