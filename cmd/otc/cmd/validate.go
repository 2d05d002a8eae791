package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circfile"
	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
)

var validateCmd = &cobra.Command{
	Use:   "validate <circuit_file>",
	Short: "Check connection validity",
	Long: `Run the connection validator over every wire in a circuit
description file: single-connection pins (GPIO and bus class) carrying more
than one wire endpoint are reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	c, err := circfile.Load(args[0], reg)
	if err != nil {
		return fmt.Errorf("error loading circuit: %w", err)
	}

	// Count endpoints per pin, then flag single-connection pins carrying
	// more than one.
	counts := make(map[circuit.Endpoint]int)
	for _, w := range c.Wires {
		counts[w.From]++
		counts[w.To]++
	}

	problems := 0
	for ep, n := range counts {
		if n < 2 {
			continue
		}
		comp := c.Component(ep.Component)
		if comp == nil {
			continue
		}
		pin := comp.Pin(ep.Pin)
		if pin == nil {
			continue
		}
		if pin.Kind == circuit.KindPower || pin.Kind == circuit.KindGround || reg.FanOut(comp.Type) {
			continue
		}
		fmt.Printf("pin %s.%s (%s): %d connections, allows 1\n", ep.Component, ep.Pin, pin.Kind, n)
		problems++
	}

	if problems == 0 {
		fmt.Println("OK: all connections valid")
		return nil
	}
	return fmt.Errorf("%d invalid connection(s)", problems)
}
