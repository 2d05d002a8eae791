package circfile

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/circuit"
)

const sampleCircuit = `
-- blink demo
circuit "blink"

component MCU1 mcu at (100, 400)
component R1 resistor at (100, 200) rotate 90
component LED1 led at (300, 200) flipx prop lit = true
component SW1 switch variant spdt at (500, 100) prop throws = 2

wire W1 from MCU1 pin D2 to R1 pin a color "green"
wire W2 from R1 pin b to LED1 pin A
wire W3 from MCU1 pin "GND.1" to LED1 pin C color "black"
`

func TestParseSample(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	file, err := parser.ParseString(sampleCircuit)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if file.Name == nil || string(*file.Name) != "blink" {
		t.Fatalf("circuit name = %v", file.Name)
	}
	if len(file.Statements) != 7 {
		t.Fatalf("got %d statements, want 7", len(file.Statements))
	}
}

func TestBuildSample(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	file, err := parser.ParseString(sampleCircuit)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	c, err := file.Build(circuit.NewRegistry())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if len(c.Components) != 4 || len(c.Wires) != 3 {
		t.Fatalf("got %d components, %d wires", len(c.Components), len(c.Wires))
	}

	r1 := c.Component("R1")
	if r1 == nil || r1.X != 100 || r1.Y != 200 || r1.Rotation != 90 {
		t.Fatalf("R1 = %+v", r1)
	}

	led := c.Component("LED1")
	if led == nil || !led.FlipX || led.FlipY {
		t.Fatalf("LED1 flips = %+v", led)
	}
	if lit, ok := led.Props["lit"].(bool); !ok || !lit {
		t.Fatalf("LED1 props = %+v", led.Props)
	}

	sw := c.Component("SW1")
	if sw == nil || sw.Variant != "spdt" {
		t.Fatalf("SW1 = %+v", sw)
	}
	if sw.Pin("nc") == nil {
		t.Fatal("SW1 missing spdt pin nc")
	}
	if throws, ok := sw.Props["throws"].(float64); !ok || throws != 2 {
		t.Fatalf("SW1 props = %+v", sw.Props)
	}

	w3 := c.Wire("W3")
	if w3 == nil || w3.From.Pin != "GND.1" || w3.Color != "black" {
		t.Fatalf("W3 = %+v", w3)
	}
	if w1 := c.Wire("W1"); w1.Color != "green" {
		t.Fatalf("W1 color = %q", w1.Color)
	}
}

func TestBuildRejectsUnknownPin(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	file, err := parser.ParseString(`
component R1 resistor at (0, 0)
component R2 resistor at (100, 0)
wire W1 from R1 pin z to R2 pin a
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := file.Build(circuit.NewRegistry()); err == nil {
		t.Fatal("wire to missing pin accepted")
	}
}

func TestBuildRejectsUnknownType(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	file, err := parser.ParseString(`component X1 flux_capacitor at (0, 0)`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := file.Build(circuit.NewRegistry()); err == nil {
		t.Fatal("unknown component type accepted")
	}
}

func TestBuildRejectsDuplicateIDs(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	file, err := parser.ParseString(`
component R1 resistor at (0, 0)
component R1 resistor at (100, 0)
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := file.Build(circuit.NewRegistry()); err == nil {
		t.Fatal("duplicate component id accepted")
	}
}

func TestParseEmptyFile(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	file, err := parser.ParseString("-- nothing here\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(file.Statements) != 0 {
		t.Fatalf("got %d statements, want 0", len(file.Statements))
	}
}
