package circuit

import "github.com/OpenTraceLab/OpenTraceCircuit/pkg/geometry"

// TypeJunction is the synthetic zero-footprint component created when a wire
// is split. It has a single pin and fans out without limit.
const TypeJunction = "junction"

// JunctionPinID is the id of a junction's only pin.
const JunctionPinID = "J"

// at builds a per-view offset with the same coordinates in both views.
func at(x, y float64) [ViewCount]geometry.Point {
	p := geometry.Point{X: x, Y: y}
	return [ViewCount]geometry.Point{p, p}
}

// at2 builds a per-view offset with distinct schematic and breadboard
// coordinates.
func at2(sx, sy, bx, by float64) [ViewCount]geometry.Point {
	return [ViewCount]geometry.Point{
		ViewSchematic:  {X: sx, Y: sy},
		ViewBreadboard: {X: bx, Y: by},
	}
}

// box builds a per-view footprint with the same size in both views.
func box(w, h float64) [ViewCount]Footprint {
	return [ViewCount]Footprint{{W: w, H: h}, {W: w, H: h}}
}

// box2 builds a per-view footprint with distinct schematic and breadboard
// sizes.
func box2(sw, sh, bw, bh float64) [ViewCount]Footprint {
	return [ViewCount]Footprint{
		ViewSchematic:  {W: sw, H: sh},
		ViewBreadboard: {W: bw, H: bh},
	}
}

// builtinLibrary returns the definitions every registry starts with.
func builtinLibrary() []*Definition {
	return []*Definition{
		{
			Type:      "resistor",
			Label:     "Resistor",
			Footprint: box(60, 20),
			Pins: []PinSpec{
				{ID: "a", Label: "A", Kind: KindPower, Role: "lead.a", Offset: at(-30, 0)},
				{ID: "b", Label: "B", Kind: KindPower, Role: "lead.b", Offset: at(30, 0)},
			},
		},
		{
			Type:      "led",
			Label:     "LED",
			Footprint: box2(30, 40, 20, 50),
			Pins: []PinSpec{
				{ID: "A", Label: "Anode", Kind: KindPower, Role: "anode", Offset: at2(-10, 20, -5, 25)},
				{ID: "C", Label: "Cathode", Kind: KindGround, Role: "cathode", Offset: at2(10, 20, 5, 25)},
			},
		},
		{
			Type:      "pushbutton",
			Label:     "Pushbutton",
			Footprint: box(50, 50),
			Pins: []PinSpec{
				{ID: "1.l", Label: "1L", Kind: KindPower, Role: "pole1.a", Offset: at(-25, -15)},
				{ID: "1.r", Label: "1R", Kind: KindPower, Role: "pole1.b", Offset: at(25, -15)},
				{ID: "2.l", Label: "2L", Kind: KindPower, Role: "pole2.a", Offset: at(-25, 15)},
				{ID: "2.r", Label: "2R", Kind: KindPower, Role: "pole2.b", Offset: at(25, 15)},
			},
		},
		{
			Type:           "switch",
			Label:          "Slide Switch",
			Footprint:      box(60, 30),
			DefaultVariant: "spst",
			Variants: []VariantSpec{
				{
					ID: "spst",
					Pins: []PinSpec{
						{ID: "com", Label: "COM", Kind: KindPower, Role: "pole1.com", Offset: at(-30, 0)},
						{ID: "no", Label: "NO", Kind: KindPower, Role: "pole1.no", Offset: at(30, 0)},
					},
				},
				{
					ID: "spdt",
					Pins: []PinSpec{
						{ID: "com", Label: "COM", Kind: KindPower, Role: "pole1.com", Offset: at(-30, 0)},
						{ID: "no", Label: "NO", Kind: KindPower, Role: "pole1.no", Offset: at(30, -10)},
						{ID: "nc", Label: "NC", Kind: KindPower, Role: "pole1.nc", Offset: at(30, 10)},
					},
				},
				{
					ID: "dpst",
					Pins: []PinSpec{
						{ID: "com1", Label: "COM1", Kind: KindPower, Role: "pole1.com", Offset: at(-30, -10)},
						{ID: "no1", Label: "NO1", Kind: KindPower, Role: "pole1.no", Offset: at(30, -10)},
						{ID: "com2", Label: "COM2", Kind: KindPower, Role: "pole2.com", Offset: at(-30, 10)},
						{ID: "no2", Label: "NO2", Kind: KindPower, Role: "pole2.no", Offset: at(30, 10)},
					},
				},
				{
					ID: "dpdt",
					Pins: []PinSpec{
						{ID: "com1", Label: "COM1", Kind: KindPower, Role: "pole1.com", Offset: at(-30, -10)},
						{ID: "no1", Label: "NO1", Kind: KindPower, Role: "pole1.no", Offset: at(30, -15)},
						{ID: "nc1", Label: "NC1", Kind: KindPower, Role: "pole1.nc", Offset: at(30, -5)},
						{ID: "com2", Label: "COM2", Kind: KindPower, Role: "pole2.com", Offset: at(-30, 10)},
						{ID: "no2", Label: "NO2", Kind: KindPower, Role: "pole2.no", Offset: at(30, 5)},
						{ID: "nc2", Label: "NC2", Kind: KindPower, Role: "pole2.nc", Offset: at(30, 15)},
					},
				},
			},
		},
		{
			Type:      "mcu",
			Label:     "Microcontroller",
			Footprint: box2(120, 160, 140, 220),
			Pins: []PinSpec{
				{ID: "5V", Label: "5V", Kind: KindPower, Role: "power.5v", Offset: at(-60, -70)},
				{ID: "3V3", Label: "3.3V", Kind: KindPower, Role: "power.3v3", Offset: at(-60, -50)},
				{ID: "GND.1", Label: "GND", Kind: KindGround, Role: "ground.1", Offset: at(-60, -30)},
				{ID: "GND.2", Label: "GND", Kind: KindGround, Role: "ground.2", Offset: at(-60, -10)},
				{ID: "A0", Label: "A0", Kind: KindAnalog, Role: "analog.0", Offset: at(-60, 10)},
				{ID: "A1", Label: "A1", Kind: KindAnalog, Role: "analog.1", Offset: at(-60, 30)},
				{ID: "D2", Label: "D2", Kind: KindDigital, Role: "digital.2", Offset: at(60, -70)},
				{ID: "D3", Label: "D3", Kind: KindPWM, Role: "pwm.3", Offset: at(60, -50)},
				{ID: "D4", Label: "D4", Kind: KindDigital, Role: "digital.4", Offset: at(60, -30)},
				{ID: "D5", Label: "D5", Kind: KindPWM, Role: "pwm.5", Offset: at(60, -10)},
				{ID: "SDA", Label: "SDA", Kind: KindI2C, Role: "i2c.sda", Offset: at(60, 10)},
				{ID: "SCL", Label: "SCL", Kind: KindI2C, Role: "i2c.scl", Offset: at(60, 30)},
				{ID: "MOSI", Label: "MOSI", Kind: KindSPI, Role: "spi.mosi", Offset: at(60, 50)},
				{ID: "MISO", Label: "MISO", Kind: KindSPI, Role: "spi.miso", Offset: at(60, 70)},
			},
		},
		{
			Type:   TypeJunction,
			Label:  "Junction",
			FanOut: true,
			// Zero footprint: junctions never become routing obstacles.
			Pins: []PinSpec{
				{ID: JunctionPinID, Label: "J", Kind: KindPower, Role: "junction", Offset: at(0, 0)},
			},
		},
	}
}
