package circuit

import "testing"

const relayLibrary = `
types:
  - type: relay
    label: Relay
    footprint: {w: 60, h: 40}
    footprint_breadboard: {w: 80, h: 40}
    pins:
      - {id: coil+, kind: power, role: coil.plus, at: [-30, -10]}
      - {id: coil-, kind: ground, role: coil.minus, at: [-30, 10]}
      - {id: com, kind: digital, role: contact.com, at: [30, 0], at_breadboard: [40, 0]}
`

func TestLoadLibrary(t *testing.T) {
	reg := NewRegistry()
	if err := reg.LoadLibrary([]byte(relayLibrary)); err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}

	comp, err := reg.NewComponent("K1", "relay", "", 0, 0)
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	if len(comp.Pins) != 3 {
		t.Fatalf("got %d pins, want 3", len(comp.Pins))
	}
	pin := comp.Pin("coil+")
	if pin == nil || pin.Kind != KindPower {
		t.Fatalf("coil+ = %+v", pin)
	}
	if pin.Label != "coil+" {
		t.Fatalf("label defaulting: %q", pin.Label)
	}

	// Breadboard footprint override and per-view pin offset.
	fp, ok := reg.FootprintFor("relay", ViewBreadboard)
	if !ok || fp.W != 80 {
		t.Fatalf("breadboard footprint = %+v", fp)
	}
	com := comp.Pin("com")
	if com.Offset[ViewBreadboard].X != 40 || com.Offset[ViewSchematic].X != 30 {
		t.Fatalf("com offsets = %+v", com.Offset)
	}
}

func TestLoadLibraryVariants(t *testing.T) {
	reg := NewRegistry()
	lib := `
types:
  - type: jumper
    footprint: {w: 20, h: 10}
    variants:
      - id: open
        pins:
          - {id: a, kind: power, role: a, at: [-10, 0]}
      - id: closed
        pins:
          - {id: a, kind: power, role: a, at: [-10, 0]}
          - {id: b, kind: power, role: b, at: [10, 0]}
`
	if err := reg.LoadLibrary([]byte(lib)); err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	// First variant becomes the default when none is named.
	comp, err := reg.NewComponent("JP1", "jumper", "", 0, 0)
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	if comp.Variant != "open" || len(comp.Pins) != 1 {
		t.Fatalf("default variant %q with %d pins", comp.Variant, len(comp.Pins))
	}
}

func TestLoadLibraryRejectsBadKind(t *testing.T) {
	reg := NewRegistry()
	lib := `
types:
  - type: widget
    footprint: {w: 10, h: 10}
    pins:
      - {id: p, kind: sideways, at: [0, 0]}
`
	if err := reg.LoadLibrary([]byte(lib)); err == nil {
		t.Fatal("bad pin kind accepted")
	}
}

func TestLoadLibraryRejectsMissingAt(t *testing.T) {
	reg := NewRegistry()
	lib := `
types:
  - type: widget
    footprint: {w: 10, h: 10}
    pins:
      - {id: p, kind: power}
`
	if err := reg.LoadLibrary([]byte(lib)); err == nil {
		t.Fatal("pin without position accepted")
	}
}

func TestRegisterValidation(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&Definition{Type: "empty"}); err == nil {
		t.Error("pinless definition accepted")
	}
	if err := reg.Register(nil); err == nil {
		t.Error("nil definition accepted")
	}
	def := &Definition{
		Type:           "v",
		Variants:       []VariantSpec{{ID: "a", Pins: []PinSpec{{ID: "p", Kind: KindPower}}}},
		DefaultVariant: "missing",
	}
	if err := reg.Register(def); err == nil {
		t.Error("bad default variant accepted")
	}
}
