package circuit

import "testing"

// buildTestCircuit places an MCU, an LED and a junction for validator tests.
func buildTestCircuit(t *testing.T) (*Registry, *Circuit) {
	t.Helper()
	reg := NewRegistry()
	c := NewCircuit()
	for _, def := range []struct {
		id, typ string
	}{
		{"MCU1", "mcu"},
		{"LED1", "led"},
		{"J1", TypeJunction},
	} {
		comp, err := reg.NewComponent(def.id, def.typ, "", 0, 0)
		if err != nil {
			t.Fatalf("NewComponent(%s): %v", def.id, err)
		}
		c.Components = append(c.Components, comp)
	}
	return reg, c
}

func wire(id string, fromComp, fromPin, toComp, toPin string) *Wire {
	return &Wire{
		ID:   id,
		From: Endpoint{Component: fromComp, Pin: fromPin},
		To:   Endpoint{Component: toComp, Pin: toPin},
	}
}

func TestIsPinUsed(t *testing.T) {
	_, c := buildTestCircuit(t)
	c.Wires = append(c.Wires, wire("w1", "MCU1", "D2", "LED1", "A"))

	if !c.IsPinUsed("MCU1", "D2") {
		t.Error("from endpoint not reported used")
	}
	if !c.IsPinUsed("LED1", "A") {
		t.Error("to endpoint not reported used")
	}
	if c.IsPinUsed("MCU1", "D3") {
		t.Error("unused pin reported used")
	}
	if c.IsPinUsed("NOPE", "D2") {
		t.Error("missing component reported used")
	}
}

func TestIsGPIOPin(t *testing.T) {
	_, c := buildTestCircuit(t)
	cases := []struct {
		comp, pin string
		want      bool
	}{
		{"MCU1", "D2", true},   // digital
		{"MCU1", "A0", true},   // analog
		{"MCU1", "D3", true},   // pwm
		{"MCU1", "5V", false},  // power
		{"MCU1", "SDA", false}, // i2c
		{"MCU1", "nope", false},
		{"NOPE", "D2", false},
	}
	for _, tc := range cases {
		if got := c.IsGPIOPin(tc.comp, tc.pin); got != tc.want {
			t.Errorf("IsGPIOPin(%s, %s) = %v, want %v", tc.comp, tc.pin, got, tc.want)
		}
	}
}

func TestCanConnectPinGPIOSingleConnection(t *testing.T) {
	reg, c := buildTestCircuit(t)
	if !c.CanConnectPin(reg, "MCU1", "D2") {
		t.Fatal("fresh GPIO pin rejected")
	}
	c.Wires = append(c.Wires, wire("w1", "MCU1", "D2", "LED1", "A"))
	if c.CanConnectPin(reg, "MCU1", "D2") {
		t.Fatal("used GPIO pin accepted a second connection")
	}
}

func TestCanConnectPinBusSingleConnection(t *testing.T) {
	reg, c := buildTestCircuit(t)
	c.Wires = append(c.Wires, wire("w1", "MCU1", "SDA", "LED1", "A"))
	if c.CanConnectPin(reg, "MCU1", "SDA") {
		t.Fatal("used i2c pin accepted a second connection")
	}
}

func TestCanConnectPinPowerGroundFanOut(t *testing.T) {
	reg, c := buildTestCircuit(t)
	c.Wires = append(c.Wires,
		wire("w1", "MCU1", "GND.1", "LED1", "C"),
		wire("w2", "MCU1", "GND.1", "LED1", "A"),
	)
	if !c.CanConnectPin(reg, "MCU1", "GND.1") {
		t.Fatal("ground pin with two wires rejected a third")
	}
	if !c.CanConnectPin(reg, "MCU1", "5V") {
		t.Fatal("power pin rejected")
	}
}

func TestCanConnectPinJunctionFanOut(t *testing.T) {
	reg, c := buildTestCircuit(t)
	c.Wires = append(c.Wires,
		wire("w1", "MCU1", "D2", "J1", JunctionPinID),
		wire("w2", "J1", JunctionPinID, "LED1", "A"),
		wire("w3", "J1", JunctionPinID, "LED1", "C"),
	)
	if !c.CanConnectPin(reg, "J1", JunctionPinID) {
		t.Fatal("junction pin with three wires rejected a fourth")
	}
}

func TestCanConnectPinMissingRefs(t *testing.T) {
	reg, c := buildTestCircuit(t)
	if c.CanConnectPin(reg, "NOPE", "D2") {
		t.Error("missing component accepted")
	}
	if c.CanConnectPin(reg, "MCU1", "nope") {
		t.Error("missing pin accepted")
	}
}
