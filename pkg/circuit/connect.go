package circuit

// Connection rules: power and ground pins fan out without limit (many parts
// share one rail), fan-out component types (junctions) likewise; every other
// kind carries at most one wire endpoint. All three predicates are pure and
// treat unknown references as "no".

// IsPinUsed reports whether any wire already has (componentID, pinID) as
// either endpoint.
func (c *Circuit) IsPinUsed(componentID, pinID string) bool {
	ref := Endpoint{Component: componentID, Pin: pinID}
	for _, w := range c.Wires {
		if w.From == ref || w.To == ref {
			return true
		}
	}
	return false
}

// IsGPIOPin reports whether the pin exists and its kind is GPIO class
// (digital, analog or pwm).
func (c *Circuit) IsGPIOPin(componentID, pinID string) bool {
	comp := c.Component(componentID)
	if comp == nil {
		return false
	}
	pin := comp.Pin(pinID)
	return pin != nil && pin.Kind.IsGPIO()
}

// CanConnectPin decides whether the pin may accept one more wire endpoint.
// Nonexistent components or pins cannot connect; that is a denial, not an
// error.
func (c *Circuit) CanConnectPin(reg *Registry, componentID, pinID string) bool {
	comp := c.Component(componentID)
	if comp == nil {
		return false
	}
	pin := comp.Pin(pinID)
	if pin == nil {
		return false
	}
	if pin.Kind == KindPower || pin.Kind == KindGround {
		return true
	}
	if reg != nil && reg.FanOut(comp.Type) {
		return true
	}
	return !c.IsPinUsed(componentID, pinID)
}
