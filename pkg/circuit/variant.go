package circuit

// Variant migration. Changing a component's variant replaces its pin list
// wholesale; wires that referenced the old pins are either remapped onto the
// counterpart pin in the new layout or removed entirely. A wire endpoint is
// never left dangling, not even transiently.

// UnmappedEndpoint reports a wire endpoint whose old pin has no counterpart
// in the new variant. The owning wire is removed from the graph.
type UnmappedEndpoint struct {
	WireID string
	End    string // "from" or "to"
	PinID  string
}

// MigrationResult summarizes what a variant change did to the wiring.
type MigrationResult struct {
	Detached []string // ids of wires removed because an endpoint was unmapped
	Unmapped []UnmappedEndpoint
}

// MigrationMap builds the old-pin to new-pin mapping for a variant pair of a
// type. Pins are matched by their Role tag, which stays stable across
// variants (a DPDT "com1" and an SPDT "com" both carry role "pole1.com").
// Types without variants, or unknown variants, yield nil: migration is then
// a no-op.
func (r *Registry) MigrationMap(componentType, oldVariant, newVariant string) map[string]string {
	def, ok := r.Lookup(componentType)
	if !ok || len(def.Variants) == 0 {
		return nil
	}
	oldSpec := def.Variant(oldVariant)
	newSpec := def.Variant(newVariant)
	if oldSpec == nil || newSpec == nil {
		return nil
	}
	byRole := make(map[string]string, len(newSpec.Pins))
	for _, p := range newSpec.Pins {
		if p.Role != "" {
			byRole[p.Role] = p.ID
		}
	}
	mapping := make(map[string]string, len(oldSpec.Pins))
	for _, p := range oldSpec.Pins {
		if newID, ok := byRole[p.Role]; ok && p.Role != "" {
			mapping[p.ID] = newID
		}
	}
	return mapping
}

// MigrateWires rewires every wire touching componentID for a variant change
// from oldVariant to newVariant. Mapped endpoints are rewritten in place and
// the wire's cached paths cleared; a wire with any unmapped endpoint is
// removed and reported. Types without a migration table leave the wiring
// unchanged.
func (c *Circuit) MigrateWires(reg *Registry, componentID, oldVariant, newVariant string) MigrationResult {
	var result MigrationResult
	comp := c.Component(componentID)
	if comp == nil || reg == nil {
		return result
	}
	mapping := reg.MigrationMap(comp.Type, oldVariant, newVariant)
	if mapping == nil {
		return result
	}

	kept := c.Wires[:0]
	for _, w := range c.Wires {
		drop := false
		if w.From.Component == componentID {
			if newID, ok := mapping[w.From.Pin]; ok {
				if newID != w.From.Pin {
					w.From.Pin = newID
					w.ClearPaths()
				}
			} else {
				result.Unmapped = append(result.Unmapped, UnmappedEndpoint{WireID: w.ID, End: "from", PinID: w.From.Pin})
				drop = true
			}
		}
		if w.To.Component == componentID {
			if newID, ok := mapping[w.To.Pin]; ok {
				if newID != w.To.Pin {
					w.To.Pin = newID
					w.ClearPaths()
				}
			} else {
				result.Unmapped = append(result.Unmapped, UnmappedEndpoint{WireID: w.ID, End: "to", PinID: w.To.Pin})
				drop = true
			}
		}
		if drop {
			result.Detached = append(result.Detached, w.ID)
			continue
		}
		kept = append(kept, w)
	}
	c.Wires = kept
	return result
}
