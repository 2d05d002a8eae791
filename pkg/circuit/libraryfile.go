package circuit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceCircuit/pkg/geometry"
)

// Library files let users register extra component types without touching the
// engine. The format is YAML:
//
//	types:
//	  - type: relay
//	    label: Relay
//	    footprint: {w: 60, h: 40}
//	    pins:
//	      - {id: coil+, kind: power, role: coil.plus, at: [-30, -10]}
//	      - {id: coil-, kind: ground, role: coil.minus, at: [-30, 10]}
//
// A pin's `at` holds [x, y] used for both views; `at_breadboard` overrides
// the breadboard projection. Variant types replace `pins` with `variants`.

type libraryFile struct {
	Types []libraryType `yaml:"types"`
}

type libraryType struct {
	Type                string           `yaml:"type"`
	Label               string           `yaml:"label"`
	Footprint           libraryFootprint `yaml:"footprint"`
	FootprintBreadboard libraryFootprint `yaml:"footprint_breadboard"`
	FanOut              bool             `yaml:"fanout"`
	Pins                []libraryPin     `yaml:"pins"`
	DefaultVariant      string           `yaml:"default_variant"`
	Variants            []libraryVariant `yaml:"variants"`
}

type libraryFootprint struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type libraryVariant struct {
	ID   string       `yaml:"id"`
	Pins []libraryPin `yaml:"pins"`
}

type libraryPin struct {
	ID           string    `yaml:"id"`
	Label        string    `yaml:"label"`
	Kind         string    `yaml:"kind"`
	Role         string    `yaml:"role"`
	At           []float64 `yaml:"at"`
	AtBreadboard []float64 `yaml:"at_breadboard"`
}

// LoadLibrary parses YAML library data and registers every definition it
// contains. The first invalid definition aborts the load.
func (r *Registry) LoadLibrary(data []byte) error {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("circuit: parse library: %w", err)
	}
	for _, lt := range file.Types {
		def, err := lt.definition()
		if err != nil {
			return err
		}
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// LoadLibraryFile reads and registers a YAML library file.
func (r *Registry) LoadLibraryFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("circuit: read library %s: %w", path, err)
	}
	if err := r.LoadLibrary(data); err != nil {
		return fmt.Errorf("circuit: library %s: %w", path, err)
	}
	return nil
}

func (lt libraryType) definition() (*Definition, error) {
	def := &Definition{
		Type:           lt.Type,
		Label:          lt.Label,
		FanOut:         lt.FanOut,
		DefaultVariant: lt.DefaultVariant,
	}
	def.Footprint[ViewSchematic] = Footprint{W: lt.Footprint.W, H: lt.Footprint.H}
	def.Footprint[ViewBreadboard] = Footprint{W: lt.Footprint.W, H: lt.Footprint.H}
	if lt.FootprintBreadboard.W != 0 || lt.FootprintBreadboard.H != 0 {
		def.Footprint[ViewBreadboard] = Footprint{W: lt.FootprintBreadboard.W, H: lt.FootprintBreadboard.H}
	}
	for _, lp := range lt.Pins {
		spec, err := lp.spec(lt.Type)
		if err != nil {
			return nil, err
		}
		def.Pins = append(def.Pins, spec)
	}
	for _, lv := range lt.Variants {
		variant := VariantSpec{ID: lv.ID}
		for _, lp := range lv.Pins {
			spec, err := lp.spec(lt.Type)
			if err != nil {
				return nil, err
			}
			variant.Pins = append(variant.Pins, spec)
		}
		def.Variants = append(def.Variants, variant)
	}
	if len(def.Variants) > 0 && def.DefaultVariant == "" {
		def.DefaultVariant = def.Variants[0].ID
	}
	return def, nil
}

func (lp libraryPin) spec(componentType string) (PinSpec, error) {
	kind, ok := ParsePinKind(lp.Kind)
	if !ok {
		return PinSpec{}, fmt.Errorf("circuit: type %s pin %s: unknown kind %q", componentType, lp.ID, lp.Kind)
	}
	if len(lp.At) != 2 {
		return PinSpec{}, fmt.Errorf("circuit: type %s pin %s: `at` needs [x, y]", componentType, lp.ID)
	}
	spec := PinSpec{
		ID:    lp.ID,
		Label: lp.Label,
		Kind:  kind,
		Role:  lp.Role,
	}
	if spec.Label == "" {
		spec.Label = lp.ID
	}
	p := geometry.Point{X: lp.At[0], Y: lp.At[1]}
	spec.Offset[ViewSchematic] = p
	spec.Offset[ViewBreadboard] = p
	if len(lp.AtBreadboard) == 2 {
		spec.Offset[ViewBreadboard] = geometry.Point{X: lp.AtBreadboard[0], Y: lp.AtBreadboard[1]}
	}
	return spec, nil
}
