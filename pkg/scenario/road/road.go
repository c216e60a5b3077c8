// Package road models the layered road cross-section that generated
// scenarios embed the void into.
package road

import "fmt"

// Canonical layer names, ordered surface-to-depth with the air gap above
// the surface first. The order is fixed: scene composition and material
// emission both rely on it.
const (
	LayerAir           = "air"
	LayerSurfaceAsphalt = "surface_asphalt"
	LayerBaseAsphalt   = "base_asphalt"
	LayerUpperSubbase  = "upper_subbase"
	LayerLowerSubbase  = "lower_subbase"
	LayerSubgrade      = "subgrade"
)

// LayerNames lists every layer in emission order.
var LayerNames = []string{
	LayerAir,
	LayerSurfaceAsphalt,
	LayerBaseAsphalt,
	LayerUpperSubbase,
	LayerLowerSubbase,
	LayerSubgrade,
}

// Layer is one slab of the cross-section.
type Layer struct {
	Name      string
	Thickness float64
	// Material names the solver material filling the layer. It matches
	// the layer name in the default configuration but is kept separate so
	// two layers can share a material.
	Material string
}

// CrossSection is the ordered top-to-bottom stack of road layers, air
// first.
type CrossSection struct {
	Layers []Layer
}

// New builds a cross-section from the per-layer thicknesses, in canonical
// order. Thicknesses must be positive; this is verified during
// configuration checking before any cross-section is built.
func New(thicknesses map[string]float64) (CrossSection, error) {
	cs := CrossSection{Layers: make([]Layer, 0, len(LayerNames))}
	for _, name := range LayerNames {
		thickness, ok := thicknesses[name]
		if !ok {
			return CrossSection{}, fmt.Errorf("road cross-section: missing %q layer thickness", name)
		}
		if thickness <= 0 {
			return CrossSection{}, fmt.Errorf("road cross-section: %q layer thickness must be > 0, got %v", name, thickness)
		}
		cs.Layers = append(cs.Layers, Layer{Name: name, Thickness: thickness, Material: name})
	}
	return cs, nil
}

// Depth is the total cross-section depth including the air gap. The
// simulation domain z extent is derived from it.
func (c CrossSection) Depth() float64 {
	total := 0.0
	for _, l := range c.Layers {
		total += l.Thickness
	}
	return total
}

// AirThickness returns the thickness of the air gap above the road
// surface.
func (c CrossSection) AirThickness() float64 {
	for _, l := range c.Layers {
		if l.Name == LayerAir {
			return l.Thickness
		}
	}
	return 0
}

// RoadDepth is the depth of the paved structure below the surface,
// excluding the air gap. Void depth ratios are measured against it.
func (c CrossSection) RoadDepth() float64 {
	return c.Depth() - c.AirThickness()
}
