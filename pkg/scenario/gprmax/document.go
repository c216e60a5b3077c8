package gprmax

import (
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/scene"
)

// Source waveform identifiers shared by the waveform and dipole
// directives.
const (
	waveformShape = "ricker"
	waveformName  = "my_ricker"
	dipoleAxis    = "z"

	// geometryViewMode "f" requests a per-cell (fine) geometry file.
	geometryViewMode = "f"
)

// Document is an ordered scenario description. Directive order is
// preserved through serialization because the solver resolves material
// references in file order.
type Document struct {
	Directives []Directive
}

// Append adds directives preserving order.
func (d *Document) Append(directives ...Directive) {
	d.Directives = append(d.Directives, directives...)
}

// Domain returns the document's domain directive.
func (d *Document) Domain() (Domain, bool) {
	for _, dir := range d.Directives {
		if domain, ok := dir.(Domain); ok {
			return domain, true
		}
	}
	return Domain{}, false
}

// Materials returns all material directives in document order.
func (d *Document) Materials() []Material {
	var out []Material
	for _, dir := range d.Directives {
		if m, ok := dir.(Material); ok {
			out = append(out, m)
		}
	}
	return out
}

// Primitives returns all geometry primitives (boxes and cylinders) in
// document order.
func (d *Document) Primitives() []Directive {
	var out []Directive
	for _, dir := range d.Directives {
		switch dir.(type) {
		case Box, Cylinder:
			out = append(out, dir)
		}
	}
	return out
}

// FromScene lowers a composed scene into its document form. Materials are
// emitted before any primitive that references them; layer slabs precede
// the void so the cavity carves into its host layer.
func FromScene(s *scene.Scene) *Document {
	doc := &Document{}

	doc.Append(
		Title{Text: s.Title},
		Domain{X: s.Domain.SizeX, Y: s.Domain.SizeY, Z: s.Domain.SizeZ},
		Discretization{Dx: s.Domain.Dx, Dy: s.Domain.Dx, Dz: s.Domain.Dx},
		TimeWindow{Nanoseconds: s.TimeWindowNs},
	)

	for _, m := range s.Materials {
		doc.Append(Material{
			RelativePermittivity: m.RelativePermittivity,
			Conductivity:         m.Conductivity,
			RelativePermeability: m.RelativePermeability,
			MagneticLoss:         m.MagneticLoss,
			Name:                 m.Name,
		})
	}

	for _, slab := range s.Slabs {
		doc.Append(Box{Min: slab.Box.Min, Max: slab.Box.Max, Material: slab.Material})
	}

	doc.Append(voidPrimitive(s.Void))

	doc.Append(
		Waveform{Shape: waveformShape, Amplitude: 1, FrequencyMHz: s.FrequencyMHz, Name: waveformName},
		HertzianDipole{Polarisation: dipoleAxis, Position: s.Scan.Start, Waveform: waveformName},
		Rx{Position: s.Scan.Start},
		SrcSteps{Step: s.Scan.Step},
		RxSteps{Step: s.Scan.Step},
	)

	if s.View != nil {
		doc.Append(GeometryView{
			Min:  s.View.Box.Min,
			Max:  s.View.Box.Max,
			Dx:   s.View.Dx,
			Dy:   s.View.Dx,
			Dz:   s.View.Dx,
			Name: s.View.Name,
			Mode: geometryViewMode,
		})
	}

	return doc
}

func voidPrimitive(v scene.VoidPrimitive) Directive {
	if v.Shape == scene.VoidCylinder {
		center := v.Box.Center()
		return Cylinder{
			Start:    center.WithZ(v.Box.Min.Z),
			End:      center.WithZ(v.Box.Max.Z),
			Radius:   v.Radius,
			Material: v.Material,
		}
	}
	return Box{Min: v.Box.Min, Max: v.Box.Max, Material: v.Material}
}
