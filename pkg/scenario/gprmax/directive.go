// Package gprmax builds, serializes and parses gprMax scenario documents.
// A document is an ordered list of typed directive records; keeping the
// records structured until the final serialization step decouples geometry
// correctness from text formatting.
package gprmax

import (
	"github.com/matwu/road-void-evolution-simulator/format"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/geometry"
)

// Directive is one line of a scenario document: a recognized keyword
// followed by its serialized arguments.
type Directive interface {
	Keyword() string
	Args() string
}

// Recognized directive keywords.
const (
	KeywordTitle          = "title"
	KeywordDomain         = "domain"
	KeywordDiscretization = "dx_dy_dz"
	KeywordTimeWindow     = "time_window"
	KeywordMaterial       = "material"
	KeywordBox            = "box"
	KeywordCylinder       = "cylinder"
	KeywordWaveform       = "waveform"
	KeywordHertzianDipole = "hertzian_dipole"
	KeywordRx             = "rx"
	KeywordSrcSteps       = "src_steps"
	KeywordRxSteps        = "rx_steps"
	KeywordGeometryView   = "geometry_view"
)

// Title names the scenario.
type Title struct {
	Text string
}

func (t Title) Keyword() string { return KeywordTitle }
func (t Title) Args() string    { return t.Text }

// Domain sets the simulation volume extents in meters.
type Domain struct {
	X float64
	Y float64
	Z float64
}

func (d Domain) Keyword() string { return KeywordDomain }
func (d Domain) Args() string    { return format.Floats(d.X, d.Y, d.Z) }

// Discretization sets the spatial step per axis in meters.
type Discretization struct {
	Dx float64
	Dy float64
	Dz float64
}

func (d Discretization) Keyword() string { return KeywordDiscretization }
func (d Discretization) Args() string    { return format.Floats(d.Dx, d.Dy, d.Dz) }

// TimeWindow sets the simulated time window. It is carried in nanoseconds
// and serialized with an explicit e-9 exponent, the way hand-written
// scenario files state it.
type TimeWindow struct {
	Nanoseconds float64
}

func (t TimeWindow) Keyword() string { return KeywordTimeWindow }
func (t TimeWindow) Args() string    { return format.Float(t.Nanoseconds) + "e-9" }

// Material declares one solver material.
type Material struct {
	RelativePermittivity float64
	Conductivity         float64
	RelativePermeability float64
	MagneticLoss         float64
	Name                 string
}

func (m Material) Keyword() string { return KeywordMaterial }
func (m Material) Args() string {
	return format.Floats(m.RelativePermittivity, m.Conductivity, m.RelativePermeability, m.MagneticLoss) +
		" " + m.Name
}

// Box places an axis-aligned box of one material.
type Box struct {
	Min      geometry.Point
	Max      geometry.Point
	Material string
}

func (b Box) Keyword() string { return KeywordBox }
func (b Box) Args() string {
	return format.Floats(b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z) + " " + b.Material
}

// Cylinder places a cylinder between two axis points.
type Cylinder struct {
	Start    geometry.Point
	End      geometry.Point
	Radius   float64
	Material string
}

func (c Cylinder) Keyword() string { return KeywordCylinder }
func (c Cylinder) Args() string {
	return format.Floats(c.Start.X, c.Start.Y, c.Start.Z, c.End.X, c.End.Y, c.End.Z, c.Radius) +
		" " + c.Material
}

// Waveform declares the source excitation. Frequency is carried in MHz and
// serialized with an explicit e6 exponent.
type Waveform struct {
	Shape        string
	Amplitude    float64
	FrequencyMHz float64
	Name         string
}

func (w Waveform) Keyword() string { return KeywordWaveform }
func (w Waveform) Args() string {
	return w.Shape + " " + format.Float(w.Amplitude) + " " + format.Float(w.FrequencyMHz) + "e6 " + w.Name
}

// HertzianDipole places the transmitting antenna.
type HertzianDipole struct {
	Polarisation string
	Position     geometry.Point
	Waveform     string
}

func (h HertzianDipole) Keyword() string { return KeywordHertzianDipole }
func (h HertzianDipole) Args() string {
	return h.Polarisation + " " + format.Floats(h.Position.X, h.Position.Y, h.Position.Z) + " " + h.Waveform
}

// Rx places a receiver.
type Rx struct {
	Position geometry.Point
}

func (r Rx) Keyword() string { return KeywordRx }
func (r Rx) Args() string    { return format.Floats(r.Position.X, r.Position.Y, r.Position.Z) }

// SrcSteps moves the source between traces.
type SrcSteps struct {
	Step geometry.Vec3D
}

func (s SrcSteps) Keyword() string { return KeywordSrcSteps }
func (s SrcSteps) Args() string    { return format.Floats(s.Step.X, s.Step.Y, s.Step.Z) }

// RxSteps moves the receiver between traces.
type RxSteps struct {
	Step geometry.Vec3D
}

func (r RxSteps) Keyword() string { return KeywordRxSteps }
func (r RxSteps) Args() string    { return format.Floats(r.Step.X, r.Step.Y, r.Step.Z) }

// GeometryView requests a solver-side geometry snapshot.
type GeometryView struct {
	Min  geometry.Point
	Max  geometry.Point
	Dx   float64
	Dy   float64
	Dz   float64
	Name string
	Mode string
}

func (g GeometryView) Keyword() string { return KeywordGeometryView }
func (g GeometryView) Args() string {
	return format.Floats(g.Min.X, g.Min.Y, g.Min.Z, g.Max.X, g.Max.Y, g.Max.Z, g.Dx, g.Dy, g.Dz) +
		" " + g.Name + " " + g.Mode
}
