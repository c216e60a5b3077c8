// Package scene assembles the full scenario geometry for one stage: the
// layered road cross-section, the void primitive, and the antenna scan
// path, with every coordinate expressed in the non-negative frame the
// solver requires.
package scene

import (
	"fmt"

	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/geometry"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/material"
)

// Frame selects how depth maps onto the emitted z axis.
type Frame int

const (
	// SurfaceRelative places the road surface at z equal to the air
	// thickness, with z growing downward into the road. This is the
	// default frame.
	SurfaceRelative Frame = iota
	// DepthFromBottom places z=0 at the subgrade bottom with z growing
	// upward; no offset is needed.
	DepthFromBottom
)

// ParseFrame maps the configuration strings onto a Frame.
func ParseFrame(s string) (Frame, error) {
	switch s {
	case "surface":
		return SurfaceRelative, nil
	case "bottom":
		return DepthFromBottom, nil
	}
	return 0, fmt.Errorf("unknown coordinate frame %q", s)
}

// VoidShape selects the primitive the void is emitted as.
type VoidShape int

const (
	VoidBox VoidShape = iota
	VoidCylinder
)

// ParseVoidShape maps the configuration strings onto a VoidShape.
func ParseVoidShape(s string) (VoidShape, error) {
	switch s {
	case "box":
		return VoidBox, nil
	case "cylinder":
		return VoidCylinder, nil
	}
	return 0, fmt.Errorf("unknown void shape %q", s)
}

// Domain is the emitted simulation volume.
type Domain struct {
	SizeX float64
	SizeY float64
	SizeZ float64
	// Dx is the uniform spatial step on all three axes.
	Dx float64
}

// ScanConfig describes the B-scan trace layout along the x axis.
type ScanConfig struct {
	NumTraces   int
	StartXRatio float64
	EndXRatio   float64
}

// ScanPath is the resolved transmitter/receiver path: both start at Start
// and advance by Step once per trace.
type ScanPath struct {
	Start  geometry.Point
	Step   geometry.Vec3D
	Traces int
}

// Slab is one road layer resolved to an emitted box.
type Slab struct {
	Name     string
	Material string
	Box      geometry.Box
}

// VoidPrimitive is the emitted void. Box always bounds the void; for
// VoidCylinder the axis runs through the box center parallel to z and
// Radius is half the x extent.
type VoidPrimitive struct {
	Shape    VoidShape
	Material string
	Box      geometry.Box
	Radius   float64
}

// GeometryView requests a solver-side geometry snapshot of the volume.
type GeometryView struct {
	Name string
	Box  geometry.Box
	Dx   float64
}

// Scene is the composed, serialization-ready scenario geometry.
type Scene struct {
	Title string
	Stage int

	Domain       Domain
	TimeWindowNs float64
	FrequencyMHz float64

	// Materials in emission order; the serializer relies on this slice
	// preceding all primitives.
	Materials []material.Material
	Slabs     []Slab
	Void      VoidPrimitive
	Scan      ScanPath

	// View is nil when no geometry snapshot is requested.
	View *GeometryView
}
