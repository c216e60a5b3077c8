package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/geometry"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/material"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/road"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/void"
)

var log = logrus.StandardLogger().WithField("logger", "scene")

// ErrVoidOutOfBounds marks scenarios whose void exceeds the road or domain
// extents. Compose returns it only in strict mode; otherwise the violation
// is logged and the scenario is emitted as-is.
var ErrVoidOutOfBounds = errors.New("void outside road extents")

// Input bundles everything Compose needs for one stage.
type Input struct {
	DomainX float64
	DomainY float64
	Dx      float64

	CrossSection road.CrossSection
	Void         void.State
	Scan         ScanConfig

	Materials    []material.Material
	FrequencyMHz float64
	TimeWindowNs float64

	Frame  Frame
	Shape  VoidShape
	Strict bool
	View   bool
}

// Compose assembles the scene graph for one stage. It is a pure transform:
// all stochastic and stage-dependent state already lives in Input.
//
// The emitted z axis always spans [0, cross-section depth]. In the
// surface-relative frame an offset equal to the air thickness is applied
// uniformly to every primitive, the antenna, and the geometry view, so the
// solver sees only non-negative coordinates.
func Compose(in Input) (*Scene, error) {
	if in.Scan.NumTraces < 1 {
		return nil, fmt.Errorf("scan: num_traces must be >= 1, got %d", in.Scan.NumTraces)
	}
	if in.Scan.NumTraces == 1 {
		log.Warn("scan: single trace configured, emitting degenerate B-scan with zero step")
	}

	depth := in.CrossSection.Depth()
	air := in.CrossSection.AirThickness()
	roadDepth := in.CrossSection.RoadDepth()

	// emitZ maps a depth below the road surface onto the emitted z axis.
	// Surface-relative: z grows downward, surface sits at the air
	// offset. Depth-from-bottom: z grows upward from the subgrade
	// bottom.
	emitZ := func(depthBelowSurface float64) float64 {
		if in.Frame == SurfaceRelative {
			return air + depthBelowSurface
		}
		return depth - air - depthBelowSurface
	}

	// zSpan orders the two mapped boundaries of a depth interval. The
	// bottom frame reverses the arithmetic but never the meaning.
	zSpan := func(topDepth, bottomDepth float64) (float64, float64) {
		a, b := emitZ(topDepth), emitZ(bottomDepth)
		if a > b {
			a, b = b, a
		}
		return a, b
	}

	scene := &Scene{
		Title: fmt.Sprintf("Road void evolution stage %d (B-scan)", in.Void.Stage),
		Stage: in.Void.Stage,
		Domain: Domain{
			SizeX: in.DomainX,
			SizeY: in.DomainY,
			SizeZ: depth,
			Dx:    in.Dx,
		},
		TimeWindowNs: in.TimeWindowNs,
		FrequencyMHz: in.FrequencyMHz,
		Materials:    in.Materials,
	}

	scene.Slabs = composeSlabs(in, zSpan)

	voidPrimitive, problems := composeVoid(in, roadDepth, zSpan)
	scene.Void = voidPrimitive
	if len(problems) > 0 {
		if in.Strict {
			return nil, fmt.Errorf("stage %d: %w: %s",
				in.Void.Stage, ErrVoidOutOfBounds, strings.Join(problems, "; "))
		}
		log.WithField("stage", in.Void.Stage).Warnf("%v: %s", ErrVoidOutOfBounds, strings.Join(problems, "; "))
	}

	scene.Scan = composeScan(in, emitZ(0))

	if in.View {
		scene.View = &GeometryView{
			Name: fmt.Sprintf("geometry_stage_%d", in.Void.Stage),
			Box: geometry.Box{
				Max: geometry.Point{X: in.DomainX, Y: in.DomainY, Z: depth},
			},
			Dx: in.Dx,
		}
	}

	return scene, nil
}

// composeSlabs resolves the cross-section into contiguous boxes. The air
// layer sits above the surface; road layers stack downward from it in
// cross-section order.
func composeSlabs(in Input, zSpan func(float64, float64) (float64, float64)) []Slab {
	air := in.CrossSection.AirThickness()

	slabs := make([]Slab, 0, len(in.CrossSection.Layers))
	cumulativeDepth := 0.0
	for _, layer := range in.CrossSection.Layers {
		var zMin, zMax float64
		if layer.Name == road.LayerAir {
			zMin, zMax = zSpan(-air, 0)
		} else {
			zMin, zMax = zSpan(cumulativeDepth, cumulativeDepth+layer.Thickness)
			cumulativeDepth += layer.Thickness
		}

		slabs = append(slabs, Slab{
			Name:     layer.Name,
			Material: layer.Material,
			Box: geometry.Box{
				Min: geometry.Point{X: 0, Y: 0, Z: zMin},
				Max: geometry.Point{X: in.DomainX, Y: in.DomainY, Z: zMax},
			},
		})
	}
	return slabs
}

// composeVoid resolves the void state into its emitted primitive and
// reports any bounds violations. CenterZ is the depth of the void top; the
// cavity extends downward from it.
func composeVoid(in Input, roadDepth float64, zSpan func(float64, float64) (float64, float64)) (VoidPrimitive, []string) {
	st := in.Void

	minX, maxX := geometry.CenterAndSizeToMinAndMax(st.CenterX, st.SizeX)
	minY, maxY := geometry.CenterAndSizeToMinAndMax(st.CenterY, st.SizeY)
	zMin, zMax := zSpan(st.CenterZ, st.CenterZ+st.SizeZ)

	primitive := VoidPrimitive{
		Shape:    in.Shape,
		Material: "void",
		Box: geometry.Box{
			Min: geometry.Point{X: minX, Y: minY, Z: zMin},
			Max: geometry.Point{X: maxX, Y: maxY, Z: zMax},
		},
		Radius: st.SizeX / 2,
	}

	var problems []string
	if st.CenterZ < 0 {
		problems = append(problems, fmt.Sprintf("void top depth %v above road surface", st.CenterZ))
	}
	if bottom := st.CenterZ + st.SizeZ; bottom > roadDepth {
		problems = append(problems, fmt.Sprintf("void bottom depth %v exceeds road depth %v", bottom, roadDepth))
	}
	if minX < 0 || maxX > in.DomainX {
		problems = append(problems, fmt.Sprintf("void x extent [%v, %v] exceeds domain width %v", minX, maxX, in.DomainX))
	}
	if minY < 0 || maxY > in.DomainY {
		problems = append(problems, fmt.Sprintf("void y extent [%v, %v] exceeds domain depth %v", minY, maxY, in.DomainY))
	}
	return primitive, problems
}

// composeScan derives the trace path. The transmitter and receiver start
// together at the scan start and advance by one step per trace; a single
// trace degenerates to a zero step.
func composeScan(in Input, surfaceZ float64) ScanPath {
	startX := in.Scan.StartXRatio * in.DomainX
	endX := in.Scan.EndXRatio * in.DomainX

	step := 0.0
	if in.Scan.NumTraces > 1 {
		step = (endX - startX) / float64(in.Scan.NumTraces-1)
	}

	return ScanPath{
		Start:  geometry.Point{X: startX, Y: in.DomainY / 2, Z: surfaceZ},
		Step:   geometry.Vec3D{X: step},
		Traces: in.Scan.NumTraces,
	}
}
