package gprmax

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/material"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/road"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/scene"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/void"
)

func composedScene(t *testing.T, shape scene.VoidShape) *scene.Scene {
	t.Helper()

	cs, err := road.New(map[string]float64{
		road.LayerAir:            0.1,
		road.LayerSurfaceAsphalt: 0.05,
		road.LayerBaseAsphalt:    0.15,
		road.LayerUpperSubbase:   0.3,
		road.LayerLowerSubbase:   0.3,
		road.LayerSubgrade:       0.6,
	})
	require.NoError(t, err)

	materials := make([]material.Material, 0, 7)
	for _, name := range append(append([]string{}, road.LayerNames...), "void") {
		materials = append(materials, material.Material{
			Name: name, RelativePermittivity: 1, RelativePermeability: 1,
		})
	}

	s, err := scene.Compose(scene.Input{
		DomainX:      2.0,
		DomainY:      1.0,
		Dx:           0.02,
		CrossSection: cs,
		Void: void.State{
			CenterX: 1.0, CenterY: 0.5, CenterZ: 0.6,
			SizeX: 0.3, SizeY: 0.2, SizeZ: 0.15,
			Stage: 0, GrowthRate: 1,
		},
		Scan:         scene.ScanConfig{NumTraces: 50, StartXRatio: 0.1, EndXRatio: 0.9},
		Materials:    materials,
		FrequencyMHz: 900,
		TimeWindowNs: 50,
		Frame:        scene.SurfaceRelative,
		Shape:        shape,
		View:         true,
	})
	require.NoError(t, err)
	return s
}

func TestSerializeEndToEndExample(t *testing.T) {
	doc := FromScene(composedScene(t, scene.VoidBox))
	text := Serialize(doc)

	assert.Contains(t, text, "#domain: 2.0 1.0 1.5\n")
	assert.Contains(t, text, "#dx_dy_dz: 0.02 0.02 0.02\n")
	assert.Contains(t, text, "#time_window: 50.0e-9\n")

	// One material per distinct layer plus the void fill.
	assert.Equal(t, 7, strings.Count(text, "#material: "))

	// The void box center must reproduce the composed state within
	// floating tolerance: x 1.0, y 0.5, top depth 0.6 below the surface
	// (the 0.1 air offset moves it to emitted z 0.7).
	boxes := doc.Primitives()
	require.NotEmpty(t, boxes)
	voidBox, ok := boxes[len(boxes)-1].(Box)
	require.True(t, ok)
	assert.Equal(t, "void", voidBox.Material)
	assert.InDelta(t, 1.0, (voidBox.Min.X+voidBox.Max.X)/2, 1e-6)
	assert.InDelta(t, 0.5, (voidBox.Min.Y+voidBox.Max.Y)/2, 1e-6)
	assert.InDelta(t, 0.6, voidBox.Min.Z-0.1, 1e-6)
	assert.InDelta(t, 0.3, voidBox.Max.X-voidBox.Min.X, 1e-6)
}

func TestSerializeOrdering(t *testing.T) {
	text := Serialize(FromScene(composedScene(t, scene.VoidBox)))

	// Materials must precede every primitive that references them.
	lastMaterial := strings.LastIndex(text, "#material: ")
	firstBox := strings.Index(text, "#box: ")
	require.GreaterOrEqual(t, lastMaterial, 0)
	require.GreaterOrEqual(t, firstBox, 0)
	assert.Less(t, lastMaterial, firstBox)

	// The document opens with the header block.
	assert.True(t, strings.HasPrefix(text, "#title: "))
}

func TestRoundTrip(t *testing.T) {
	original := FromScene(composedScene(t, scene.VoidBox))

	parsed, err := Parse(Serialize(original))
	require.NoError(t, err)

	originalDomain, ok := original.Domain()
	require.True(t, ok)
	parsedDomain, ok := parsed.Domain()
	require.True(t, ok)
	assert.Equal(t, originalDomain, parsedDomain)

	assert.Equal(t, original.Materials(), parsed.Materials())
	assert.Equal(t, len(original.Primitives()), len(parsed.Primitives()))
	assert.Equal(t, len(original.Directives), len(parsed.Directives))
}

func TestRoundTripCylinderVoid(t *testing.T) {
	original := FromScene(composedScene(t, scene.VoidCylinder))

	parsed, err := Parse(Serialize(original))
	require.NoError(t, err)

	primitives := parsed.Primitives()
	require.NotEmpty(t, primitives)
	cylinder, ok := primitives[len(primitives)-1].(Cylinder)
	require.True(t, ok)
	assert.InDelta(t, 0.15, cylinder.Radius, 1e-9)
	assert.InDelta(t, 1.0, cylinder.Start.X, 1e-9)
	assert.InDelta(t, 0.5, cylinder.Start.Y, 1e-9)
	// Axis runs downward through the cavity.
	assert.Less(t, cylinder.Start.Z, cylinder.End.Z)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	type testCase struct {
		Name string
		Text string
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		_, err := Parse(tc.Text)
		assert.Error(t, err)
	}

	cases := []testCase{
		{"MissingHash", "domain: 1.0 1.0 1.0\n"},
		{"MissingColon", "#domain 1.0 1.0 1.0\n"},
		{"UnknownKeyword", "#warp_field: 1.0\n"},
		{"WrongArity", "#domain: 1.0 1.0\n"},
		{"NonNumeric", "#domain: 1.0 1.0 abc\n"},
		{"MaterialMissingName", "#material: 1.0 0.0 1.0 0.0\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) { check(t, tc) })
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	doc, err := Parse("\n#title: hello world\n\n\n#rx: 0.1 0.2 0.3\n")
	require.NoError(t, err)
	require.Len(t, doc.Directives, 2)
	assert.Equal(t, Title{Text: "hello world"}, doc.Directives[0])
}

func TestWrite(t *testing.T) {
	doc := FromScene(composedScene(t, scene.VoidBox))

	t.Run("WritesFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seq_0000_stage_00.in")
		require.NoError(t, Write(doc, path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, Serialize(doc), string(content))
	})

	t.Run("UnwritablePath", func(t *testing.T) {
		err := Write(doc, filepath.Join(t.TempDir(), "missing", "dir", "file.in"))
		assert.Error(t, err)
	})
}
