// Package config provides the YAML configuration surface of the scenario
// generator and its validation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/material"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/road"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/void"
)

// Frame selects the coordinate frame scenarios are composed in.
const (
	FrameSurface = "surface"
	FrameBottom  = "bottom"
)

// Void shapes.
const (
	ShapeBox      = "box"
	ShapeCylinder = "cylinder"
)

// Config is the full configuration of a generation run.
type Config struct {
	OutputDir string `yaml:"output_dir"`

	Road       RoadConfig                `yaml:"road"`
	GPR        GPRConfig                 `yaml:"gpr"`
	Void       VoidConfig                `yaml:"void"`
	Materials  map[string]MaterialConfig `yaml:"materials"`
	Domain     DomainConfig              `yaml:"domain"`
	Generation GenerationConfig          `yaml:"generation"`
	Geometry   GeometryConfig            `yaml:"geometry"`

	LoggingLevel string `yaml:"logging_level"`
}

// RoadConfig holds the per-layer thicknesses in meters.
type RoadConfig struct {
	AirThickness            float64 `yaml:"air_thickness"`
	SurfaceAsphaltThickness float64 `yaml:"surface_asphalt_thickness"`
	BaseAsphaltThickness    float64 `yaml:"base_asphalt_thickness"`
	UpperSubbaseThickness   float64 `yaml:"upper_subbase_thickness"`
	LowerSubbaseThickness   float64 `yaml:"lower_subbase_thickness"`
	SubgradeThickness       float64 `yaml:"subgrade_thickness"`
}

// Thicknesses maps layer names to thicknesses in the form road.New
// consumes.
func (r RoadConfig) Thicknesses() map[string]float64 {
	return map[string]float64{
		road.LayerAir:            r.AirThickness,
		road.LayerSurfaceAsphalt: r.SurfaceAsphaltThickness,
		road.LayerBaseAsphalt:    r.BaseAsphaltThickness,
		road.LayerUpperSubbase:   r.UpperSubbaseThickness,
		road.LayerLowerSubbase:   r.LowerSubbaseThickness,
		road.LayerSubgrade:       r.SubgradeThickness,
	}
}

// GPRConfig holds antenna and discretization settings.
type GPRConfig struct {
	// FrequencyMHz is the ricker source center frequency in MHz.
	FrequencyMHz float64 `yaml:"frequency"`
	// TimeWindowNs is the simulated time window in nanoseconds.
	TimeWindowNs float64 `yaml:"time_window"`
	// SpatialResolution is the uniform spatial step in meters.
	SpatialResolution float64 `yaml:"spatial_resolution"`

	NumTraces       int     `yaml:"num_traces"`
	ScanStartXRatio float64 `yaml:"scan_start_x_ratio"`
	ScanEndXRatio   float64 `yaml:"scan_end_x_ratio"`
}

// Range is a [min, max] sampling interval, written in YAML as a
// two-element sequence.
type Range struct {
	Min float64
	Max float64
}

// UnmarshalYAML implements yaml.Unmarshaler for the `[min, max]` form.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	var bounds []float64
	if err := value.Decode(&bounds); err != nil {
		return err
	}
	if len(bounds) != 2 {
		return fmt.Errorf("range must have exactly 2 elements, got %d", len(bounds))
	}
	r.Min, r.Max = bounds[0], bounds[1]
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Range) MarshalYAML() (interface{}, error) {
	return []float64{r.Min, r.Max}, nil
}

// VoidConfig holds the sampling intervals for the void's frozen initial
// parameters, plus the primitive shape it is emitted as.
type VoidConfig struct {
	InitialXPositionRange    Range `yaml:"initial_x_position_range"`
	InitialYPositionRange    Range `yaml:"initial_y_position_range"`
	InitialDepthRatioRange   Range `yaml:"initial_depth_ratio_range"`
	InitialSizeXRatioRange   Range `yaml:"initial_size_x_ratio_range"`
	InitialSizeYRatioRange   Range `yaml:"initial_size_y_ratio_range"`
	InitialSizeZRatioRange   Range `yaml:"initial_size_z_ratio_range"`
	GrowthRateRange          Range `yaml:"growth_rate_range"`
	UpwardMovementRatioRange Range `yaml:"upward_movement_ratio_range"`

	Shape string `yaml:"shape"`
}

// Ranges converts the configured intervals into the sampler's form.
func (v VoidConfig) Ranges() void.ParameterRanges {
	toRange := func(r Range) void.Range { return void.Range{Min: r.Min, Max: r.Max} }
	return void.ParameterRanges{
		XPosition:      toRange(v.InitialXPositionRange),
		YPosition:      toRange(v.InitialYPositionRange),
		Depth:          toRange(v.InitialDepthRatioRange),
		SizeX:          toRange(v.InitialSizeXRatioRange),
		SizeY:          toRange(v.InitialSizeYRatioRange),
		SizeZ:          toRange(v.InitialSizeZRatioRange),
		GrowthRate:     toRange(v.GrowthRateRange),
		UpwardMovement: toRange(v.UpwardMovementRatioRange),
	}
}

// MaterialConfig holds the electromagnetic properties of one material.
type MaterialConfig struct {
	RelativePermittivity float64 `yaml:"relative_permittivity"`
	Conductivity         float64 `yaml:"conductivity"`
	RelativePermeability float64 `yaml:"relative_permeability"`
	MagneticLoss         float64 `yaml:"magnetic_loss"`
}

// DomainConfig holds the horizontal simulation volume extents. SizeZ is
// optional: when zero it is derived from the road cross-section depth,
// otherwise it must agree with it.
type DomainConfig struct {
	SizeX float64 `yaml:"size_x"`
	SizeY float64 `yaml:"size_y"`
	SizeZ float64 `yaml:"size_z,omitempty"`
}

// GenerationConfig sets the batch extents.
type GenerationConfig struct {
	NumSequences      int `yaml:"num_sequences"`
	StagesPerSequence int `yaml:"stages_per_sequence"`
}

// GeometryConfig selects the coordinate frame and the hardening policy for
// out-of-bounds voids.
type GeometryConfig struct {
	Frame string `yaml:"frame"`
	// Strict rejects scenarios whose void exceeds the road extents
	// instead of only warning about them.
	Strict bool `yaml:"strict"`
	// View emits a geometry_view directive per scenario.
	View bool `yaml:"view"`
}

// VoidMaterialName names the material filling the void cavity.
const VoidMaterialName = "void"

// MaterialList returns the configured materials in emission order: layer
// materials surface-to-depth, then the void material. The order is stable
// because the solver requires material directives before the primitives
// that reference them.
func (c *Config) MaterialList() []material.Material {
	names := append([]string{}, road.LayerNames...)
	names = append(names, VoidMaterialName)

	list := make([]material.Material, 0, len(names))
	for _, name := range names {
		props := c.Materials[name]
		list = append(list, material.Material{
			Name:                 name,
			RelativePermittivity: props.RelativePermittivity,
			Conductivity:         props.Conductivity,
			RelativePermeability: props.RelativePermeability,
			MagneticLoss:         props.MagneticLoss,
		})
	}
	return list
}

// Default returns the built-in configuration. Values can be overridden by
// any subset of keys in the loaded YAML file.
func Default() *Config {
	return &Config{
		OutputDir: "data/simulations",
		Road: RoadConfig{
			AirThickness:            0.1,
			SurfaceAsphaltThickness: 0.05,
			BaseAsphaltThickness:    0.15,
			UpperSubbaseThickness:   0.3,
			LowerSubbaseThickness:   0.3,
			SubgradeThickness:       0.6,
		},
		GPR: GPRConfig{
			FrequencyMHz:      900,
			TimeWindowNs:      50,
			SpatialResolution: 0.02,
			NumTraces:         50,
			ScanStartXRatio:   0.1,
			ScanEndXRatio:     0.9,
		},
		Void: VoidConfig{
			InitialXPositionRange:    Range{Min: 0.3, Max: 0.7},
			InitialYPositionRange:    Range{Min: 0.4, Max: 0.6},
			InitialDepthRatioRange:   Range{Min: 0.25, Max: 0.6},
			InitialSizeXRatioRange:   Range{Min: 0.05, Max: 0.15},
			InitialSizeYRatioRange:   Range{Min: 0.05, Max: 0.15},
			InitialSizeZRatioRange:   Range{Min: 0.05, Max: 0.15},
			GrowthRateRange:          Range{Min: 1.5, Max: 3.0},
			UpwardMovementRatioRange: Range{Min: 0.1, Max: 0.5},
			Shape:                    ShapeBox,
		},
		Materials: map[string]MaterialConfig{
			road.LayerAir:            {RelativePermittivity: 1, Conductivity: 0, RelativePermeability: 1, MagneticLoss: 0},
			road.LayerSurfaceAsphalt: {RelativePermittivity: 5, Conductivity: 0.01, RelativePermeability: 1, MagneticLoss: 0},
			road.LayerBaseAsphalt:    {RelativePermittivity: 6, Conductivity: 0.01, RelativePermeability: 1, MagneticLoss: 0},
			road.LayerUpperSubbase:   {RelativePermittivity: 8, Conductivity: 0.02, RelativePermeability: 1, MagneticLoss: 0},
			road.LayerLowerSubbase:   {RelativePermittivity: 10, Conductivity: 0.02, RelativePermeability: 1, MagneticLoss: 0},
			road.LayerSubgrade:       {RelativePermittivity: 12, Conductivity: 0.05, RelativePermeability: 1, MagneticLoss: 0},
			VoidMaterialName:         {RelativePermittivity: 1, Conductivity: 0, RelativePermeability: 1, MagneticLoss: 0},
		},
		Domain: DomainConfig{
			SizeX: 2.0,
			SizeY: 1.0,
		},
		Generation: GenerationConfig{
			NumSequences:      10,
			StagesPerSequence: 5,
		},
		Geometry: GeometryConfig{
			Frame: FrameSurface,
			View:  true,
		},
		LoggingLevel: "info",
	}
}

// Load reads a YAML configuration file over the defaults and validates the
// result. Validation failures are configuration errors: they are reported
// before any scenario file is written.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := checkConfig(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
