package config

import (
	"fmt"
	"math"

	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/road"
	"github.com/matwu/road-void-evolution-simulator/validate"
)

type checkFunc func(conf *Config) error

func checkConfig(conf *Config) error {
	checkFuncs := []checkFunc{
		checkOutputDir,
		checkRoad,
		checkGPR,
		checkVoid,
		checkMaterials,
		checkDomain,
		checkGeneration,
		checkGeometry,
	}

	for _, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			return err
		}
	}

	return nil
}

func checkOutputDir(conf *Config) error {
	if conf.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}

func checkRoad(conf *Config) error {
	for name, thickness := range conf.Road.Thicknesses() {
		if !validate.Positive(thickness) {
			return fmt.Errorf("road: %s thickness must be > 0, got %v", name, thickness)
		}
	}
	return nil
}

func checkGPR(conf *Config) error {
	gpr := conf.GPR
	if !validate.Positive(gpr.FrequencyMHz) {
		return fmt.Errorf("gpr: frequency must be > 0, got %v", gpr.FrequencyMHz)
	}
	if !validate.Positive(gpr.TimeWindowNs) {
		return fmt.Errorf("gpr: time_window must be > 0, got %v", gpr.TimeWindowNs)
	}
	if !validate.Positive(gpr.SpatialResolution) {
		return fmt.Errorf("gpr: spatial_resolution must be > 0, got %v", gpr.SpatialResolution)
	}
	// A single-trace scan is degenerate but valid; zero or negative trace
	// counts are not.
	if gpr.NumTraces < 1 {
		return fmt.Errorf("gpr: num_traces must be >= 1, got %d", gpr.NumTraces)
	}
	if !validate.InUnitRange(gpr.ScanStartXRatio) || !validate.InUnitRange(gpr.ScanEndXRatio) {
		return fmt.Errorf("gpr: scan ratios must lie in [0, 1], got [%v, %v]",
			gpr.ScanStartXRatio, gpr.ScanEndXRatio)
	}
	if gpr.ScanStartXRatio > gpr.ScanEndXRatio {
		return fmt.Errorf("gpr: scan_start_x_ratio %v > scan_end_x_ratio %v",
			gpr.ScanStartXRatio, gpr.ScanEndXRatio)
	}
	return nil
}

func checkVoid(conf *Config) error {
	if err := conf.Void.Ranges().Check(); err != nil {
		return fmt.Errorf("void: %w", err)
	}
	if conf.Void.Shape != ShapeBox && conf.Void.Shape != ShapeCylinder {
		return fmt.Errorf("void: shape must be %q or %q, got %q", ShapeBox, ShapeCylinder, conf.Void.Shape)
	}
	return nil
}

func checkMaterials(conf *Config) error {
	required := append([]string{}, road.LayerNames...)
	required = append(required, VoidMaterialName)

	for _, name := range required {
		props, ok := conf.Materials[name]
		if !ok {
			return fmt.Errorf("materials: %q is not defined", name)
		}
		if props.RelativePermittivity < 1 {
			return fmt.Errorf("materials: %s relative_permittivity must be >= 1, got %v",
				name, props.RelativePermittivity)
		}
		if props.Conductivity < 0 {
			return fmt.Errorf("materials: %s conductivity must be >= 0, got %v", name, props.Conductivity)
		}
	}
	return nil
}

func checkDomain(conf *Config) error {
	if !validate.Positive(conf.Domain.SizeX) || !validate.Positive(conf.Domain.SizeY) {
		return fmt.Errorf("domain: size_x and size_y must be > 0, got %v x %v",
			conf.Domain.SizeX, conf.Domain.SizeY)
	}

	// size_z is derived from the cross-section; an explicit value must
	// agree with it.
	if conf.Domain.SizeZ != 0 {
		depth := 0.0
		for _, t := range conf.Road.Thicknesses() {
			depth += t
		}
		if math.Abs(conf.Domain.SizeZ-depth) > 1e-6 {
			return fmt.Errorf("domain: size_z %v does not match road cross-section depth %v",
				conf.Domain.SizeZ, depth)
		}
	}
	return nil
}

func checkGeneration(conf *Config) error {
	if conf.Generation.NumSequences < 1 {
		return fmt.Errorf("generation: num_sequences must be >= 1, got %d", conf.Generation.NumSequences)
	}
	if conf.Generation.StagesPerSequence < 1 {
		return fmt.Errorf("generation: stages_per_sequence must be >= 1, got %d",
			conf.Generation.StagesPerSequence)
	}
	return nil
}

func checkGeometry(conf *Config) error {
	if conf.Geometry.Frame != FrameSurface && conf.Geometry.Frame != FrameBottom {
		return fmt.Errorf("geometry: frame must be %q or %q, got %q",
			FrameSurface, FrameBottom, conf.Geometry.Frame)
	}
	return nil
}
