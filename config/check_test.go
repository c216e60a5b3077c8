package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfigDefaultIsValid(t *testing.T) {
	assert.NoError(t, checkConfig(Default()))
}

func TestCheckConfigRejections(t *testing.T) {
	type testCase struct {
		Name   string
		Mutate func(*Config)
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		cfg := Default()
		tc.Mutate(cfg)
		assert.Error(t, checkConfig(cfg), tc.Name)
	}

	cases := []testCase{
		{"EmptyOutputDir", func(c *Config) { c.OutputDir = "" }},
		{"NonPositiveThickness", func(c *Config) { c.Road.SubgradeThickness = 0 }},
		{"NegativeThickness", func(c *Config) { c.Road.AirThickness = -0.1 }},
		{"ZeroFrequency", func(c *Config) { c.GPR.FrequencyMHz = 0 }},
		{"ZeroTimeWindow", func(c *Config) { c.GPR.TimeWindowNs = 0 }},
		{"ZeroSpatialResolution", func(c *Config) { c.GPR.SpatialResolution = 0 }},
		{"ZeroTraces", func(c *Config) { c.GPR.NumTraces = 0 }},
		{"ScanRatioOutOfRange", func(c *Config) { c.GPR.ScanEndXRatio = 1.5 }},
		{"ScanRatiosInverted", func(c *Config) {
			c.GPR.ScanStartXRatio = 0.9
			c.GPR.ScanEndXRatio = 0.1
		}},
		{"InvertedVoidRange", func(c *Config) {
			c.Void.InitialDepthRatioRange = Range{Min: 0.8, Max: 0.2}
		}},
		{"GrowthRateBelowOne", func(c *Config) {
			c.Void.GrowthRateRange = Range{Min: 0.5, Max: 2}
		}},
		{"UnknownShape", func(c *Config) { c.Void.Shape = "sphere" }},
		{"MissingMaterial", func(c *Config) { delete(c.Materials, VoidMaterialName) }},
		{"SubUnityPermittivity", func(c *Config) {
			m := c.Materials["subgrade"]
			m.RelativePermittivity = 0.5
			c.Materials["subgrade"] = m
		}},
		{"ZeroDomain", func(c *Config) { c.Domain.SizeX = 0 }},
		{"InconsistentSizeZ", func(c *Config) { c.Domain.SizeZ = 9.9 }},
		{"ZeroSequences", func(c *Config) { c.Generation.NumSequences = 0 }},
		{"ZeroStages", func(c *Config) { c.Generation.StagesPerSequence = 0 }},
		{"UnknownFrame", func(c *Config) { c.Geometry.Frame = "side" }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) { check(t, tc) })
	}
}

func TestCheckConfigAcceptsMatchingSizeZ(t *testing.T) {
	cfg := Default()
	cfg.Domain.SizeZ = 1.5
	assert.NoError(t, checkConfig(cfg))
}

func TestCheckConfigSingleTraceScanIsValid(t *testing.T) {
	cfg := Default()
	cfg.GPR.NumTraces = 1
	assert.NoError(t, checkConfig(cfg))
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_dir: out
gpr:
  frequency: 400
  num_traces: 21
void:
  initial_depth_ratio_range: [0.3, 0.5]
generation:
  num_sequences: 2
  stages_per_sequence: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 400.0, cfg.GPR.FrequencyMHz)
	assert.Equal(t, 21, cfg.GPR.NumTraces)
	assert.Equal(t, Range{Min: 0.3, Max: 0.5}, cfg.Void.InitialDepthRatioRange)
	assert.Equal(t, 2, cfg.Generation.NumSequences)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.02, cfg.GPR.SpatialResolution)
	assert.Equal(t, FrameSurface, cfg.Geometry.Frame)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
void:
  growth_rate_range: [3.0, 1.5]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMaterialListOrderIsStable(t *testing.T) {
	cfg := Default()
	list := cfg.MaterialList()

	names := make([]string, 0, len(list))
	for _, m := range list {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{
		"air", "surface_asphalt", "base_asphalt",
		"upper_subbase", "lower_subbase", "subgrade", "void",
	}, names)
}
