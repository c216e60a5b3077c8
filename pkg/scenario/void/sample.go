package void

import (
	"fmt"
	"math/rand"
)

// Range is a closed sampling interval.
type Range struct {
	Min float64
	Max float64
}

// Check reports an inverted interval. Configuration checking calls it for
// every range before any geometry is produced.
func (r Range) Check(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("void range %s: min %v > max %v", name, r.Min, r.Max)
	}
	return nil
}

// Sample draws uniformly from [Min, Max].
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// ParameterRanges bundles the sampling intervals for every initial
// parameter.
type ParameterRanges struct {
	XPosition Range
	YPosition Range
	Depth     Range
	SizeX     Range
	SizeY     Range
	SizeZ     Range
	// GrowthRate samples the final-stage size multiplier, >= 1.
	GrowthRate Range
	// UpwardMovement samples the final-stage rise as a ratio of initial
	// depth.
	UpwardMovement Range
}

// Check validates every range. It runs during configuration checking so a
// bad interval fails before any file is written.
func (p ParameterRanges) Check() error {
	for _, c := range []struct {
		name string
		r    Range
	}{
		{"initial_x_position", p.XPosition},
		{"initial_y_position", p.YPosition},
		{"initial_depth_ratio", p.Depth},
		{"initial_size_x_ratio", p.SizeX},
		{"initial_size_y_ratio", p.SizeY},
		{"initial_size_z_ratio", p.SizeZ},
		{"growth_rate", p.GrowthRate},
		{"upward_movement_ratio", p.UpwardMovement},
	} {
		if err := c.r.Check(c.name); err != nil {
			return err
		}
	}
	if p.GrowthRate.Min < 1 {
		return fmt.Errorf("void range growth_rate: min %v < 1", p.GrowthRate.Min)
	}
	return nil
}

// SampleInitial draws a sequence's frozen initial parameters from rng. The
// caller owns rng and seeds it with the sequence id, so sampling the same
// seed twice yields bit-identical parameters and sequences never share
// random state. The draw order is fixed; changing it changes every
// generated dataset.
func SampleInitial(ranges ParameterRanges, rng *rand.Rand) InitialParameters {
	return InitialParameters{
		XPositionRatio:         ranges.XPosition.Sample(rng),
		YPositionRatio:         ranges.YPosition.Sample(rng),
		DepthRatio:             ranges.Depth.Sample(rng),
		SizeXRatio:             ranges.SizeX.Sample(rng),
		SizeYRatio:             ranges.SizeY.Sample(rng),
		SizeZRatio:             ranges.SizeZ.Sample(rng),
		MaxGrowthRate:          ranges.GrowthRate.Sample(rng),
		MaxUpwardMovementRatio: ranges.UpwardMovement.Sample(rng),
	}
}
