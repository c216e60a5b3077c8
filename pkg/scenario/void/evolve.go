package void

import "math"

// Growth law exponents. Lateral growth follows the accelerating progress
// curve directly; vertical growth is damped because a road void expands
// sideways faster than it deepens.
const (
	progressExponent       = 1.5
	verticalGrowthExponent = 0.8
)

// Progress maps a stage index to normalized progress in [0, 1]. A
// single-stage sequence is valid and pins progress at 0.
func Progress(stage int, totalStages int) float64 {
	if totalStages <= 1 {
		return 0
	}
	return float64(stage) / float64(totalStages-1)
}

// GrowthRate is the size multiplier at the given progress: 1.0 at progress
// 0, exactly maxGrowthRate at progress 1, superlinear in between.
func GrowthRate(progress float64, maxGrowthRate float64) float64 {
	return 1 + math.Pow(progress, progressExponent)*(maxGrowthRate-1)
}

// Evolve derives the absolute void geometry at one stage. It is a pure
// function of its inputs: no hidden state survives between calls, so any
// stage can be computed without running the stages before it.
//
// The void center migrates monotonically toward the surface as progress
// increases, and sizes scale with the growth rate, with the z axis damped
// by verticalGrowthExponent.
func Evolve(initial InitialParameters, stage int, totalStages int, ref Reference) State {
	progress := Progress(stage, totalStages)
	growthRate := GrowthRate(progress, initial.MaxGrowthRate)

	initialDepth := initial.DepthRatio * ref.RoadDepth
	upwardMovement := progress * initial.MaxUpwardMovementRatio * initialDepth

	return State{
		CenterX: initial.XPositionRatio * ref.DomainX,
		CenterY: initial.YPositionRatio * ref.DomainY,
		CenterZ: initialDepth - upwardMovement,

		SizeX: initial.SizeXRatio * ref.DomainX * growthRate,
		SizeY: initial.SizeYRatio * ref.DomainY * growthRate,
		SizeZ: initial.SizeZRatio * ref.RoadDepth * math.Pow(growthRate, verticalGrowthExponent),

		Stage:      stage,
		Progress:   progress,
		GrowthRate: growthRate,
	}
}
