// Package void implements the void-evolution geometry model: stochastic
// initialization of a subsurface void and the deterministic growth and
// upward-migration law that derives its geometry at every stage of a
// sequence.
package void

// InitialParameters holds a void's stochastic initialization, frozen for
// the lifetime of one sequence. All position and size values are ratios;
// Evolve converts them to absolute meters against the reference frame.
type InitialParameters struct {
	XPositionRatio float64 `yaml:"x_position_ratio"`
	YPositionRatio float64 `yaml:"y_position_ratio"`
	// DepthRatio is measured against the road depth below the surface,
	// excluding the air gap.
	DepthRatio float64 `yaml:"depth_ratio"`

	SizeXRatio float64 `yaml:"size_x_ratio"`
	SizeYRatio float64 `yaml:"size_y_ratio"`
	SizeZRatio float64 `yaml:"size_z_ratio"`

	// MaxGrowthRate is the size multiplier reached exactly at the final
	// stage of the sequence. Always >= 1.
	MaxGrowthRate float64 `yaml:"max_growth_rate"`
	// MaxUpwardMovementRatio is the fraction of the initial depth the
	// void has risen by at the final stage.
	MaxUpwardMovementRatio float64 `yaml:"max_upward_movement_ratio"`
}

// Reference carries the absolute lengths ratios are resolved against.
type Reference struct {
	// DomainX and DomainY are the horizontal domain extents in meters.
	DomainX float64
	DomainY float64
	// RoadDepth is the paved depth below the surface in meters, air gap
	// excluded.
	RoadDepth float64
}

// State is the absolute void geometry at one stage. Center coordinates and
// sizes are in meters; CenterZ is the depth of the void top below the road
// surface. A State is never mutated after Evolve returns it.
type State struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	CenterZ float64 `yaml:"center_z"`

	SizeX float64 `yaml:"size_x"`
	SizeY float64 `yaml:"size_y"`
	SizeZ float64 `yaml:"size_z"`

	Stage      int     `yaml:"stage"`
	Progress   float64 `yaml:"progress"`
	GrowthRate float64 `yaml:"growth_rate"`
}
