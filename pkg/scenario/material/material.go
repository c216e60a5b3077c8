// Package material defines the electromagnetic material model used in
// generated scenarios.
package material

// Material is one solver material: the four electromagnetic properties of a
// gprMax #material directive plus its referenced name.
type Material struct {
	Name string `yaml:"name"`

	// RelativePermittivity of the medium (dimensionless, >= 1 for
	// physical media).
	RelativePermittivity float64 `yaml:"relative_permittivity"`
	// Conductivity in S/m.
	Conductivity float64 `yaml:"conductivity"`
	// RelativePermeability of the medium (dimensionless).
	RelativePermeability float64 `yaml:"relative_permeability"`
	// MagneticLoss in Ohms/m.
	MagneticLoss float64 `yaml:"magnetic_loss"`
}
