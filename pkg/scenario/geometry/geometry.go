// Package geometry provides the primitive spatial types shared by the
// scenario model.
package geometry

// Point is a location in the simulation volume, in meters.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// WithZ returns a copy of the point with its z coordinate replaced.
func (p Point) WithZ(z float64) Point {
	p.Z = z
	return p
}

// Vec3D is a displacement in meters.
type Vec3D struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Box is an axis-aligned box spanning Min..Max on every axis.
type Box struct {
	Min Point `yaml:"min"`
	Max Point `yaml:"max"`
}

// CenterAndSizeToMinAndMax converts a center/extent pair on one axis into
// the min/max pair the solver directives use.
func CenterAndSizeToMinAndMax(center float64, size float64) (min float64, max float64) {
	return center - size/2, center + size/2
}

// Center returns the box midpoint.
func (b Box) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the box extents along each axis.
func (b Box) Size() Vec3D {
	return Vec3D{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y, Z: b.Max.Z - b.Min.Z}
}

// Translate returns the box moved by dz along the z axis.
func (b Box) Translate(dz float64) Box {
	b.Min.Z += dz
	b.Max.Z += dz
	return b
}

// Contains reports whether other lies fully inside b.
func (b Box) Contains(other Box) bool {
	return other.Min.X >= b.Min.X && other.Max.X <= b.Max.X &&
		other.Min.Y >= b.Min.Y && other.Max.Y <= b.Max.Y &&
		other.Min.Z >= b.Min.Z && other.Max.Z <= b.Max.Z
}
