// Package validate holds small numeric predicates used by configuration
// checks.
package validate

const floatingPointTolerance = 0.000001

func InRange(start float64, end float64, value float64) bool {
	return value >= start && value <= end
}

// InUnitRange checks a ratio value against [0, 1].
func InUnitRange(value float64) bool {
	return value >= -floatingPointTolerance && value <= 1+floatingPointTolerance
}

func Positive(value float64) bool {
	return value > 0
}
