// Package format holds numeric formatting helpers shared by the scenario
// serializers.
package format

import (
	"strconv"
	"strings"
)

// Float renders v in the shortest decimal form that round-trips, keeping an
// explicit decimal point for whole numbers. gprMax tokenizes directive
// arguments as floats, and whole-number sizes such as "2" and "2.0" are
// equivalent to it, but the trailing ".0" keeps generated files diffable
// against scenarios produced by earlier tooling.
func Float(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Floats renders a fixed-order argument list separated by single spaces.
func Floats(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Float(v)
	}
	return strings.Join(parts, " ")
}
