package result

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Normalize returns the z-score normalized copy of data. A constant signal
// (zero deviation) is only mean-centered; the input is never mutated.
func Normalize(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	if len(out) == 0 {
		return out
	}

	mean, std := stat.MeanStdDev(out, nil)
	floats.AddConst(-mean, out)
	if std > 0 {
		floats.Scale(1/std, out)
	}
	return out
}
