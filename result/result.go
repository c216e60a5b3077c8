// Package result reads gprMax solver output containers and exports them
// into analysis-ready CSV form.
package result

import (
	"fmt"
	"math"

	"gonum.org/v1/hdf5"

	"github.com/matwu/road-void-evolution-simulator/config"
)

var log = config.NamedLogger("result")

// Components lists the field components a receiver may record, in export
// order.
var Components = []string{"Ex", "Ey", "Ez", "Hx", "Hy", "Hz"}

// DefaultReceiver is the first receiver group written by the solver.
const DefaultReceiver = "rx1"

const speedOfLight = 299792458.0

// Trace holds the recorded samples per field component for one receiver.
type Trace map[string][]float64

// Output is one parsed solver output file.
type Output struct {
	// Receivers maps receiver group names (rx1, rx2, ...) to their
	// traces.
	Receivers map[string]Trace
	// Iterations is the sample count, taken from the dataset extents.
	Iterations int
}

// CFLTimestep derives the solver timestep for a uniform cubic grid with
// spatial step dx. gprMax runs at the 3-D CFL limit, so the value matches
// the dt attribute it stores; deriving it here keeps the export path free
// of attribute reads the HDF5 bindings do not expose.
func CFLTimestep(dx float64) float64 {
	return dx / (speedOfLight * math.Sqrt(3))
}

// Load reads a solver output container. Receiver groups are probed
// sequentially (rx1, rx2, ...) inside the rxs group; each present field
// component dataset is read fully.
func Load(path string) (*Output, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("open result %s: %w", path, err)
	}
	defer f.Close()

	rxs, err := f.OpenGroup("rxs")
	if err != nil {
		return nil, fmt.Errorf("result %s: no rxs group: %w", path, err)
	}
	defer rxs.Close()

	output := &Output{Receivers: map[string]Trace{}}

	for i := 1; ; i++ {
		name := fmt.Sprintf("rx%d", i)
		rx, err := rxs.OpenGroup(name)
		if err != nil {
			break
		}

		trace, err := readTrace(rx)
		closeErr := rx.Close()
		if err != nil {
			return nil, fmt.Errorf("result %s receiver %s: %w", path, name, err)
		}
		if closeErr != nil {
			return nil, closeErr
		}

		output.Receivers[name] = trace
		for _, samples := range trace {
			output.Iterations = len(samples)
			break
		}
	}

	if len(output.Receivers) == 0 {
		return nil, fmt.Errorf("result %s: no receivers found", path)
	}

	log.Debugf("loaded %s: %d receivers, %d iterations", path, len(output.Receivers), output.Iterations)
	return output, nil
}

func readTrace(rx *hdf5.Group) (Trace, error) {
	trace := Trace{}

	for _, component := range Components {
		ds, err := rx.OpenDataset(component)
		if err != nil {
			// Receivers record only the components the scenario
			// asked for.
			continue
		}

		samples, err := readSamples(ds)
		closeErr := ds.Close()
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", component, err)
		}
		if closeErr != nil {
			return nil, closeErr
		}

		trace[component] = samples
	}

	if len(trace) == 0 {
		return nil, fmt.Errorf("no field components present")
	}
	return trace, nil
}

func readSamples(ds *hdf5.Dataset) ([]float64, error) {
	space := ds.Space()
	defer space.Close()

	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, err
	}
	n := uint(1)
	for _, d := range dims {
		n *= d
	}

	samples := make([]float64, n)
	if err := ds.Read(&samples); err != nil {
		return nil, err
	}
	return samples, nil
}
