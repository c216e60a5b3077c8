package result

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ExportCSV converts one solver output into a CSV file with a time_ns
// column followed by every recorded field component of the named
// receiver. dt is the solver timestep in seconds, normally
// CFLTimestep(dx) of the generating scenario.
func ExportCSV(outputFile string, csvFile string, rxName string, dt float64) error {
	output, err := Load(outputFile)
	if err != nil {
		return err
	}

	trace, ok := output.Receivers[rxName]
	if !ok {
		return fmt.Errorf("receiver %s not found in %s (have %s)",
			rxName, outputFile, strings.Join(receiverNames(output), ", "))
	}

	components := presentComponents(trace)

	file, err := createWithDirs(csvFile)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := append([]string{"time_ns"}, components...)
	if err := writer.Write(header); err != nil {
		return err
	}

	samples := len(trace[components[0]])
	for i := 0; i < samples; i++ {
		row := make([]string, 0, len(header))
		row = append(row, formatSample(float64(i)*dt*1e9))
		for _, component := range components {
			row = append(row, formatSample(trace[component][i]))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	log.Infof("exported %s: %d rows, columns %s", csvFile, samples, strings.Join(header, ","))
	return nil
}

// ExportBatch converts every solver output matching pattern in inputDir
// into a CSV next to outputDir, one per file. It returns the number of
// files converted and fails only if none could be.
func ExportBatch(inputDir string, outputDir string, pattern string, dt float64) (int, error) {
	outputFiles, err := filepath.Glob(filepath.Join(inputDir, pattern))
	if err != nil {
		return 0, err
	}
	if len(outputFiles) == 0 {
		return 0, fmt.Errorf("no files matching %s in %s", pattern, inputDir)
	}
	sort.Strings(outputFiles)

	converted := 0
	for _, outputFile := range outputFiles {
		base := strings.TrimSuffix(filepath.Base(outputFile), filepath.Ext(outputFile))
		csvFile := filepath.Join(outputDir, base+".csv")

		if err := ExportCSV(outputFile, csvFile, DefaultReceiver, dt); err != nil {
			log.Errorf("export %s: %v", outputFile, err)
			continue
		}
		converted++
	}

	if converted == 0 {
		return 0, fmt.Errorf("no files from %s could be exported", inputDir)
	}
	log.Infof("export completed: %d/%d files", converted, len(outputFiles))
	return converted, nil
}

// ExportSequence combines one field component from many solver outputs
// into a single long-form CSV, for time-series analysis across a
// sequence.
func ExportSequence(outputFiles []string, csvFile string, component string, rxName string, dt float64) error {
	if len(outputFiles) == 0 {
		return fmt.Errorf("no output files to export")
	}
	sorted := append([]string{}, outputFiles...)
	sort.Strings(sorted)

	file, err := createWithDirs(csvFile)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"sequence_id", "file", "time_ns", component}); err != nil {
		return err
	}

	exported := 0
	for i, outputFile := range sorted {
		output, err := Load(outputFile)
		if err != nil {
			log.Warningf("skipping %s: %v", outputFile, err)
			continue
		}
		trace, ok := output.Receivers[rxName]
		if !ok {
			log.Warningf("skipping %s: receiver %s not present", outputFile, rxName)
			continue
		}
		signal, ok := trace[component]
		if !ok {
			log.Warningf("skipping %s: component %s not present", outputFile, component)
			continue
		}

		name := filepath.Base(outputFile)
		for j, sample := range signal {
			row := []string{
				strconv.Itoa(i),
				name,
				formatSample(float64(j) * dt * 1e9),
				formatSample(sample),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
		exported++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	if exported == 0 {
		return fmt.Errorf("no data exported to %s", csvFile)
	}

	log.Infof("exported combined data to %s from %d files", csvFile, exported)
	return nil
}

func presentComponents(trace Trace) []string {
	var out []string
	for _, component := range Components {
		if _, ok := trace[component]; ok {
			out = append(out, component)
		}
	}
	return out
}

func receiverNames(output *Output) []string {
	names := make([]string, 0, len(output.Receivers))
	for name := range output.Receivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func createWithDirs(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
