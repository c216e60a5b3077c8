// Package runner executes the external gprMax solver over batches of
// generated scenario files. Scenario files have no data dependency on each
// other once generated, so the batch runs on a bounded worker pool.
package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/matwu/road-void-evolution-simulator/config"
	"github.com/matwu/road-void-evolution-simulator/runner/process"
)

var log = config.NamedLogger("runner")

// DefaultMaxJobDuration bounds a single solver run.
const DefaultMaxJobDuration = 1000 * time.Second

// Options configure a batch run.
type Options struct {
	// OutputDir receives solver outputs; empty keeps them next to the
	// inputs.
	OutputDir string
	// GPU enables the solver's CUDA path.
	GPU bool
	// GeometryOnly builds geometry files without running the
	// electromagnetic solve.
	GeometryOnly bool
	// Workers bounds the pool; 0 uses the CPU count.
	Workers int
	// MaxJobDuration bounds one solver run; 0 uses
	// DefaultMaxJobDuration.
	MaxJobDuration time.Duration
}

// Stats summarize a finished batch.
type Stats struct {
	Total       int
	Succeeded   int
	Failed      int
	FailedFiles []string
}

// Run executes the solver for every input file and reports per-file
// success. Failures do not stop the batch: remaining files still run, and
// the failed set is reported for reruns.
func Run(inputFiles []string, opts Options) Stats {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxJobDuration := opts.MaxJobDuration
	if maxJobDuration <= 0 {
		maxJobDuration = DefaultMaxJobDuration
	}

	log.Infof("running %d simulations with %d workers", len(inputFiles), workers)

	jobs := make(chan string)
	var mu sync.Mutex
	var failed []string

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for inputFile := range jobs {
				if err := runSingle(inputFile, opts, maxJobDuration); err != nil {
					log.Errorf("%s: %v", inputFile, err)
					mu.Lock()
					failed = append(failed, inputFile)
					mu.Unlock()
				}
			}
		}()
	}

	for _, inputFile := range inputFiles {
		jobs <- inputFile
	}
	close(jobs)
	wg.Wait()

	stats := Stats{
		Total:       len(inputFiles),
		Succeeded:   len(inputFiles) - len(failed),
		Failed:      len(failed),
		FailedFiles: failed,
	}
	log.Infof("batch finished: %d/%d succeeded", stats.Succeeded, stats.Total)
	return stats
}

func runSingle(inputFile string, opts Options, maxJobDuration time.Duration) error {
	if _, err := os.Stat(inputFile); err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	result := process.Run(gprMaxCommand(inputFile, opts), maxJobDuration)
	if result.Err != nil {
		if result.StdErr != "" {
			return fmt.Errorf("%w: %s", result.Err, strings.TrimSpace(result.StdErr))
		}
		return result.Err
	}

	if opts.GeometryOnly {
		return nil
	}

	// The solver reports success through its exit code, but a missing
	// output file still means the run produced nothing usable.
	outputFile := OutputFileFor(inputFile, opts.OutputDir)
	if _, err := os.Stat(outputFile); err != nil {
		return fmt.Errorf("solver output %s not created", outputFile)
	}
	return nil
}

// OutputFileFor names the solver output for an input file: the .in
// extension replaced by .out, placed into outputDir when set.
func OutputFileFor(inputFile string, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile)) + ".out"
	if outputDir != "" {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(filepath.Dir(inputFile), base)
}
