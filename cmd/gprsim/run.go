package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/matwu/road-void-evolution-simulator/runner"
)

var runOpts struct {
	inputDir       string
	outputDir      string
	pattern        string
	workers        int
	gpu            bool
	geometryOnly   bool
	maxJobDuration time.Duration
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the gprMax solver over generated input files",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputDir := runOpts.inputDir
		if inputDir == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			inputDir = cfg.OutputDir
		}

		inputFiles, err := filepath.Glob(filepath.Join(inputDir, runOpts.pattern))
		if err != nil {
			return fmt.Errorf("bad input pattern %q: %w", runOpts.pattern, err)
		}
		if len(inputFiles) == 0 {
			return fmt.Errorf("no input files matching %q in %s", runOpts.pattern, inputDir)
		}
		sort.Strings(inputFiles)

		stats := runner.Run(inputFiles, runner.Options{
			OutputDir:      runOpts.outputDir,
			GPU:            runOpts.gpu,
			GeometryOnly:   runOpts.geometryOnly,
			Workers:        runOpts.workers,
			MaxJobDuration: runOpts.maxJobDuration,
		})
		log.Infof("solver batch finished: %d/%d succeeded", stats.Succeeded, stats.Total)
		if stats.Failed > 0 {
			for _, file := range stats.FailedFiles {
				log.Errorf("failed: %s", file)
			}
			return fmt.Errorf("%d of %d simulations failed", stats.Failed, stats.Total)
		}
		fmt.Printf("%d simulations completed\n", stats.Succeeded)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(
		&runOpts.inputDir, "input-dir", "", "directory with .in files (defaults to the config output_dir)",
	)
	runCmd.Flags().StringVar(
		&runOpts.outputDir, "output-dir", "", "directory for solver outputs (defaults next to inputs)",
	)
	runCmd.Flags().StringVar(
		&runOpts.pattern, "pattern", "*.in", "glob selecting input files inside input-dir",
	)
	runCmd.Flags().IntVar(
		&runOpts.workers, "workers", 0, "parallel solver processes (0 uses the CPU count)",
	)
	runCmd.Flags().BoolVar(&runOpts.gpu, "gpu", false, "run the solver on the GPU")
	runCmd.Flags().BoolVar(
		&runOpts.geometryOnly, "geometry-only", false, "build geometry without solving",
	)
	runCmd.Flags().DurationVar(
		&runOpts.maxJobDuration, "max-job-duration", runner.DefaultMaxJobDuration,
		"kill a single solver run after this long",
	)
}
