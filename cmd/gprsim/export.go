package main

import (
	"fmt"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/matwu/road-void-evolution-simulator/result"
)

var exportOpts struct {
	output    string
	mode      string
	component string
	rxName    string
	pattern   string
	dx        float64
}

var exportCmd = &cobra.Command{
	Use:   "export <input>",
	Short: "export solver output files to CSV",
	Long: "export converts gprMax .out files to CSV. In single mode <input> is one\n" +
		".out file; in batch mode it is a directory of .out files converted one by\n" +
		"one; in sequence mode it is a directory merged into a single long-form CSV.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		dt := result.CFLTimestep(exportOpts.dx)

		switch exportOpts.mode {
		case "single":
			csvFile := exportOpts.output
			if csvFile == "" {
				csvFile = input[:len(input)-len(filepath.Ext(input))] + ".csv"
			}
			if err := result.ExportCSV(input, csvFile, exportOpts.rxName, dt); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", csvFile)
			return nil

		case "batch":
			outputDir := exportOpts.output
			if outputDir == "" {
				outputDir = input
			}
			converted, err := result.ExportBatch(input, outputDir, exportOpts.pattern, dt)
			if err != nil {
				return err
			}
			log.Infof("converted %d output files", converted)
			fmt.Printf("%d files converted to %s\n", converted, outputDir)
			return nil

		case "sequence":
			csvFile := exportOpts.output
			if csvFile == "" {
				csvFile = filepath.Join(input, "sequence.csv")
			}
			outputFiles, err := filepath.Glob(filepath.Join(input, exportOpts.pattern))
			if err != nil {
				return fmt.Errorf("bad output pattern %q: %w", exportOpts.pattern, err)
			}
			if len(outputFiles) == 0 {
				return fmt.Errorf("no output files matching %q in %s", exportOpts.pattern, input)
			}
			sort.Strings(outputFiles)
			err = result.ExportSequence(
				outputFiles, csvFile, exportOpts.component, exportOpts.rxName, dt,
			)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", csvFile)
			return nil

		default:
			return fmt.Errorf("unknown export mode %q", exportOpts.mode)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(
		&exportOpts.output, "output", "o", "", "CSV file (single, sequence) or directory (batch)",
	)
	exportCmd.Flags().StringVar(
		&exportOpts.mode, "mode", "single", "export mode [single|batch|sequence]",
	)
	exportCmd.Flags().StringVar(
		&exportOpts.component, "component", "Ez", "field component for sequence export",
	)
	exportCmd.Flags().StringVar(
		&exportOpts.rxName, "rx", result.DefaultReceiver, "receiver group to export",
	)
	exportCmd.Flags().StringVar(
		&exportOpts.pattern, "pattern", "*.out", "glob selecting solver outputs",
	)
	exportCmd.Flags().Float64Var(
		&exportOpts.dx, "dx", 0.02, "spatial resolution in m, used to derive the sample timestep",
	)
}
