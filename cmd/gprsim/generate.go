package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate gprMax input files for evolving void sequences",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		generator, err := generate.New(cfg)
		if err != nil {
			return err
		}
		manifest, err := generator.Generate()
		if err != nil {
			return err
		}
		log.Infof(
			"generated %d input files in %s",
			len(manifest), cfg.OutputDir,
		)
		fmt.Printf(
			"%d sequences x %d stages written to %s\n",
			cfg.Generation.NumSequences, cfg.Generation.StagesPerSequence, cfg.OutputDir,
		)
		return nil
	},
}
