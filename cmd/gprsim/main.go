package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/matwu/road-void-evolution-simulator/config"
)

var (
	configPath   string
	loggingLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gprsim",
	Short: "generate and run evolving subsurface void GPR scenarios",
	Long: "gprsim samples buried void parameters, evolves them over time stages,\n" +
		"writes gprMax input files, runs the solver and exports traces to CSV.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := loggingLevel
		if level == "" {
			level = "info"
		}
		config.InitLogger(level)
	},
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	// The flag wins over the configured level.
	if loggingLevel == "" {
		config.InitLogger(cfg.LoggingLevel)
	}
	return cfg, nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "", "path to the simulation config file",
	)
	rootCmd.PersistentFlags().StringVar(
		&loggingLevel, "logging-level", "", "logging level [debug|info|warning|error] (overrides config)",
	)
	rootCmd.AddCommand(generateCmd, runCmd, exportCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
