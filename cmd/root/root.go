// Package root contains the root command for the application
package root

import (
	"github.com/Shaikhmohddanish/challan-analytics/internal/challancsv"
	"github.com/Shaikhmohddanish/challan-analytics/internal/classifier"
	"github.com/Shaikhmohddanish/challan-analytics/internal/config"
	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"
	"github.com/Shaikhmohddanish/challan-analytics/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "challan-analytics",
		Short: "Reporting views over a delivery challan sales dataset.",
		Long: `challan-analytics computes dealer summaries, categorized sales breakdowns,
quantity timelines and heatmap matrices from a delivery challan CSV export.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to challan-analytics!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
			config.LoadEnv(Log)

			// Push the configured logger down to the pipeline packages
			challancsv.SetLogger(Log)
			classifier.SetLogger(Log)
			dataset.SetLogger(Log)
			store.SetLogger(Log)

			if DataFile == "" {
				DataFile = Cfg.Data.File
			}
		},
	}

	// Common flags accessible to all commands
	DataFile string
	Search   string
	Category string
	Tier     string
	Customer string
	Output   string
	Format   string
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataFile, "data", "i", "", "Challan CSV file (defaults to data.file from config)")
}
