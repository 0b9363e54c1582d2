package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crewplan/crewplan/app"
	"github.com/crewplan/crewplan/config"
	"github.com/crewplan/crewplan/infra/logger"
)

var (
	cfgPath     string
	datasetPath string
	outputPath  string
)

var rootCmd = &cobra.Command{
	Use:   "crewplan",
	Short: "Skill-based project staffing and capacity planner",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (json or yaml)")
	rootCmd.PersistentFlags().StringVarP(&datasetPath, "dataset", "d", "dataset.json", "roster dataset file")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "report output file (default stdout)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	go func() {
		if err := svc.ServeMetrics(ctx); err != nil {
			logger.New("main").Errorf("metrics server: %v", err)
		}
	}()

	out, err := svc.Plan(ctx, datasetPath)
	if err != nil {
		return err
	}
	return svc.Write(out, outputPath)
}
