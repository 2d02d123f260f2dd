package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"catalog-sync/core/config"
	"catalog-sync/core/logger"
	"catalog-sync/core/source"
	"catalog-sync/feature/updater"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var updateFile string

// updateCmd pushes a batch of product updates to the source API.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Push bulk product updates to the source",
	Long: `Reads update requests from a JSON file and executes them against
the source API through a bounded, rate-limited worker pool.

The file contains an array of requests:

  [
    {"product_id": 1, "title": "New Title", "price": 19.99},
    {"product_id": 2, "title": "Other", "price": 5.0, "description": "..."}
  ]`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "Path to JSON file with update requests (required)")
	updateCmd.MarkFlagRequired("file")
	RootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	raw, err := os.ReadFile(updateFile)
	if err != nil {
		return fmt.Errorf("failed to read update file: %w", err)
	}

	var requests []updater.UpdateRequest
	if err := json.Unmarshal(raw, &requests); err != nil {
		return fmt.Errorf("failed to parse update file: %w", err)
	}
	if len(requests) == 0 {
		l.Info("no update requests in file, nothing to do")
		return nil
	}

	client := source.NewClient(cfg.Source)
	defer client.Close()

	exec := updater.NewExecutor(client, l, updater.Config{
		MaxConcurrent:    cfg.Updater.MaxConcurrent,
		RateLimitDelayMs: cfg.Updater.RateLimitDelayMs,
	})
	results := exec.Execute(ctx, requests)

	stats := updater.ComputeStatistics(results)
	l.Info("bulk update finished",
		zap.Int("total", stats.Total),
		zap.Int("successful", stats.Successful),
		zap.Int("failed", stats.Failed),
		zap.Float64("success_rate", stats.SuccessRate),
		zap.Float64("duration_seconds", stats.DurationSeconds),
		zap.Float64("requests_per_second", stats.RequestsPerSecond))

	for _, r := range results {
		if !r.Success {
			l.Warn("update failed", zap.String("error", r.Error))
		}
	}

	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d updates failed", stats.Failed, stats.Total)
	}
	return nil
}
