package cmd

import (
	"context"
	"fmt"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd audits store consistency without mutating anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Audit the local store for consistency",
	Long: `Counts rows per entity and reports orphaned child rows and
duplicated product keys. Read-only; useful after a run or before
enabling upsert mode on an existing store.`,
	RunE: runValidate,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := catalog.NewService(db, nil, nil, "", l, cfg.Source, catalog.Config{
		WriteMode:     cfg.Sync.WriteMode,
		ProgressEvery: cfg.Sync.ProgressEvery,
	})
	report, err := svc.Validate(ctx)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	l.Info("store validation report",
		zap.Int64("products", report.ProductCount),
		zap.Int64("tags", report.TagCount),
		zap.Int64("images", report.ImageCount),
		zap.Int64("reviews", report.ReviewCount),
		zap.Int64("orphaned_tags", report.OrphanedTags),
		zap.Int64("orphaned_images", report.OrphanedImages),
		zap.Int64("orphaned_reviews", report.OrphanedReviews),
		zap.Int64("duplicate_products", report.DuplicateProducts))

	if report.OrphanedTags+report.OrphanedImages+report.OrphanedReviews > 0 || report.DuplicateProducts > 0 {
		return fmt.Errorf("store is inconsistent")
	}

	l.Info("store is consistent")
	return nil
}
