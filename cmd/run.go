package cmd

import (
	"context"
	"fmt"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/core/source"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipMigrate bool

// runCmd performs one full catalog reconciliation run.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full catalog reconciliation",
	Long: `Extracts the complete product collection from the source API,
transforms it, and reconciles the local store against it: new records
are created, changed records are overwritten, and records that vanished
from the source are evicted.`,
	RunE: runSync,
}

func init() {
	runCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Skip schema auto-migration on startup")
	RootCmd.AddCommand(runCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
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

	if !skipMigrate {
		if err := db.AutoMigrate(
			&models.Product{},
			&models.ProductTag{},
			&models.ProductImage{},
			&models.Review{},
		); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	client := source.NewClient(cfg.Source)
	defer client.Close()

	// Report archival is opt-in.
	var archive storage.Client
	if cfg.Storage.Enabled {
		archive, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	syncCfg := catalog.Config{
		WriteMode:     cfg.Sync.WriteMode,
		ProgressEvery: cfg.Sync.ProgressEvery,
	}

	svc := catalog.NewService(db, client, archive, cfg.Storage.Bucket, l, cfg.Source, syncCfg)
	stats, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("reconciliation run failed: %w", err)
	}

	if stats.Failed > 0 {
		l.Warn("run finished with failed records", zap.Int("failed", stats.Failed))
	}

	return nil
}
