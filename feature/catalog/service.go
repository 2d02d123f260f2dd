package catalog

import (
	"context"
	"time"

	"catalog-sync/core/logger"
	"catalog-sync/core/source"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs catalog synchronization: extract, transform, reconcile,
// evict stale records, and optionally archive the run report.
type Service struct {
	db      *gorm.DB
	client  source.Client
	archive storage.Client
	bucket  string
	logger  *zap.Logger
	srcCfg  source.Config
	cfg     Config
}

// NewService creates a new catalog service. archive may be nil, in which
// case run reports are not archived.
func NewService(db *gorm.DB, client source.Client, archive storage.Client, bucket string, log *zap.Logger, srcCfg source.Config, cfg Config) *Service {
	return &Service{
		db:      db,
		client:  client,
		archive: archive,
		bucket:  bucket,
		logger:  log,
		srcCfg:  srcCfg,
		cfg:     cfg,
	}
}

// Run performs one full reconciliation run and returns its stats. The run
// epoch and run ID are captured once up front; every record touched in
// this run carries the same updated_at value. Fatal faults (unreachable
// source, whole-run storage errors) propagate and the partial stats are
// discarded; everything else is absorbed into the counters.
func (s *Service) Run(ctx context.Context) (*reconcile.Stats, error) {
	start := time.Now()
	epoch := start.UTC()
	runID := uuid.NewString()
	l := logger.WithRunID(s.logger, runID)

	l.Info("starting reconciliation run", zap.String("write_mode", s.cfg.WriteMode))

	rec := reconcile.New(s.db, l, epoch, s.writeMode())
	rec.SetProgressEvery(s.cfg.ProgressEvery)

	snapshot, err := rec.ExistingIDs(ctx)
	if err != nil {
		return nil, err
	}
	l.Info("store snapshot taken", zap.Int("products", len(snapshot)))

	extractor := NewExtractor(s.client, s.srcCfg, l)
	raws, err := extractor.ExtractAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &reconcile.Stats{
		TotalSource: len(raws),
		StoreBefore: len(snapshot),
	}

	if len(raws) == 0 {
		// An empty source is more likely an upstream incident than a real
		// catalog wipe; leave the store untouched rather than evicting
		// everything.
		l.Warn("no records found in source response, store left untouched")
		stats.StoreAfter = len(snapshot)
		stats.ElapsedSeconds = time.Since(start).Seconds()
		return stats, nil
	}

	sourceIDs := make(map[int]struct{}, len(raws))
	transformed := make([]models.Transformed, 0, len(raws))
	for _, raw := range raws {
		record := Transform(raw, l)
		sourceIDs[record.Product.ID] = struct{}{}
		transformed = append(transformed, record)
	}

	loaded := rec.Reconcile(ctx, snapshot, transformed)
	stats.Created = loaded.Created
	stats.Updated = loaded.Updated
	stats.Failed = loaded.Failed

	if s.writeMode() == reconcile.ModeUpsert {
		removed, err := rec.RemoveStale(ctx, snapshot, sourceIDs)
		if err != nil {
			return nil, err
		}
		stats.StaleRemoved = removed
	}

	after, err := rec.StoreSize(ctx)
	if err != nil {
		return nil, err
	}
	stats.StoreAfter = after
	stats.ElapsedSeconds = time.Since(start).Seconds()

	l.Info("reconciliation run completed",
		zap.Int("total_source_records", stats.TotalSource),
		zap.Int("created", stats.Created),
		zap.Int("updated", stats.Updated),
		zap.Int("failed", stats.Failed),
		zap.Int("stale_removed", stats.StaleRemoved),
		zap.Int("store_before", stats.StoreBefore),
		zap.Int("store_after", stats.StoreAfter),
		zap.Float64("elapsed_seconds", stats.ElapsedSeconds))

	if s.archive != nil {
		if err := s.archiveReport(ctx, runID, stats); err != nil {
			// Archival is best effort; the run itself already succeeded.
			l.Warn("report archival failed", zap.Error(err))
		} else {
			l.Info("run report archived", zap.String("bucket", s.bucket))
		}
	}

	return stats, nil
}

func (s *Service) writeMode() reconcile.WriteMode {
	if s.cfg.WriteMode == string(reconcile.ModeInsertOnly) {
		return reconcile.ModeInsertOnly
	}
	return reconcile.ModeUpsert
}
