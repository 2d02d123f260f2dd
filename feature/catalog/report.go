package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"catalog-sync/feature/catalog/reconcile"

	"github.com/minio/minio-go/v7"
)

// archiveReport serializes the run stats and writes them to the report
// bucket keyed by run ID, creating the bucket on first use.
func (s *Service) archiveReport(ctx context.Context, runID string, stats *reconcile.Stats) error {
	payload, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}

	exists, err := s.archive.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check report bucket: %w", err)
	}
	if !exists {
		if err := s.archive.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create report bucket: %w", err)
		}
	}

	objectName := fmt.Sprintf("reports/run-%s.json", runID)
	_, err = s.archive.PutObject(
		ctx,
		s.bucket,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to upload run report %s: %w", objectName, err)
	}

	return nil
}
