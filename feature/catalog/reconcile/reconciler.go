package reconcile

import (
	"context"
	"fmt"
	"sort"
	"time"

	"catalog-sync/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Reconciler applies a transformed source set to the store so that the
// store's product set exactly mirrors the source set afterwards.
//
// Reconciliation is strictly sequential; running two reconcilers against
// the same store concurrently requires external coordination.
type Reconciler struct {
	db            *gorm.DB
	logger        *zap.Logger
	epoch         time.Time
	mode          WriteMode
	progressEvery int
}

// New creates a reconciler. epoch is the run epoch: the single wall-clock
// timestamp stamped onto every record touched during this run.
func New(db *gorm.DB, logger *zap.Logger, epoch time.Time, mode WriteMode) *Reconciler {
	return &Reconciler{
		db:            db,
		logger:        logger,
		epoch:         epoch,
		mode:          mode,
		progressEvery: 50,
	}
}

// SetProgressEvery overrides how often the record loop logs progress.
// Zero disables progress logging.
func (r *Reconciler) SetProgressEvery(n int) {
	r.progressEvery = n
}

// ExistingIDs snapshots the identifiers currently in the store. The
// snapshot is taken once per run and is the basis both for classifying
// records as created vs updated and for stale detection. A failure here is
// fatal to the whole run.
func (r *Reconciler) ExistingIDs(ctx context.Context) (map[int]struct{}, error) {
	var ids []int
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("%w: snapshot of existing ids: %v", ErrReconciliationFailed, err)
	}

	existing := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		existing[id] = struct{}{}
	}

	return existing, nil
}

// Reconcile upserts every source record in order. Classification against
// the snapshot decides the created/updated counters; the actual
// insert-vs-update decision is made against the live store, so an ID that
// appears twice in one batch is handled identically both times. One bad
// record never aborts the batch: its transaction rolls back, it is counted
// as failed, and processing continues.
func (r *Reconciler) Reconcile(ctx context.Context, existing map[int]struct{}, records []models.Transformed) Stats {
	stats := Stats{TotalSource: len(records)}

	for i, record := range records {
		_, known := existing[record.Product.ID]

		if err := r.UpsertOne(ctx, record); err != nil {
			r.logger.Error("record upsert failed",
				zap.Int("product_id", record.Product.ID),
				zap.Error(err))
			stats.Failed++
			continue
		}

		if known {
			stats.Updated++
		} else {
			stats.Created++
		}

		if r.progressEvery > 0 && (i+1)%r.progressEvery == 0 {
			r.logger.Info("processing records",
				zap.Int("processed", i+1),
				zap.Int("total", len(records)))
		}
	}

	return stats
}

// UpsertOne writes one record and its full child collections as a single
// transaction. On any failure every change for this record is rolled back.
func (r *Reconciler) UpsertOne(ctx context.Context, record models.Transformed) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.writeProduct(tx, record.Product); err != nil {
			return err
		}

		// Child collections are replaced wholesale on every pass, whether
		// the parent was new or updated. No three-way diffing.
		if err := replaceTags(tx, record.Product.ID, record.Tags); err != nil {
			return err
		}
		if err := replaceImages(tx, record.Product.ID, record.Images); err != nil {
			return err
		}
		return replaceReviews(tx, record.Product.ID, record.Reviews)
	})
}

func (r *Reconciler) writeProduct(tx *gorm.DB, product models.Product) error {
	if r.mode == ModeInsertOnly {
		return tx.Create(&product).Error
	}

	var count int64
	if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count).Error; err != nil {
		return err
	}

	epoch := r.epoch
	product.UpdatedAt = &epoch

	if count == 0 {
		return tx.Create(&product).Error
	}

	// Full field overwrite, not a merge. A map keeps zero values in play.
	return tx.Model(&models.Product{}).Where("id = ?", product.ID).Updates(overwriteColumns(product)).Error
}

// overwriteColumns maps every scalar attribute to its column so an update
// replaces the whole row, including fields that went back to zero values.
func overwriteColumns(p models.Product) map[string]any {
	return map[string]any{
		"title":                  p.Title,
		"description":            p.Description,
		"category":               p.Category,
		"price":                  p.Price,
		"discount_percentage":    p.DiscountPercentage,
		"rating":                 p.Rating,
		"stock":                  p.Stock,
		"brand":                  p.Brand,
		"sku":                    p.SKU,
		"weight":                 p.Weight,
		"width":                  p.Width,
		"height":                 p.Height,
		"depth":                  p.Depth,
		"warranty_information":   p.WarrantyInformation,
		"shipping_information":   p.ShippingInformation,
		"availability_status":    p.AvailabilityStatus,
		"return_policy":          p.ReturnPolicy,
		"minimum_order_quantity": p.MinimumOrderQuantity,
		"created_at":             p.CreatedAt,
		"updated_at":             p.UpdatedAt,
		"barcode":                p.Barcode,
		"qr_code":                p.QRCode,
		"thumbnail":              p.Thumbnail,
	}
}

func replaceTags(tx *gorm.DB, productID int, tags []models.ProductTag) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductTag{}).Error; err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}
	return tx.Create(&tags).Error
}

func replaceImages(tx *gorm.DB, productID int, images []models.ProductImage) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	return tx.Create(&images).Error
}

func replaceReviews(tx *gorm.DB, productID int, reviews []models.Review) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}
	return tx.Create(&reviews).Error
}

// RemoveStale evicts store rows whose identifier is absent from the source
// set, in one bulk statement; the cascade constraints clean up child rows.
// Stale detection intersects the pre-run snapshot with the current source
// set; rows deleted concurrently by another process between snapshot and
// eviction are not specially handled. A failure here is fatal.
func (r *Reconciler) RemoveStale(ctx context.Context, existing map[int]struct{}, sourceIDs map[int]struct{}) (int, error) {
	stale := make([]int, 0)
	for id := range existing {
		if _, ok := sourceIDs[id]; !ok {
			stale = append(stale, id)
		}
	}

	if len(stale) == 0 {
		r.logger.Info("no stale records found")
		return 0, nil
	}

	sort.Ints(stale)
	r.logger.Info("removing stale records", zap.Int("count", len(stale)))

	result := r.db.WithContext(ctx).Where("id IN ?", stale).Delete(&models.Product{})
	if result.Error != nil {
		return 0, fmt.Errorf("%w: stale removal: %v", ErrReconciliationFailed, result.Error)
	}

	return int(result.RowsAffected), nil
}

// StoreSize counts the products currently in the store. A failure is fatal
// like the other whole-run queries.
func (r *Reconciler) StoreSize(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: store size query: %v", ErrReconciliationFailed, err)
	}
	return int(count), nil
}
