package catalog

import (
	"context"
	"fmt"

	"catalog-sync/feature/catalog/models"

	"gorm.io/gorm"
)

// ValidationReport contains the results of a store consistency audit.
type ValidationReport struct {
	ProductCount int64 `json:"product_count"`
	TagCount     int64 `json:"tag_count"`
	ImageCount   int64 `json:"image_count"`
	ReviewCount  int64 `json:"review_count"`

	// Orphan counts should always be zero thanks to the cascade
	// constraints; nonzero values indicate schema drift.
	OrphanedTags    int64 `json:"orphaned_tags"`
	OrphanedImages  int64 `json:"orphaned_images"`
	OrphanedReviews int64 `json:"orphaned_reviews"`

	// DuplicateProducts counts primary keys appearing more than once.
	DuplicateProducts int64 `json:"duplicate_products"`
}

// Validate audits store consistency after a run: per-entity row counts,
// orphaned child rows per type, and duplicated primary keys.
func (s *Service) Validate(ctx context.Context) (*ValidationReport, error) {
	db := s.db.WithContext(ctx)
	report := &ValidationReport{}

	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.Product{}, &report.ProductCount},
		{&models.ProductTag{}, &report.TagCount},
		{&models.ProductImage{}, &report.ImageCount},
		{&models.Review{}, &report.ReviewCount},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count rows: %w", err)
		}
	}

	orphans := []struct {
		model any
		dest  *int64
	}{
		{&models.ProductTag{}, &report.OrphanedTags},
		{&models.ProductImage{}, &report.OrphanedImages},
		{&models.Review{}, &report.OrphanedReviews},
	}
	for _, o := range orphans {
		if err := countOrphans(db, o.model, o.dest); err != nil {
			return nil, err
		}
	}

	// A duplicate is a primary key appearing more than once.
	type duplicateRow struct {
		ID    int
		Count int64
	}
	var duplicates []duplicateRow
	err := db.Model(&models.Product{}).
		Select("id, count(*) as count").
		Group("id").
		Having("count(*) > 1").
		Scan(&duplicates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find duplicate products: %w", err)
	}
	report.DuplicateProducts = int64(len(duplicates))

	return report, nil
}

func countOrphans(db *gorm.DB, model any, dest *int64) error {
	err := db.Model(model).
		Where("product_id NOT IN (?)", db.Session(&gorm.Session{NewDB: true}).Model(&models.Product{}).Select("id")).
		Count(dest).Error
	if err != nil {
		return fmt.Errorf("failed to count orphans: %w", err)
	}
	return nil
}
