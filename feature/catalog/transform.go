package catalog

import (
	"time"

	"catalog-sync/core/source"
	"catalog-sync/feature/catalog/models"

	"go.uber.org/zap"
)

// Transform normalizes one raw source record into a product plus its child
// collections. It performs no I/O and never fails: absent optional fields
// become zero values and unparsable dates become nil.
func Transform(raw source.RawProduct, logger *zap.Logger) models.Transformed {
	product := models.Product{
		ID:                   raw.ID,
		Title:                raw.Title,
		Description:          raw.Description,
		Category:             raw.Category,
		Price:                raw.Price,
		DiscountPercentage:   raw.DiscountPercentage,
		Rating:               raw.Rating,
		Stock:                raw.Stock,
		Brand:                raw.Brand,
		SKU:                  raw.SKU,
		Weight:               raw.Weight,
		Width:                raw.Dimensions.Width,
		Height:               raw.Dimensions.Height,
		Depth:                raw.Dimensions.Depth,
		WarrantyInformation:  raw.WarrantyInformation,
		ShippingInformation:  raw.ShippingInformation,
		AvailabilityStatus:   raw.AvailabilityStatus,
		ReturnPolicy:         raw.ReturnPolicy,
		MinimumOrderQuantity: raw.MinimumOrderQuantity,
		CreatedAt:            parseTime(raw.Meta.CreatedAt, logger),
		UpdatedAt:            parseTime(raw.Meta.UpdatedAt, logger),
		Barcode:              raw.Meta.Barcode,
		QRCode:               raw.Meta.QRCode,
		Thumbnail:            raw.Thumbnail,
	}

	tags := make([]models.ProductTag, 0, len(raw.Tags))
	for _, tag := range raw.Tags {
		tags = append(tags, models.ProductTag{ProductID: raw.ID, Tag: tag})
	}

	images := make([]models.ProductImage, 0, len(raw.Images))
	for _, url := range raw.Images {
		images = append(images, models.ProductImage{ProductID: raw.ID, ImageURL: url})
	}

	reviews := make([]models.Review, 0, len(raw.Reviews))
	for _, review := range raw.Reviews {
		reviews = append(reviews, models.Review{
			ProductID:     raw.ID,
			Rating:        review.Rating,
			Comment:       review.Comment,
			Date:          parseTime(review.Date, logger),
			ReviewerName:  review.ReviewerName,
			ReviewerEmail: review.ReviewerEmail,
		})
	}

	return models.Transformed{
		Product: product,
		Tags:    tags,
		Images:  images,
		Reviews: reviews,
	}
}

// parseTime parses the source's ISO-8601-with-Z convention. A bad value is
// a data quality issue, not a pipeline failure: it is logged and dropped.
func parseTime(value string, logger *zap.Logger) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		logger.Warn("could not parse datetime", zap.String("value", value))
		return nil
	}

	return &parsed
}
