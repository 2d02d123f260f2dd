package catalog

import (
	"testing"
	"time"

	"catalog-sync/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTransform_FullRecord(t *testing.T) {
	raw := source.RawProduct{
		ID:                   1,
		Title:                "Essence Mascara Lash Princess",
		Description:          "Popular mascara",
		Category:             "beauty",
		Price:                9.99,
		DiscountPercentage:   7.17,
		Rating:               4.94,
		Stock:                5,
		Tags:                 []string{"beauty", "mascara"},
		Brand:                "Essence",
		SKU:                  "RCH45Q1A",
		Weight:               2,
		Dimensions:           source.Dimensions{Width: 23.17, Height: 14.43, Depth: 28.01},
		WarrantyInformation:  "1 month warranty",
		ShippingInformation:  "Ships in 1 month",
		AvailabilityStatus:   "Low Stock",
		ReturnPolicy:         "30 days return policy",
		MinimumOrderQuantity: 24,
		Meta: source.Meta{
			CreatedAt: "2024-05-23T08:56:21.618Z",
			UpdatedAt: "2024-05-23T08:56:21.618Z",
			Barcode:   "9164035109868",
			QRCode:    "https://dummyjson.com/public/qr-code.png",
		},
		Images:    []string{"https://cdn.dummyjson.com/1.png", "https://cdn.dummyjson.com/2.png"},
		Thumbnail: "https://cdn.dummyjson.com/thumb.png",
		Reviews: []source.RawReview{
			{
				Rating:        5,
				Comment:       "Very satisfied!",
				Date:          "2024-05-23T08:56:21.618Z",
				ReviewerName:  "Scarlett Wright",
				ReviewerEmail: "scarlett.wright@x.dummyjson.com",
			},
		},
	}

	got := Transform(raw, zap.NewNop())

	assert.Equal(t, 1, got.Product.ID)
	assert.Equal(t, "Essence Mascara Lash Princess", got.Product.Title)
	assert.Equal(t, 9.99, got.Product.Price)
	assert.Equal(t, 23.17, got.Product.Width)
	assert.Equal(t, 14.43, got.Product.Height)
	assert.Equal(t, 28.01, got.Product.Depth)
	assert.Equal(t, "9164035109868", got.Product.Barcode)

	require.NotNil(t, got.Product.CreatedAt)
	expected, _ := time.Parse(time.RFC3339, "2024-05-23T08:56:21.618Z")
	assert.True(t, got.Product.CreatedAt.Equal(expected))

	require.Len(t, got.Tags, 2)
	assert.Equal(t, 1, got.Tags[0].ProductID)
	assert.Equal(t, "beauty", got.Tags[0].Tag)

	require.Len(t, got.Images, 2)
	assert.Equal(t, "https://cdn.dummyjson.com/1.png", got.Images[0].ImageURL)
	assert.Equal(t, 1, got.Images[0].ProductID)

	require.Len(t, got.Reviews, 1)
	assert.Equal(t, 5, got.Reviews[0].Rating)
	assert.Equal(t, "Scarlett Wright", got.Reviews[0].ReviewerName)
	require.NotNil(t, got.Reviews[0].Date)
}

func TestTransform_MissingOptionals(t *testing.T) {
	raw := source.RawProduct{
		ID:    42,
		Title: "Bare Record",
		Price: 1.0,
	}

	got := Transform(raw, zap.NewNop())

	assert.Equal(t, 42, got.Product.ID)
	assert.Empty(t, got.Product.Brand)
	assert.Zero(t, got.Product.Width)
	assert.Nil(t, got.Product.CreatedAt)
	assert.Nil(t, got.Product.UpdatedAt)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.Images)
	assert.Empty(t, got.Reviews)
}

func TestTransform_BadDateBecomesNil(t *testing.T) {
	raw := source.RawProduct{
		ID:    7,
		Title: "Bad Dates",
		Meta:  source.Meta{CreatedAt: "not-a-date", UpdatedAt: "2024-13-45T99:99:99Z"},
		Reviews: []source.RawReview{
			{Rating: 3, Comment: "ok", Date: "garbage"},
		},
	}

	got := Transform(raw, zap.NewNop())

	assert.Nil(t, got.Product.CreatedAt)
	assert.Nil(t, got.Product.UpdatedAt)
	require.Len(t, got.Reviews, 1)
	assert.Nil(t, got.Reviews[0].Date)
}
