package models

import (
	"time"
)

// Product is the primary catalog entity being synchronized. Its ID is the
// natural key assigned by the source and is never regenerated locally.
type Product struct {
	ID                   int        `gorm:"column:id;primaryKey" json:"id"`
	Title                string     `gorm:"column:title;size:500;not null" json:"title"`
	Description          string     `gorm:"column:description;type:text" json:"description"`
	Category             string     `gorm:"column:category;size:100;index" json:"category"`
	Price                float64    `gorm:"column:price;not null" json:"price"`
	DiscountPercentage   float64    `gorm:"column:discount_percentage;default:0" json:"discount_percentage"`
	Rating               float64    `gorm:"column:rating" json:"rating"`
	Stock                int        `gorm:"column:stock;default:0" json:"stock"`
	Brand                string     `gorm:"column:brand;size:100;index" json:"brand"`
	SKU                  string     `gorm:"column:sku;size:50;index" json:"sku"`
	Weight               float64    `gorm:"column:weight" json:"weight"`
	Width                float64    `gorm:"column:width" json:"width"`
	Height               float64    `gorm:"column:height" json:"height"`
	Depth                float64    `gorm:"column:depth" json:"depth"`
	WarrantyInformation  string     `gorm:"column:warranty_information;size:500" json:"warranty_information"`
	ShippingInformation  string     `gorm:"column:shipping_information;size:500" json:"shipping_information"`
	AvailabilityStatus   string     `gorm:"column:availability_status;size:50" json:"availability_status"`
	ReturnPolicy         string     `gorm:"column:return_policy;size:500" json:"return_policy"`
	MinimumOrderQuantity int        `gorm:"column:minimum_order_quantity;default:1" json:"minimum_order_quantity"`
	CreatedAt            *time.Time `gorm:"column:created_at;autoCreateTime:false" json:"created_at"`
	UpdatedAt            *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at"`
	Barcode              string     `gorm:"column:barcode;size:50" json:"barcode"`
	QRCode               string     `gorm:"column:qr_code;type:text" json:"qr_code"`
	Thumbnail            string     `gorm:"column:thumbnail;type:text" json:"thumbnail"`

	// Child collections. The foreign keys cascade on delete so removing a
	// product removes its tags, images, and reviews in the same statement.
	Tags    []ProductTag   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Images  []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Reviews []Review       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// TableName overrides the table name for Product.
func (Product) TableName() string {
	return "products"
}

// ProductTag is a label owned exclusively by one product.
// (product_id, tag) pairs are unique.
type ProductTag struct {
	ID        int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID int    `gorm:"column:product_id;not null;uniqueIndex:idx_product_tag_unique" json:"product_id"`
	Tag       string `gorm:"column:tag;size:100;not null;uniqueIndex:idx_product_tag_unique" json:"tag"`
}

// TableName overrides the table name for ProductTag.
func (ProductTag) TableName() string {
	return "product_tags"
}

// ProductImage is an image URL owned exclusively by one product.
type ProductImage struct {
	ID        int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID int    `gorm:"column:product_id;not null;index" json:"product_id"`
	ImageURL  string `gorm:"column:image_url;type:text;not null" json:"image_url"`
}

// TableName overrides the table name for ProductImage.
func (ProductImage) TableName() string {
	return "product_images"
}

// Review is a customer review owned exclusively by one product.
type Review struct {
	ID            int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID     int        `gorm:"column:product_id;not null;index" json:"product_id"`
	Rating        int        `gorm:"column:rating;not null" json:"rating"`
	Comment       string     `gorm:"column:comment;type:text" json:"comment"`
	Date          *time.Time `gorm:"column:date" json:"date"`
	ReviewerName  string     `gorm:"column:reviewer_name;size:200" json:"reviewer_name"`
	ReviewerEmail string     `gorm:"column:reviewer_email;size:300" json:"reviewer_email"`
}

// TableName overrides the table name for Review.
func (Review) TableName() string {
	return "reviews"
}

// Transformed is one source record in relational shape: the normalized
// product plus its full child collections, ready for a single-transaction
// upsert.
type Transformed struct {
	Product Product
	Tags    []ProductTag
	Images  []ProductImage
	Reviews []Review
}
