package source

// Page is one paginated response from the source collection endpoint.
type Page struct {
	// Products are the raw records of this page.
	Products []RawProduct `json:"products"`
	// Total is the source-reported size of the full collection.
	Total int `json:"total"`
	// Skip is the offset this page was requested at.
	Skip int `json:"skip"`
	// Limit is the page size this page was requested with.
	Limit int `json:"limit"`
}

// RawProduct is a catalog record exactly as the source API serves it,
// including the nested dimensions and meta sub-objects.
type RawProduct struct {
	ID                   int         `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Category             string      `json:"category"`
	Price                float64     `json:"price"`
	DiscountPercentage   float64     `json:"discountPercentage"`
	Rating               float64     `json:"rating"`
	Stock                int         `json:"stock"`
	Brand                string      `json:"brand"`
	SKU                  string      `json:"sku"`
	Weight               float64     `json:"weight"`
	Dimensions           Dimensions  `json:"dimensions"`
	WarrantyInformation  string      `json:"warrantyInformation"`
	ShippingInformation  string      `json:"shippingInformation"`
	AvailabilityStatus   string      `json:"availabilityStatus"`
	ReturnPolicy         string      `json:"returnPolicy"`
	MinimumOrderQuantity int         `json:"minimumOrderQuantity"`
	Meta                 Meta        `json:"meta"`
	Tags                 []string    `json:"tags"`
	Images               []string    `json:"images"`
	Reviews              []RawReview `json:"reviews"`
	Thumbnail            string      `json:"thumbnail"`
}

// Dimensions is the nested size sub-object of a raw record.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Meta is the nested bookkeeping sub-object of a raw record.
// Timestamps are ISO-8601 strings with a Z suffix.
type Meta struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Barcode   string `json:"barcode"`
	QRCode    string `json:"qrCode"`
}

// RawReview is one review entry of a raw record.
type RawReview struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Date          string `json:"date"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
}
