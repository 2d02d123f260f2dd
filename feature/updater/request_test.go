package updater

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateRequest_Validation(t *testing.T) {
	tests := []struct {
		name        string
		productID   int
		title       string
		price       float64
		description string
		wantErr     string
	}{
		{
			name:      "valid request",
			productID: 1,
			title:     "Updated Title",
			price:     19.99,
		},
		{
			name:      "zero product id",
			productID: 0,
			title:     "Title",
			price:     10,
			wantErr:   "product id must be positive",
		},
		{
			name:      "negative product id",
			productID: -5,
			title:     "Title",
			price:     10,
			wantErr:   "product id must be positive",
		},
		{
			name:      "zero price",
			productID: 1,
			title:     "Title",
			price:     0,
			wantErr:   "price must be positive",
		},
		{
			name:      "negative price",
			productID: 1,
			title:     "Title",
			price:     -1.5,
			wantErr:   "price must be positive",
		},
		{
			name:      "blank title",
			productID: 1,
			title:     "   ",
			price:     10,
			wantErr:   "title cannot be empty",
		},
		{
			name:        "description too long",
			productID:   1,
			title:       "Title",
			price:       10,
			description: strings.Repeat("x", 1001),
			wantErr:     "description too long",
		},
		{
			name:        "description at limit",
			productID:   1,
			title:       "Title",
			price:       10,
			description: strings.Repeat("x", 1000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewUpdateRequest(tt.productID, tt.title, tt.price, tt.description)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRequest)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.productID, req.ProductID)
		})
	}
}

func TestPayload(t *testing.T) {
	req := UpdateRequest{ProductID: 1, Title: "  Trimmed  ", Price: 9.99}
	p := req.payload()
	assert.Equal(t, "Trimmed", p["title"])
	assert.Equal(t, 9.99, p["price"])
	_, hasDesc := p["description"]
	assert.False(t, hasDesc, "empty description should be omitted")

	req.Description = " new description "
	p = req.payload()
	assert.Equal(t, "new description", p["description"])
}
