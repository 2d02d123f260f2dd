package updater

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidRequest marks an UpdateRequest that failed validation. Such
// requests never reach the network layer and are never retried.
var ErrInvalidRequest = errors.New("invalid update request")

// UpdateRequest describes one product field update.
type UpdateRequest struct {
	ProductID   int     `json:"product_id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// NewUpdateRequest builds a validated update request. Validation happens
// eagerly so malformed input is rejected before any I/O.
func NewUpdateRequest(productID int, title string, price float64, description string) (UpdateRequest, error) {
	req := UpdateRequest{
		ProductID:   productID,
		Title:       title,
		Price:       price,
		Description: description,
	}
	if err := req.Validate(); err != nil {
		return UpdateRequest{}, err
	}
	return req, nil
}

// Validate checks the request invariants.
func (r UpdateRequest) Validate() error {
	if r.ProductID <= 0 {
		return fmt.Errorf("%w: product id must be positive", ErrInvalidRequest)
	}
	if r.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidRequest)
	}
	if len(r.Description) > 1000 {
		return fmt.Errorf("%w: description too long (max 1000 characters)", ErrInvalidRequest)
	}
	return nil
}

// payload builds the wire body. Description is included only when present;
// strings are trimmed.
func (r UpdateRequest) payload() map[string]any {
	p := map[string]any{
		"title": strings.TrimSpace(r.Title),
		"price": r.Price,
	}
	if r.Description != "" {
		p["description"] = strings.TrimSpace(r.Description)
	}
	return p
}

// UpdateResult is the immutable outcome of one update request.
type UpdateResult struct {
	// Success reports whether the update was applied.
	Success bool `json:"success"`
	// Data is the record echoed by the source on success.
	Data map[string]any `json:"data,omitempty"`
	// Error describes the failure when Success is false.
	Error string `json:"error,omitempty"`
	// Timestamp is when the result was produced.
	Timestamp time.Time `json:"timestamp"`
}
