package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product-specific validation errors
var (
	// ErrProductVendorEmpty is returned when a product's vendor name is empty.
	ErrProductVendorEmpty = errors.New("product vendor cannot be empty")

	// ErrProductCategoryEmpty is returned when a product's category name is empty.
	ErrProductCategoryEmpty = errors.New("product category cannot be empty")

	// ErrProductTitleEmpty is returned when a product's title is empty.
	ErrProductTitleEmpty = errors.New("product title cannot be empty")

	// ErrProductDescriptionEmpty is returned when a product's description is empty.
	ErrProductDescriptionEmpty = errors.New("product description cannot be empty")

	// ErrProductPriceEmpty is returned when a product's price is empty.
	ErrProductPriceEmpty = errors.New("product price cannot be empty")

	// ErrInvalidName is returned when a vendor or category name violates the
	// pool name format contract.
	ErrInvalidName = errors.New("invalid pool name")
)

// forbiddenNameChars are characters a vendor or category name must never
// contain; they would break the exclusion lists embedded in prompts and the
// exported file contents.
const forbiddenNameChars = `()[]/\:`

// ProductRecord represents one accepted synthetic catalog entry. Price is an
// opaque string carrying a USD amount; it is never interpreted numerically.
type ProductRecord struct {
	ID          uuid.UUID `json:"id"`
	Vendor      string    `json:"vendor"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// Combination is one (vendor, category) pair to generate a product for.
// Combinations are sampled with replacement, so the same pair may occur
// multiple times within a batch.
type Combination struct {
	Vendor   string `json:"vendor"`
	Category string `json:"category"`
}

// NewProductRecord creates a ProductRecord for the given combination and
// generated fields. It assigns a new UUID and creation timestamp.
// Returns an error if validation fails.
func NewProductRecord(combo Combination, title, description, price string) (*ProductRecord, error) {
	record := &ProductRecord{
		ID:          uuid.New(),
		Vendor:      combo.Vendor,
		Category:    combo.Category,
		Title:       title,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the ProductRecord has valid data.
// Returns an error if any field fails validation.
func (r *ProductRecord) Validate() error {
	if r.Vendor == "" {
		return ErrProductVendorEmpty
	}

	if r.Category == "" {
		return ErrProductCategoryEmpty
	}

	if r.Title == "" {
		return ErrProductTitleEmpty
	}

	if r.Description == "" {
		return ErrProductDescriptionEmpty
	}

	if r.Price == "" {
		return ErrProductPriceEmpty
	}

	return nil
}

// ValidatePoolName checks a vendor or category name against the pool format
// contract: non-empty, no embedded newlines, and none of the characters in
// forbiddenNameChars.
func ValidatePoolName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}

	if strings.ContainsAny(name, forbiddenNameChars) {
		return ErrInvalidName
	}

	if strings.ContainsAny(name, "\n\r") {
		return ErrInvalidName
	}

	return nil
}
