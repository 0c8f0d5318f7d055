package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewProductRecord(t *testing.T) {
	t.Parallel() // Enable parallel execution
	combo := Combination{Vendor: "Acme Goods", Category: "Home Office"}

	record, err := NewProductRecord(combo, "Walnut Desk Organizer", "A handmade organizer.", "34.50")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if record.Vendor != combo.Vendor {
		t.Errorf("Expected vendor %s, got %s", combo.Vendor, record.Vendor)
	}

	if record.Category != combo.Category {
		t.Errorf("Expected category %s, got %s", combo.Category, record.Category)
	}

	if record.Title != "Walnut Desk Organizer" {
		t.Errorf("Expected title %q, got %q", "Walnut Desk Organizer", record.Title)
	}

	if record.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test empty vendor
	_, err = NewProductRecord(Combination{Category: "Home Office"}, "Title", "Desc", "1.00")
	if err != ErrProductVendorEmpty {
		t.Errorf("Expected error %v, got %v", ErrProductVendorEmpty, err)
	}

	// Test empty category
	_, err = NewProductRecord(Combination{Vendor: "Acme Goods"}, "Title", "Desc", "1.00")
	if err != ErrProductCategoryEmpty {
		t.Errorf("Expected error %v, got %v", ErrProductCategoryEmpty, err)
	}

	// Test empty title
	_, err = NewProductRecord(combo, "", "Desc", "1.00")
	if err != ErrProductTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrProductTitleEmpty, err)
	}

	// Test empty description
	_, err = NewProductRecord(combo, "Title", "", "1.00")
	if err != ErrProductDescriptionEmpty {
		t.Errorf("Expected error %v, got %v", ErrProductDescriptionEmpty, err)
	}

	// Test empty price
	_, err = NewProductRecord(combo, "Title", "Desc", "")
	if err != ErrProductPriceEmpty {
		t.Errorf("Expected error %v, got %v", ErrProductPriceEmpty, err)
	}
}

func TestValidatePoolName(t *testing.T) {
	t.Parallel() // Enable parallel execution

	valid := []string{"Acme Goods", "Birch & Sons", "Home Office", "Mugs-and-More"}
	for _, name := range valid {
		if err := ValidatePoolName(name); err != nil {
			t.Errorf("Expected %q to be valid, got %v", name, err)
		}
	}

	invalid := []string{
		"",
		"   ",
		"Acme (Goods)",
		"Acme [Goods]",
		"Acme/Goods",
		`Acme\Goods`,
		"Acme: Goods",
		"Acme\nGoods",
		"Acme\rGoods",
	}
	for _, name := range invalid {
		if err := ValidatePoolName(name); err != ErrInvalidName {
			t.Errorf("Expected %q to yield ErrInvalidName, got %v", name, err)
		}
	}
}
