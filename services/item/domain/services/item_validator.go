// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/itemcatalog/services/item/domain/models"
)

// ValidateName enforces business rules for ItemName beyond the structural
// constraints enforced by the ItemName constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - Must not be only whitespace characters
func ValidateName(name models.ItemName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("item name must not be only whitespace")
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("item name must not have leading or trailing whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("item name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("item name must not contain consecutive spaces")
	}

	return nil
}

// ValidateItemForCreation performs whole-aggregate validation on an Item
// before it is persisted. Checks run in a fixed order and the first failure
// is returned: seller, name, price, statistics, id.
func ValidateItemForCreation(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if _, err := models.NewSellerID(item.SellerID.Int64()); err != nil {
		return fmt.Errorf("invalid seller id: %w", err)
	}

	if err := ValidateName(item.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if item.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}

	if !item.Statistics.Valid() {
		return fmt.Errorf("statistics counters must not be negative")
	}

	if _, err := models.ParseItemID(item.ID.String()); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}

	if item.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}

	return nil
}
