package entities

import (
	apperrors "pantry-backend/pkg/errors"
)

// InventoryItem is a single food item in a user's inventory.
// Quantity is never negative for a stored item.
type InventoryItem struct {
	UserID          string  `json:"userId"`
	ItemID          string  `json:"itemId"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit,omitempty"`
	StorageLocation string  `json:"storageLocation,omitempty"`
	Memo            string  `json:"memo,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// InventoryItemUpdate is a partial update to an inventory item.
// Nil fields are left untouched.
type InventoryItemUpdate struct {
	Name            *string  `json:"name,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Quantity        *float64 `json:"quantity,omitempty"`
	Unit            *string  `json:"unit,omitempty"`
	StorageLocation *string  `json:"storageLocation,omitempty"`
	Memo            *string  `json:"memo,omitempty"`
}

// InventoryUpdatableFields is the allow-list of storage attributes a client
// may change on an inventory item. Identity, ownership and timestamps are
// excluded.
var InventoryUpdatableFields = []string{
	"Name", "Category", "Quantity", "Unit", "StorageLocation", "Memo",
}

// Validate checks the type-constrained fields of the update
func (u InventoryItemUpdate) Validate() error {
	if u.Quantity != nil && *u.Quantity < 0 {
		return apperrors.NewValidationError("quantity must be a non-negative number")
	}
	if u.Name != nil && *u.Name == "" {
		return apperrors.NewValidationError("name must not be empty")
	}
	if u.Category != nil && *u.Category == "" {
		return apperrors.NewValidationError("category must not be empty")
	}
	return nil
}

// Delta maps the set fields onto their storage attribute names
func (u InventoryItemUpdate) Delta() map[string]interface{} {
	delta := make(map[string]interface{})
	if u.Name != nil {
		delta["Name"] = *u.Name
	}
	if u.Category != nil {
		delta["Category"] = *u.Category
	}
	if u.Quantity != nil {
		delta["Quantity"] = *u.Quantity
	}
	if u.Unit != nil {
		delta["Unit"] = *u.Unit
	}
	if u.StorageLocation != nil {
		delta["StorageLocation"] = *u.StorageLocation
	}
	if u.Memo != nil {
		delta["Memo"] = *u.Memo
	}
	return delta
}
