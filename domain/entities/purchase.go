package entities

import (
	apperrors "pantry-backend/pkg/errors"
)

// PurchaseItem is a single line on a purchase record
type PurchaseItem struct {
	Name     string   `json:"name" validate:"required"`
	Quantity float64  `json:"quantity" validate:"gte=0"`
	Price    *float64 `json:"price,omitempty"`
	Unit     string   `json:"unit,omitempty"`
}

// PurchaseRecord is one shopping trip for a user. Items is never empty for
// a stored record.
type PurchaseRecord struct {
	UserID       string         `json:"userId"`
	PurchaseID   string         `json:"purchaseId"`
	PurchaseDate string         `json:"purchaseDate"`
	Items        []PurchaseItem `json:"items"`
	TotalAmount  *float64       `json:"totalAmount,omitempty"`
	Store        string         `json:"store,omitempty"`
	Memo         string         `json:"memo,omitempty"`
	CreatedAt    string         `json:"createdAt"`
	UpdatedAt    string         `json:"updatedAt"`
}

// PurchaseRecordUpdate is a partial update to a purchase record
type PurchaseRecordUpdate struct {
	PurchaseDate *string         `json:"purchaseDate,omitempty"`
	Items        *[]PurchaseItem `json:"items,omitempty"`
	TotalAmount  *float64        `json:"totalAmount,omitempty"`
	Store        *string         `json:"store,omitempty"`
	Memo         *string         `json:"memo,omitempty"`
}

// PurchaseUpdatableFields is the allow-list of storage attributes a client
// may change on a purchase record
var PurchaseUpdatableFields = []string{
	"PurchaseDate", "Items", "TotalAmount", "Store", "Memo",
}

// Validate checks the type-constrained fields of the update
func (u PurchaseRecordUpdate) Validate() error {
	if u.Items != nil && len(*u.Items) == 0 {
		return apperrors.NewValidationError("items must be a non-empty list")
	}
	if u.Items != nil {
		for _, item := range *u.Items {
			if item.Name == "" {
				return apperrors.NewValidationError("items entries require a name")
			}
			if item.Quantity < 0 {
				return apperrors.NewValidationError("items entries require a non-negative quantity")
			}
		}
	}
	if u.PurchaseDate != nil && *u.PurchaseDate == "" {
		return apperrors.NewValidationError("purchaseDate must not be empty")
	}
	if u.TotalAmount != nil && *u.TotalAmount < 0 {
		return apperrors.NewValidationError("totalAmount must be a non-negative number")
	}
	return nil
}

// Delta maps the set fields onto their storage attribute names
func (u PurchaseRecordUpdate) Delta() map[string]interface{} {
	delta := make(map[string]interface{})
	if u.PurchaseDate != nil {
		delta["PurchaseDate"] = *u.PurchaseDate
	}
	if u.Items != nil {
		delta["Items"] = *u.Items
	}
	if u.TotalAmount != nil {
		delta["TotalAmount"] = *u.TotalAmount
	}
	if u.Store != nil {
		delta["Store"] = *u.Store
	}
	if u.Memo != nil {
		delta["Memo"] = *u.Memo
	}
	return delta
}
