package entities

import (
	apperrors "pantry-backend/pkg/errors"
)

// MealItem is a single food entry within a meal record
type MealItem struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit,omitempty"`
	FoodID   string  `json:"foodId,omitempty"`
}

// MealRecord is one logged meal for a user. Items is never empty for a
// stored record.
type MealRecord struct {
	UserID     string     `json:"userId"`
	RecordID   string     `json:"recordId"`
	RecordDate string     `json:"recordDate"`
	MealType   string     `json:"mealType"`
	Items      []MealItem `json:"items"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
}

// MealRecordUpdate is a partial update to a meal record
type MealRecordUpdate struct {
	RecordDate *string     `json:"recordDate,omitempty"`
	MealType   *string     `json:"mealType,omitempty"`
	Items      *[]MealItem `json:"items,omitempty"`
	Notes      *string     `json:"notes,omitempty"`
}

// MealUpdatableFields is the allow-list of storage attributes a client may
// change on a meal record
var MealUpdatableFields = []string{
	"RecordDate", "MealType", "Items", "Notes",
}

// Validate checks the type-constrained fields of the update
func (u MealRecordUpdate) Validate() error {
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
	if u.RecordDate != nil && *u.RecordDate == "" {
		return apperrors.NewValidationError("recordDate must not be empty")
	}
	if u.MealType != nil && *u.MealType == "" {
		return apperrors.NewValidationError("mealType must not be empty")
	}
	return nil
}

// Delta maps the set fields onto their storage attribute names
func (u MealRecordUpdate) Delta() map[string]interface{} {
	delta := make(map[string]interface{})
	if u.RecordDate != nil {
		delta["RecordDate"] = *u.RecordDate
	}
	if u.MealType != nil {
		delta["MealType"] = *u.MealType
	}
	if u.Items != nil {
		delta["Items"] = *u.Items
	}
	if u.Notes != nil {
		delta["Notes"] = *u.Notes
	}
	return delta
}

// DateRange is an optional inclusive date filter for meal record listings.
// Dates are ISO strings so lexicographic comparison matches calendar order.
type DateRange struct {
	Start string
	End   string
}

// IsZero reports whether no bound is set
func (r DateRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}
