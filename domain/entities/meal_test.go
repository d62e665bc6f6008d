package entities

import (
	"testing"

	apperrors "pantry-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealRecordUpdate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		update  MealRecordUpdate
		wantErr bool
	}{
		{
			name: "valid items",
			update: MealRecordUpdate{
				Items: &[]MealItem{{Name: "Rice", Quantity: 1}},
			},
		},
		{
			name: "empty items rejected",
			update: MealRecordUpdate{
				Items: &[]MealItem{},
			},
			wantErr: true,
		},
		{
			name: "item without name rejected",
			update: MealRecordUpdate{
				Items: &[]MealItem{{Quantity: 1}},
			},
			wantErr: true,
		},
		{
			name: "item with negative quantity rejected",
			update: MealRecordUpdate{
				Items: &[]MealItem{{Name: "Rice", Quantity: -1}},
			},
			wantErr: true,
		},
		{
			name:    "empty recordDate rejected",
			update:  MealRecordUpdate{RecordDate: strPtr("")},
			wantErr: true,
		},
		{
			name:    "empty mealType rejected",
			update:  MealRecordUpdate{MealType: strPtr("")},
			wantErr: true,
		},
		{
			name:   "notes only is valid",
			update: MealRecordUpdate{Notes: strPtr("leftovers")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMealRecordUpdate_Delta(t *testing.T) {
	items := []MealItem{{Name: "Toast", Quantity: 2}}
	update := MealRecordUpdate{
		MealType: strPtr("breakfast"),
		Items:    &items,
	}

	delta := update.Delta()

	require.Len(t, delta, 2)
	assert.Equal(t, "breakfast", delta["MealType"])
	assert.Equal(t, items, delta["Items"])
}

func TestDateRange_IsZero(t *testing.T) {
	assert.True(t, DateRange{}.IsZero())
	assert.False(t, DateRange{Start: "2025-01-01"}.IsZero())
	assert.False(t, DateRange{End: "2025-01-31"}.IsZero())
}
