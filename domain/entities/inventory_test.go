package entities

import (
	"testing"

	apperrors "pantry-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestInventoryItemUpdate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		update  InventoryItemUpdate
		wantErr bool
	}{
		{
			name:   "valid quantity",
			update: InventoryItemUpdate{Quantity: floatPtr(2)},
		},
		{
			name:   "zero quantity is allowed",
			update: InventoryItemUpdate{Quantity: floatPtr(0)},
		},
		{
			name:    "negative quantity rejected",
			update:  InventoryItemUpdate{Quantity: floatPtr(-1)},
			wantErr: true,
		},
		{
			name:    "empty name rejected",
			update:  InventoryItemUpdate{Name: strPtr("")},
			wantErr: true,
		},
		{
			name:    "empty category rejected",
			update:  InventoryItemUpdate{Category: strPtr("")},
			wantErr: true,
		},
		{
			name:   "empty update is valid, delta is just empty",
			update: InventoryItemUpdate{},
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

func TestInventoryItemUpdate_Delta(t *testing.T) {
	update := InventoryItemUpdate{
		Name:     strPtr("Milk"),
		Quantity: floatPtr(3),
	}

	delta := update.Delta()

	assert.Equal(t, map[string]interface{}{
		"Name":     "Milk",
		"Quantity": float64(3),
	}, delta)
}

func TestInventoryItemUpdate_Delta_Empty(t *testing.T) {
	assert.Empty(t, InventoryItemUpdate{}.Delta())
}

func TestInventoryUpdatableFields_ExcludeIdentityAndTimestamps(t *testing.T) {
	for _, field := range InventoryUpdatableFields {
		assert.NotContains(t, []string{"UserID", "ItemID", "CreatedAt", "UpdatedAt"}, field)
	}
}
