package entities

import (
	"testing"

	apperrors "pantry-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseRecordUpdate_Validate(t *testing.T) {
	valid := PurchaseRecordUpdate{
		Items: &[]PurchaseItem{{Name: "Eggs", Quantity: 12}},
	}
	assert.NoError(t, valid.Validate())

	empty := PurchaseRecordUpdate{Items: &[]PurchaseItem{}}
	err := empty.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	noDate := PurchaseRecordUpdate{PurchaseDate: strPtr("")}
	err = noDate.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	negativeQuantity := PurchaseRecordUpdate{
		Items: &[]PurchaseItem{{Name: "Eggs", Quantity: -1}},
	}
	err = negativeQuantity.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	negativeTotal := PurchaseRecordUpdate{TotalAmount: floatPtr(-0.5)}
	err = negativeTotal.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPurchaseRecordUpdate_Delta(t *testing.T) {
	update := PurchaseRecordUpdate{
		Store:       strPtr("Corner Market"),
		TotalAmount: floatPtr(12.50),
	}

	delta := update.Delta()

	assert.Equal(t, map[string]interface{}{
		"Store":       "Corner Market",
		"TotalAmount": 12.50,
	}, delta)
}
