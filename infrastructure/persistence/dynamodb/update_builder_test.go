package dynamodb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAllowList = []string{"Name", "Category", "Quantity"}

func TestBuildUpdate_StampsTimestampAndFields(t *testing.T) {
	delta := map[string]interface{}{
		"Name":     "Milk",
		"Quantity": 2.0,
	}

	upd, err := buildUpdate(testAllowList, delta, "2025-06-01T00:00:00Z")
	require.NoError(t, err)

	expr, err := expression.NewBuilder().WithUpdate(upd).Build()
	require.NoError(t, err)

	names := expr.Names()
	assert.Contains(t, mapValues(names), "UpdatedAt")
	assert.Contains(t, mapValues(names), "Name")
	assert.Contains(t, mapValues(names), "Quantity")
	assert.NotContains(t, mapValues(names), "Category")
}

func TestBuildUpdate_IgnoresFieldsOutsideAllowList(t *testing.T) {
	delta := map[string]interface{}{
		"Name":   "Milk",
		"UserID": "intruder", // not allow-listed, must never reach the expression
	}

	upd, err := buildUpdate(testAllowList, delta, "2025-06-01T00:00:00Z")
	require.NoError(t, err)

	expr, err := expression.NewBuilder().WithUpdate(upd).Build()
	require.NoError(t, err)

	assert.NotContains(t, mapValues(expr.Names()), "UserID")
}

func TestBuildUpdate_NoAllowListedFields(t *testing.T) {
	delta := map[string]interface{}{
		"UserID": "intruder",
	}

	_, err := buildUpdate(testAllowList, delta, "2025-06-01T00:00:00Z")
	assert.ErrorIs(t, err, ErrNoUpdatableFields)
}

func TestBuildUpdate_EmptyDelta(t *testing.T) {
	_, err := buildUpdate(testAllowList, map[string]interface{}{}, "2025-06-01T00:00:00Z")
	assert.ErrorIs(t, err, ErrNoUpdatableFields)
}

func mapValues(m map[string]string) []string {
	values := make([]string, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}
