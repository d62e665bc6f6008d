package dynamodb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "USER#u-1", buildUserPK("u-1"))
	assert.Equal(t, "ITEM#i-1", buildInventorySK("i-1"))
	assert.Equal(t, "MEAL#m-1", buildMealSK("m-1"))
	assert.Equal(t, "PURCHASE#p-1", buildPurchaseSK("p-1"))
}

func TestItemKey(t *testing.T) {
	key := itemKey("USER#u-1", "ITEM#i-1")

	pk, ok := key["PK"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "USER#u-1", pk.Value)

	sk, ok := key["SK"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "ITEM#i-1", sk.Value)
}
