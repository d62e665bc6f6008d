// Package dynamodb implements the persistence gateway on a single
// DynamoDB table. Every item lives under the owner's partition
// (PK "USER#<userId>") with an entity-typed sort key.
package dynamodb

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	userPKPrefix      = "USER#"
	inventorySKPrefix = "ITEM#"
	mealSKPrefix      = "MEAL#"
	purchaseSKPrefix  = "PURCHASE#"
)

func buildUserPK(userID string) string {
	return userPKPrefix + userID
}

func buildInventorySK(itemID string) string {
	return inventorySKPrefix + itemID
}

func buildMealSK(recordID string) string {
	return mealSKPrefix + recordID
}

func buildPurchaseSK(purchaseID string) string {
	return purchaseSKPrefix + purchaseID
}

// itemKey builds the composite primary key for a single item
func itemKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}
