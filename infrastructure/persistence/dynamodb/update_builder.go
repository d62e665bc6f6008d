package dynamodb

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// ErrNoUpdatableFields signals that a partial-update payload carried zero
// allow-listed fields. Callers report it as a validation failure and never
// execute the write.
var ErrNoUpdatableFields = errors.New("no updatable fields in payload")

// buildUpdate constructs a partial-update expression from an allow-listed
// field delta. The allow-list is iterated rather than the delta, so keys
// outside it can never reach the expression. UpdatedAt is always stamped.
// The expression builder handles name/value placeholder substitution, so
// reserved words in attribute names are safe.
func buildUpdate(allowList []string, delta map[string]interface{}, updatedAt string) (expression.UpdateBuilder, error) {
	update := expression.Set(expression.Name("UpdatedAt"), expression.Value(updatedAt))

	applied := 0
	for _, field := range allowList {
		value, ok := delta[field]
		if !ok {
			continue
		}
		update = update.Set(expression.Name(field), expression.Value(value))
		applied++
	}

	if applied == 0 {
		return expression.UpdateBuilder{}, ErrNoUpdatableFields
	}

	return update, nil
}

// existsCondition is the conditional-existence guard shared by update and
// delete: the full composite key must already be present.
func existsCondition() expression.ConditionBuilder {
	return expression.AttributeExists(expression.Name("PK")).
		And(expression.AttributeExists(expression.Name("SK")))
}
