/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Condition constructors for use with ScanFilterSpec.AddFilterCondition.
// Operands are marshaled to DynamoDB attribute values, so plain Go strings,
// numbers, bools, and byte slices all work:
//
//	cond, _ := storagemodels.Equals("ACTIVE")
//	spec.AddFilterCondition("Status", cond)

// Equals builds an EQ condition on the given operand.
func Equals(value any) (types.Condition, error) {
	return comparison(types.ComparisonOperatorEq, value)
}

// NotEquals builds an NE condition on the given operand.
func NotEquals(value any) (types.Condition, error) {
	return comparison(types.ComparisonOperatorNe, value)
}

// LessThan builds an LT condition on the given operand.
func LessThan(value any) (types.Condition, error) {
	return comparison(types.ComparisonOperatorLt, value)
}

// LessThanOrEqual builds an LE condition on the given operand.
func LessThanOrEqual(value any) (types.Condition, error) {
	return comparison(types.ComparisonOperatorLe, value)
}

// GreaterThan builds a GT condition on the given operand.
func GreaterThan(value any) (types.Condition, error) {
	return comparison(types.ComparisonOperatorGt, value)
}

// GreaterThanOrEqual builds a GE condition on the given operand.
func GreaterThanOrEqual(value any) (types.Condition, error) {
	return comparison(types.ComparisonOperatorGe, value)
}

// BeginsWith builds a BEGINS_WITH condition on the given prefix.
func BeginsWith(prefix string) (types.Condition, error) {
	return comparison(types.ComparisonOperatorBeginsWith, prefix)
}

// Contains builds a CONTAINS condition on the given operand.
func Contains(value any) (types.Condition, error) {
	return comparison(types.ComparisonOperatorContains, value)
}

// Between builds a BETWEEN condition covering [low, high].
func Between(low, high any) (types.Condition, error) {
	lowAV, err := attributevalue.Marshal(low)
	if err != nil {
		return types.Condition{}, fmt.Errorf("failed to marshal low operand: %w", err)
	}
	highAV, err := attributevalue.Marshal(high)
	if err != nil {
		return types.Condition{}, fmt.Errorf("failed to marshal high operand: %w", err)
	}
	return types.Condition{
		ComparisonOperator: types.ComparisonOperatorBetween,
		AttributeValueList: []types.AttributeValue{lowAV, highAV},
	}, nil
}

// In builds an IN condition matching any of the given operands.
func In(values ...any) (types.Condition, error) {
	if len(values) == 0 {
		return types.Condition{}, fmt.Errorf("IN condition requires at least one operand")
	}
	avs := make([]types.AttributeValue, 0, len(values))
	for i, v := range values {
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return types.Condition{}, fmt.Errorf("failed to marshal operand %d: %w", i, err)
		}
		avs = append(avs, av)
	}
	return types.Condition{
		ComparisonOperator: types.ComparisonOperatorIn,
		AttributeValueList: avs,
	}, nil
}

// AttributeExists builds a NOT_NULL condition (the attribute is present).
func AttributeExists() types.Condition {
	return types.Condition{ComparisonOperator: types.ComparisonOperatorNotNull}
}

// AttributeNotExists builds a NULL condition (the attribute is absent).
func AttributeNotExists() types.Condition {
	return types.Condition{ComparisonOperator: types.ComparisonOperatorNull}
}

func comparison(op types.ComparisonOperator, value any) (types.Condition, error) {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return types.Condition{}, fmt.Errorf("failed to marshal operand: %w", err)
	}
	return types.Condition{
		ComparisonOperator: op,
		AttributeValueList: []types.AttributeValue{av},
	}, nil
}
