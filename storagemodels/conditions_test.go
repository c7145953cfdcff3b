/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonConditions(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (types.Condition, error)
		operator types.ComparisonOperator
		operands int
	}{
		{"Equals", func() (types.Condition, error) { return Equals("ACTIVE") }, types.ComparisonOperatorEq, 1},
		{"NotEquals", func() (types.Condition, error) { return NotEquals(42) }, types.ComparisonOperatorNe, 1},
		{"LessThan", func() (types.Condition, error) { return LessThan(10) }, types.ComparisonOperatorLt, 1},
		{"LessThanOrEqual", func() (types.Condition, error) { return LessThanOrEqual(10) }, types.ComparisonOperatorLe, 1},
		{"GreaterThan", func() (types.Condition, error) { return GreaterThan(10) }, types.ComparisonOperatorGt, 1},
		{"GreaterThanOrEqual", func() (types.Condition, error) { return GreaterThanOrEqual(10) }, types.ComparisonOperatorGe, 1},
		{"BeginsWith", func() (types.Condition, error) { return BeginsWith("RECORD#") }, types.ComparisonOperatorBeginsWith, 1},
		{"Contains", func() (types.Condition, error) { return Contains("sync") }, types.ComparisonOperatorContains, 1},
		{"Between", func() (types.Condition, error) { return Between(1, 9) }, types.ComparisonOperatorBetween, 2},
		{"In", func() (types.Condition, error) { return In("APNS", "GCM") }, types.ComparisonOperatorIn, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.operator, cond.ComparisonOperator)
			assert.Len(t, cond.AttributeValueList, tt.operands)
		})
	}
}

func TestEqualsMarshalsStringOperand(t *testing.T) {
	cond, err := Equals("ACTIVE")
	require.NoError(t, err)

	member, ok := cond.AttributeValueList[0].(*types.AttributeValueMemberS)
	require.True(t, ok, "string operand should marshal to an S member")
	assert.Equal(t, "ACTIVE", member.Value)
}

func TestEqualsMarshalsNumericOperand(t *testing.T) {
	cond, err := Equals(25)
	require.NoError(t, err)

	member, ok := cond.AttributeValueList[0].(*types.AttributeValueMemberN)
	require.True(t, ok, "numeric operand should marshal to an N member")
	assert.Equal(t, "25", member.Value)
}

func TestExistenceConditionsHaveNoOperands(t *testing.T) {
	assert.Equal(t, types.ComparisonOperatorNotNull, AttributeExists().ComparisonOperator)
	assert.Empty(t, AttributeExists().AttributeValueList)

	assert.Equal(t, types.ComparisonOperatorNull, AttributeNotExists().ComparisonOperator)
	assert.Empty(t, AttributeNotExists().AttributeValueList)
}

func TestInRequiresOperands(t *testing.T) {
	_, err := In()
	assert.Error(t, err)
}
