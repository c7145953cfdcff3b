/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/scanstore/errors"
	"github.com/suparena/scanstore/registry"
	"github.com/suparena/scanstore/storagemodels"
)

// maxTotalSegments is the DynamoDB ceiling for parallel scan partitions.
const maxTotalSegments = 1000000

// validateSpec checks the cross-field consistency that ScanFilterSpec itself
// deliberately does not enforce. The spec stays permissive so that callers can
// populate fields in any order; everything is settled here, once, when the
// request is about to be built.
func validateSpec[T any](spec *storagemodels.ScanFilterSpec) error {
	if spec == nil {
		return nil
	}

	if limit := spec.Limit(); limit != nil && *limit <= 0 {
		return errors.NewSpecValidationError("limit", "must be positive")
	}

	total := spec.TotalSegments()
	if total != nil {
		if *total < 1 {
			return errors.NewSpecValidationError("totalSegments", "must be at least 1")
		}
		if *total > maxTotalSegments {
			return errors.NewSpecValidationError("totalSegments",
				fmt.Sprintf("must not exceed %d", maxTotalSegments))
		}
	}

	// A bare totalSegments without a segment is fine: ParallelScan derives
	// the segment indexes itself.
	if seg := spec.Segment(); seg != nil {
		if total == nil {
			return errors.NewSpecValidationError("segment", "requires totalSegments")
		}
		if *seg < 0 || *seg >= *total {
			return errors.NewSegmentRangeError(*seg, *total)
		}
	}

	switch op := spec.ConditionalOperator(); op {
	case "", string(types.ConditionalOperatorAnd), string(types.ConditionalOperatorOr):
	default:
		return errors.NewSpecValidationError("conditionalOperator",
			fmt.Sprintf("unknown operator %q", op))
	}
	if spec.ConditionalOperator() != "" && len(spec.ScanFilter()) == 0 {
		return errors.NewSpecValidationError("conditionalOperator",
			"requires at least one scan filter condition")
	}

	if len(spec.ScanFilter()) > 0 && spec.FilterExpression() != nil {
		return errors.NewSpecValidationError("",
			"scanFilter and filterExpression are mutually exclusive")
	}
	if spec.ExpressionAttributeValues() != nil && spec.FilterExpression() == nil {
		return errors.NewSpecValidationError("expressionAttributeValues",
			"requires filterExpression")
	}

	if startKey := spec.ExclusiveStartKey(); startKey != nil {
		if schema, ok := registry.GetKeySchema[T](); ok {
			for _, attr := range schema {
				if _, present := startKey[attr]; !present {
					return errors.NewSpecValidationError("exclusiveStartKey",
						fmt.Sprintf("missing key attribute %q", attr))
				}
			}
		}
	}

	return nil
}

// buildScanInput serializes a validated spec into the wire-level scan request.
func (d *DynamodbScanStore[T]) buildScanInput(spec *storagemodels.ScanFilterSpec) *sdk.ScanInput {
	input := &sdk.ScanInput{
		TableName: &d.tableName,
	}
	if spec == nil {
		return input
	}

	if filter := spec.ScanFilter(); len(filter) > 0 {
		input.ScanFilter = filter
	}
	if op := spec.ConditionalOperator(); op != "" {
		input.ConditionalOperator = types.ConditionalOperator(op)
	}
	input.ExclusiveStartKey = spec.ExclusiveStartKey()
	input.Limit = spec.Limit()
	input.TotalSegments = spec.TotalSegments()
	input.Segment = spec.Segment()
	input.IndexName = spec.IndexName()
	input.ConsistentRead = spec.ConsistentRead()
	input.ProjectionExpression = spec.ProjectionExpression()
	input.FilterExpression = spec.FilterExpression()
	if names := spec.ExpressionAttributeNames(); len(names) > 0 {
		input.ExpressionAttributeNames = names
	}
	if values := spec.ExpressionAttributeValues(); len(values) > 0 {
		input.ExpressionAttributeValues = values
	}
	return input
}

// ScanPage performs one scan round-trip against the table.
//
// The spec's limit bounds the number of items DynamoDB examines, not the
// number returned: a page whose items were all filtered out is empty but
// still advances LastEvaluatedKey.
func (d *DynamodbScanStore[T]) ScanPage(ctx context.Context, spec *storagemodels.ScanFilterSpec) (*storagemodels.ScanPage[T], error) {
	if err := validateSpec[T](spec); err != nil {
		return nil, err
	}

	out, err := d.client.Scan(ctx, d.buildScanInput(spec))
	if err != nil {
		return nil, fmt.Errorf("scan error: %w", err)
	}

	page := &storagemodels.ScanPage[T]{
		ScannedCount: out.ScannedCount,
	}
	if len(out.LastEvaluatedKey) > 0 {
		page.LastEvaluatedKey = out.LastEvaluatedKey
	}
	for _, item := range out.Items {
		var entity T
		if err := attributevalue.UnmarshalMap(item, &entity); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scanned item: %w", err)
		}
		page.Items = append(page.Items, entity)
	}
	return page, nil
}
