/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ScanFilterSpec describes how a full-table or parallel scan should be
// filtered, paginated, and partitioned. It is a plain configuration carrier:
// every accessor stores whatever it is given, and cross-field consistency
// (segment range, key-schema correctness, operator applicability) is checked
// only by the executor that turns the spec into a scan request.
//
// A zero-value ScanFilterSpec means "scan everything". All With* methods
// return the receiver so specs can be built fluently:
//
//	spec := new(storagemodels.ScanFilterSpec).
//	    WithLimit(25).
//	    WithTotalSegments(4).
//	    WithSegment(0)
//
// Instances are single-owner: they carry no internal locking and must not be
// mutated concurrently. Hand a Clone to each goroutine instead.
type ScanFilterSpec struct {
	// scanFilter maps attribute names to legacy filter conditions.
	scanFilter map[string]types.Condition

	// exclusiveStartKey is the resume cursor from a previous scan page.
	exclusiveStartKey map[string]types.AttributeValue

	// limit bounds the number of items examined per page, not the number
	// of items returned.
	limit *int32

	// totalSegments is the parallel-scan partition count.
	totalSegments *int32

	// segment is this worker's zero-based partition index.
	segment *int32

	// conditionalOperator combines the scanFilter conditions ("AND"/"OR").
	conditionalOperator string

	indexName            *string
	consistentRead       *bool
	projectionExpression *string

	// Modern filter path, mutually exclusive with scanFilter at the
	// executor boundary.
	filterExpression          *string
	expressionAttributeNames  map[string]string
	expressionAttributeValues map[string]types.AttributeValue
}

// ScanFilter returns the legacy filter map, or nil when no condition has
// been added and the map has not been set.
func (s *ScanFilterSpec) ScanFilter() map[string]types.Condition {
	return s.scanFilter
}

// SetScanFilter replaces the filter map wholesale. Passing nil clears every
// previously added condition; a later ScanFilter call returns nil, not an
// empty map.
func (s *ScanFilterSpec) SetScanFilter(filter map[string]types.Condition) {
	s.scanFilter = filter
}

// WithScanFilter replaces the filter map and returns the receiver.
func (s *ScanFilterSpec) WithScanFilter(filter map[string]types.Condition) *ScanFilterSpec {
	s.SetScanFilter(filter)
	return s
}

// AddFilterCondition inserts a condition for the named attribute, allocating
// the backing map on first use. Adding a condition for a name that already
// has one overwrites it.
func (s *ScanFilterSpec) AddFilterCondition(attributeName string, condition types.Condition) {
	if s.scanFilter == nil {
		s.scanFilter = make(map[string]types.Condition)
	}
	s.scanFilter[attributeName] = condition
}

// WithFilterConditionEntry is AddFilterCondition returning the receiver.
func (s *ScanFilterSpec) WithFilterConditionEntry(attributeName string, condition types.Condition) *ScanFilterSpec {
	s.AddFilterCondition(attributeName, condition)
	return s
}

// ExclusiveStartKey returns the resume cursor, or nil when unset.
func (s *ScanFilterSpec) ExclusiveStartKey() map[string]types.AttributeValue {
	return s.exclusiveStartKey
}

// SetExclusiveStartKey sets the resume cursor. The caller is responsible for
// supplying a key that matches the table's key schema; no shape checking
// happens here.
func (s *ScanFilterSpec) SetExclusiveStartKey(key map[string]types.AttributeValue) {
	s.exclusiveStartKey = key
}

// WithExclusiveStartKey sets the resume cursor and returns the receiver.
func (s *ScanFilterSpec) WithExclusiveStartKey(key map[string]types.AttributeValue) *ScanFilterSpec {
	s.SetExclusiveStartKey(key)
	return s
}

// Limit returns the per-page scan bound, or nil when unset.
//
// The limit caps the number of items DynamoDB examines in one request, not
// the number of matching items returned: a page can come back empty with a
// non-empty LastEvaluatedKey when every examined item was filtered out.
func (s *ScanFilterSpec) Limit() *int32 {
	return s.limit
}

// SetLimit sets the per-page scan bound. Values are stored as given; range
// checking happens at the executor.
func (s *ScanFilterSpec) SetLimit(limit int32) {
	s.limit = &limit
}

// ClearLimit resets the limit to unset.
func (s *ScanFilterSpec) ClearLimit() {
	s.limit = nil
}

// WithLimit sets the per-page scan bound and returns the receiver.
func (s *ScanFilterSpec) WithLimit(limit int32) *ScanFilterSpec {
	s.SetLimit(limit)
	return s
}

// TotalSegments returns the parallel-scan partition count, or nil when unset.
func (s *ScanFilterSpec) TotalSegments() *int32 {
	return s.totalSegments
}

// SetTotalSegments sets the parallel-scan partition count.
func (s *ScanFilterSpec) SetTotalSegments(totalSegments int32) {
	s.totalSegments = &totalSegments
}

// WithTotalSegments sets the partition count and returns the receiver.
func (s *ScanFilterSpec) WithTotalSegments(totalSegments int32) *ScanFilterSpec {
	s.SetTotalSegments(totalSegments)
	return s
}

// Segment returns this worker's partition index, or nil when unset.
func (s *ScanFilterSpec) Segment() *int32 {
	return s.segment
}

// SetSegment sets this worker's partition index. The spec does not verify
// that a totalSegments value is present or that the index falls inside it;
// that pairing is validated when the scan request is built.
func (s *ScanFilterSpec) SetSegment(segment int32) {
	s.segment = &segment
}

// WithSegment sets the partition index and returns the receiver.
func (s *ScanFilterSpec) WithSegment(segment int32) *ScanFilterSpec {
	s.SetSegment(segment)
	return s
}

// ConditionalOperator returns the logical operator applied across the filter
// conditions, in its plain string form, or "" when unset.
func (s *ScanFilterSpec) ConditionalOperator() string {
	return s.conditionalOperator
}

// SetConditionalOperator sets the logical operator from its string form.
func (s *ScanFilterSpec) SetConditionalOperator(operator string) {
	s.conditionalOperator = operator
}

// WithConditionalOperator sets the logical operator and returns the receiver.
func (s *ScanFilterSpec) WithConditionalOperator(operator string) *ScanFilterSpec {
	s.SetConditionalOperator(operator)
	return s
}

// SetConditionalOperatorValue sets the logical operator from the typed SDK
// enumerator. It converges on the same stored string form as
// SetConditionalOperator, so the two setters are interchangeable.
func (s *ScanFilterSpec) SetConditionalOperatorValue(operator types.ConditionalOperator) {
	s.SetConditionalOperator(string(operator))
}

// WithConditionalOperatorValue sets the typed operator and returns the receiver.
func (s *ScanFilterSpec) WithConditionalOperatorValue(operator types.ConditionalOperator) *ScanFilterSpec {
	s.SetConditionalOperatorValue(operator)
	return s
}

// IndexName returns the secondary index to scan, or nil for the base table.
func (s *ScanFilterSpec) IndexName() *string {
	return s.indexName
}

// SetIndexName directs the scan at a secondary index.
func (s *ScanFilterSpec) SetIndexName(indexName string) {
	s.indexName = &indexName
}

// WithIndexName directs the scan at a secondary index and returns the receiver.
func (s *ScanFilterSpec) WithIndexName(indexName string) *ScanFilterSpec {
	s.SetIndexName(indexName)
	return s
}

// ConsistentRead returns the consistency setting, or nil for the SDK default.
func (s *ScanFilterSpec) ConsistentRead() *bool {
	return s.consistentRead
}

// SetConsistentRead requests strongly consistent reads for the scan.
func (s *ScanFilterSpec) SetConsistentRead(consistentRead bool) {
	s.consistentRead = &consistentRead
}

// WithConsistentRead sets the consistency flag and returns the receiver.
func (s *ScanFilterSpec) WithConsistentRead(consistentRead bool) *ScanFilterSpec {
	s.SetConsistentRead(consistentRead)
	return s
}

// ProjectionExpression returns the projection expression, or nil when unset.
func (s *ScanFilterSpec) ProjectionExpression() *string {
	return s.projectionExpression
}

// SetProjectionExpression limits the attributes returned for each item.
func (s *ScanFilterSpec) SetProjectionExpression(expr string) {
	s.projectionExpression = &expr
}

// WithProjectionExpression sets the projection and returns the receiver.
func (s *ScanFilterSpec) WithProjectionExpression(expr string) *ScanFilterSpec {
	s.SetProjectionExpression(expr)
	return s
}

// FilterExpression returns the modern filter expression, or nil when unset.
func (s *ScanFilterSpec) FilterExpression() *string {
	return s.filterExpression
}

// SetFilterExpression sets a filter expression string. Specs carrying both a
// filter expression and legacy scanFilter conditions are rejected by the
// executor, not here.
func (s *ScanFilterSpec) SetFilterExpression(expr string) {
	s.filterExpression = &expr
}

// WithFilterExpression sets the filter expression and returns the receiver.
func (s *ScanFilterSpec) WithFilterExpression(expr string) *ScanFilterSpec {
	s.SetFilterExpression(expr)
	return s
}

// ExpressionAttributeNames returns the name placeholder map, or nil when unset.
func (s *ScanFilterSpec) ExpressionAttributeNames() map[string]string {
	return s.expressionAttributeNames
}

// SetExpressionAttributeNames replaces the name placeholder map; nil clears it.
func (s *ScanFilterSpec) SetExpressionAttributeNames(names map[string]string) {
	s.expressionAttributeNames = names
}

// WithExpressionAttributeName adds one name placeholder, allocating the map
// on first use, and returns the receiver.
func (s *ScanFilterSpec) WithExpressionAttributeName(placeholder, attributeName string) *ScanFilterSpec {
	if s.expressionAttributeNames == nil {
		s.expressionAttributeNames = make(map[string]string)
	}
	s.expressionAttributeNames[placeholder] = attributeName
	return s
}

// ExpressionAttributeValues returns the value placeholder map, or nil when unset.
func (s *ScanFilterSpec) ExpressionAttributeValues() map[string]types.AttributeValue {
	return s.expressionAttributeValues
}

// SetExpressionAttributeValues replaces the value placeholder map; nil clears it.
func (s *ScanFilterSpec) SetExpressionAttributeValues(values map[string]types.AttributeValue) {
	s.expressionAttributeValues = values
}

// WithExpressionAttributeValue adds one value placeholder, allocating the map
// on first use, and returns the receiver.
func (s *ScanFilterSpec) WithExpressionAttributeValue(placeholder string, value types.AttributeValue) *ScanFilterSpec {
	if s.expressionAttributeValues == nil {
		s.expressionAttributeValues = make(map[string]types.AttributeValue)
	}
	s.expressionAttributeValues[placeholder] = value
	return s
}

// Clone returns a deep copy of the spec. The parallel-scan executor derives
// one clone per segment so that workers never share a mutable spec.
func (s *ScanFilterSpec) Clone() *ScanFilterSpec {
	c := &ScanFilterSpec{
		conditionalOperator:  s.conditionalOperator,
		limit:                copyInt32(s.limit),
		totalSegments:        copyInt32(s.totalSegments),
		segment:              copyInt32(s.segment),
		indexName:            copyString(s.indexName),
		consistentRead:       copyBool(s.consistentRead),
		projectionExpression: copyString(s.projectionExpression),
		filterExpression:     copyString(s.filterExpression),
	}
	if s.scanFilter != nil {
		c.scanFilter = make(map[string]types.Condition, len(s.scanFilter))
		for k, v := range s.scanFilter {
			c.scanFilter[k] = v
		}
	}
	if s.exclusiveStartKey != nil {
		c.exclusiveStartKey = make(map[string]types.AttributeValue, len(s.exclusiveStartKey))
		for k, v := range s.exclusiveStartKey {
			c.exclusiveStartKey[k] = v
		}
	}
	if s.expressionAttributeNames != nil {
		c.expressionAttributeNames = make(map[string]string, len(s.expressionAttributeNames))
		for k, v := range s.expressionAttributeNames {
			c.expressionAttributeNames[k] = v
		}
	}
	if s.expressionAttributeValues != nil {
		c.expressionAttributeValues = make(map[string]types.AttributeValue, len(s.expressionAttributeValues))
		for k, v := range s.expressionAttributeValues {
			c.expressionAttributeValues[k] = v
		}
	}
	return c
}

func copyInt32(v *int32) *int32 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
