/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	scanerrors "github.com/suparena/scanstore/errors"
	"github.com/suparena/scanstore/storagemodels"
)

// RecordStore applies batch record patches against a single-table layout
// where each record lives at PK "DATASET#<dataset>" / SK "RECORD#<key>".
// Every write is guarded by the record's sync count, so two writers racing
// on the same record cannot silently overwrite each other.
type RecordStore struct {
	client    *sdk.Client
	tableName string
	writerID  string
}

// NewRecordStore constructs a RecordStore. writerID identifies this writer
// in each record's LastModifiedBy attribute.
func NewRecordStore(client *sdk.Client, tableName, writerID string) *RecordStore {
	return &RecordStore{
		client:    client,
		tableName: tableName,
		writerID:  writerID,
	}
}

// recordItem is the stored shape of one record.
type recordItem struct {
	PK                     string  `dynamodbav:"PK"`
	SK                     string  `dynamodbav:"SK"`
	Value                  *string `dynamodbav:"Value,omitempty"`
	SyncCount              int64   `dynamodbav:"SyncCount"`
	LastModifiedDate       string  `dynamodbav:"LastModifiedDate"`
	LastModifiedBy         string  `dynamodbav:"LastModifiedBy"`
	DeviceLastModifiedDate string  `dynamodbav:"DeviceLastModifiedDate,omitempty"`
}

// UpdateRecords applies the patches in order and returns the resulting
// records as a ResultRecordSet preserving patch order. The whole batch fails
// on the first sync conflict; earlier patches in the batch stay applied, so
// callers recover by re-reading and re-submitting the remainder.
func (r *RecordStore) UpdateRecords(ctx context.Context, datasetKey string, patches []storagemodels.RecordPatch) (*storagemodels.ResultRecordSet, error) {
	set := &storagemodels.ResultRecordSet{}

	for _, patch := range patches {
		rec, err := r.applyPatch(ctx, datasetKey, patch)
		if err != nil {
			return nil, err
		}
		set.WithRecords(rec)
	}

	return set, nil
}

func (r *RecordStore) applyPatch(ctx context.Context, datasetKey string, patch storagemodels.RecordPatch) (storagemodels.Record, error) {
	now := time.Now().UTC()

	exprNames := map[string]string{
		"#val": "Value",
	}
	exprValues := map[string]types.AttributeValue{
		":next": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", patch.SyncCount+1)},
		":now":  &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
		":by":   &types.AttributeValueMemberS{Value: r.writerID},
	}

	setClauses := []string{
		"SyncCount = :next",
		"LastModifiedDate = :now",
		"LastModifiedBy = :by",
	}
	var removeClause string

	if patch.Value != nil {
		setClauses = append(setClauses, "#val = :v")
		exprValues[":v"] = &types.AttributeValueMemberS{Value: *patch.Value}
	} else {
		removeClause = " REMOVE #val"
	}

	if patch.DeviceLastModifiedDate != nil {
		setClauses = append(setClauses, "DeviceLastModifiedDate = :dev")
		exprValues[":dev"] = &types.AttributeValueMemberS{
			Value: patch.DeviceLastModifiedDate.UTC().Format(time.RFC3339Nano),
		}
	}

	// Sync count 0 claims a fresh record; anything else must match the
	// stored revision exactly.
	var condition string
	if patch.SyncCount == 0 {
		condition = "attribute_not_exists(SyncCount)"
	} else {
		condition = "SyncCount = :expected"
		exprValues[":expected"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", patch.SyncCount)}
	}

	updateExpr := "SET " + strings.Join(setClauses, ", ") + removeClause

	out, err := r.client.UpdateItem(ctx, &sdk.UpdateItemInput{
		TableName: &r.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: "DATASET#" + datasetKey},
			"SK": &types.AttributeValueMemberS{Value: "RECORD#" + patch.Key},
		},
		UpdateExpression:          &updateExpr,
		ConditionExpression:       &condition,
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return storagemodels.Record{}, scanerrors.NewSyncConflictError(patch.Key, patch.SyncCount)
		}
		return storagemodels.Record{}, fmt.Errorf("failed to update record %q: %w", patch.Key, err)
	}

	var item recordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return storagemodels.Record{}, fmt.Errorf("failed to unmarshal updated record %q: %w", patch.Key, err)
	}

	return r.toRecord(patch.Key, item)
}

func (r *RecordStore) toRecord(key string, item recordItem) (storagemodels.Record, error) {
	rec := storagemodels.Record{
		Key:       &key,
		Value:     item.Value,
		SyncCount: &item.SyncCount,
	}
	if item.LastModifiedBy != "" {
		rec.LastModifiedBy = &item.LastModifiedBy
	}
	if item.LastModifiedDate != "" {
		t, err := time.Parse(time.RFC3339Nano, item.LastModifiedDate)
		if err != nil {
			return storagemodels.Record{}, fmt.Errorf("record %q has malformed LastModifiedDate: %w", key, err)
		}
		dt := strfmt.DateTime(t)
		rec.LastModifiedDate = &dt
	}
	if item.DeviceLastModifiedDate != "" {
		t, err := time.Parse(time.RFC3339Nano, item.DeviceLastModifiedDate)
		if err != nil {
			return storagemodels.Record{}, fmt.Errorf("record %q has malformed DeviceLastModifiedDate: %w", key, err)
		}
		dt := strfmt.DateTime(t)
		rec.DeviceLastModifiedDate = &dt
	}
	return rec, nil
}
