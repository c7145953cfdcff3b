/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamodbScanStore implements datastore.Scanner[T] by executing scan specs
// against an AWS DynamoDB table.
type DynamodbScanStore[T any] struct {
	client    *sdk.Client
	tableName string
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	// Load the custom AWS configuration using static credentials
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbScanStore constructs a new DynamodbScanStore for type T.
func NewDynamodbScanStore[T any](awsAccessKey, awsSecretKey, awsRegion, awsDDBTableName string) (*DynamodbScanStore[T], error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &DynamodbScanStore[T]{
		client:    client,
		tableName: awsDDBTableName,
	}, nil
}

// NewDynamodbScanStoreFromClient wraps an existing client, letting callers
// share one client across stores or inject a local endpoint.
func NewDynamodbScanStoreFromClient[T any](client *sdk.Client, tableName string) *DynamodbScanStore[T] {
	return &DynamodbScanStore[T]{
		client:    client,
		tableName: tableName,
	}
}

// TableName returns the table this store scans.
func (d *DynamodbScanStore[T]) TableName() string {
	return d.tableName
}
