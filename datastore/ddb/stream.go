/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/scanstore/registry"
	"github.com/suparena/scanstore/storagemodels"
)

// Stream walks the scan space described by spec and emits every item on the
// returned channel, following LastEvaluatedKey until exhaustion. The spec is
// cloned up front, so callers may reuse or mutate it after Stream returns.
func (d *DynamodbScanStore[T]) Stream(ctx context.Context, spec *storagemodels.ScanFilterSpec, opts ...storagemodels.ScanOption) <-chan storagemodels.ScanResult[T] {
	// Apply options
	options := storagemodels.DefaultScanOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.ScanResult[T], options.BufferSize)

	if spec != nil {
		spec = spec.Clone()
	}

	go d.streamWorker(ctx, spec, options, resultCh)

	return resultCh
}

// streamWorker handles the actual paging logic
func (d *DynamodbScanStore[T]) streamWorker(
	ctx context.Context,
	spec *storagemodels.ScanFilterSpec,
	options storagemodels.ScanOptions,
	resultCh chan<- storagemodels.ScanResult[T],
) {
	defer close(resultCh)

	if err := validateSpec[T](spec); err != nil {
		resultCh <- storagemodels.ScanResult[T]{
			Error: err,
			Meta:  storagemodels.ScanMeta{Timestamp: time.Now()},
		}
		return
	}

	var segment int32
	if spec != nil && spec.Segment() != nil {
		segment = *spec.Segment()
	}

	// Progress tracking
	var itemIndex int64
	var itemsScanned int64
	var pageNumber int
	startTime := time.Now()
	var accumulated []error
	var mu sync.Mutex

	reportProgress := func(lastKey map[string]types.AttributeValue) {
		if options.ProgressHandler != nil {
			progress := storagemodels.ScanProgress{
				ItemsProcessed: atomic.LoadInt64(&itemIndex),
				ItemsScanned:   atomic.LoadInt64(&itemsScanned),
				PagesProcessed: pageNumber,
				LastKey:        lastKey,
				Errors:         accumulated,
				StartTime:      startTime,
			}

			elapsed := time.Since(startTime).Seconds()
			if elapsed > 0 {
				progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
			}

			options.ProgressHandler(progress)
		}
	}

	input := d.buildScanInput(spec)
	if input.Limit == nil {
		input.Limit = aws.Int32(options.PageSize)
	}

	for {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return
		default:
		}

		out, err := d.scanWithRetry(ctx, input, options)
		if err != nil {
			if options.ErrorHandler != nil && options.ErrorHandler(err) {
				// Error handler says to keep going
				mu.Lock()
				accumulated = append(accumulated, err)
				mu.Unlock()
				continue
			}
			resultCh <- storagemodels.ScanResult[T]{
				Error: fmt.Errorf("scan failed: %w", err),
				Meta: storagemodels.ScanMeta{
					Index:      atomic.LoadInt64(&itemIndex),
					PageNumber: pageNumber,
					Segment:    segment,
					Timestamp:  time.Now(),
				},
			}
			return
		}

		pageNumber++
		atomic.AddInt64(&itemsScanned, int64(out.ScannedCount))

		for _, item := range out.Items {
			select {
			case <-ctx.Done():
				return
			default:
			}

			result := d.processItem(item, atomic.LoadInt64(&itemIndex), pageNumber, segment)
			atomic.AddInt64(&itemIndex, 1)

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}

			if result.Error != nil {
				mu.Lock()
				accumulated = append(accumulated, result.Error)
				mu.Unlock()
			}
		}

		reportProgress(out.LastEvaluatedKey)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	// Final progress report
	reportProgress(nil)
}

// scanWithRetry executes one scan page with configurable retry logic
func (d *DynamodbScanStore[T]) scanWithRetry(
	ctx context.Context,
	input *dynamodb.ScanInput,
	options storagemodels.ScanOptions,
) (*dynamodb.ScanOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := d.client.Scan(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		// Don't sleep after last attempt
		if attempt < options.MaxRetries {
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("scan failed after %d retries: %w", options.MaxRetries, lastErr)
}

// processItem converts a raw item into a typed scan result
func (d *DynamodbScanStore[T]) processItem(
	item map[string]types.AttributeValue,
	index int64,
	pageNumber int,
	segment int32,
) storagemodels.ScanResult[T] {
	meta := storagemodels.ScanMeta{
		Index:      index,
		PageNumber: pageNumber,
		Segment:    segment,
		Timestamp:  time.Now(),
	}

	rawCopy := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		rawCopy[k] = v
	}

	// Extract the entity type tag, if the table carries one.
	var entityType string
	if attr, ok := item["EntityType"]; ok {
		if err := attributevalue.Unmarshal(attr, &entityType); err != nil {
			return storagemodels.ScanResult[T]{
				Error: fmt.Errorf("failed to unmarshal EntityType: %w", err),
				Raw:   rawCopy,
				Meta:  meta,
			}
		}
		delete(item, "EntityType")
	}

	// Try to unmarshal as type T first
	var result T
	if err := attributevalue.UnmarshalMap(item, &result); err == nil {
		return storagemodels.ScanResult[T]{
			Item: result,
			Raw:  rawCopy,
			Meta: meta,
		}
	}

	// If direct unmarshal fails and we have a type tag, try the registry
	if entityType != "" {
		unmarshalFn, err := registry.GetUnmarshalFunc(entityType)
		if err == nil {
			obj, err := unmarshalFn(item)
			if err == nil {
				if typedObj, ok := obj.(T); ok {
					return storagemodels.ScanResult[T]{
						Item: typedObj,
						Raw:  rawCopy,
						Meta: meta,
					}
				}
			}
		}
	}

	return storagemodels.ScanResult[T]{
		Error: fmt.Errorf("failed to unmarshal item to type %T", result),
		Raw:   rawCopy,
		Meta:  meta,
	}
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	switch err.(type) {
	case *types.ProvisionedThroughputExceededException:
		return true
	case *types.RequestLimitExceeded:
		return true
	case *types.InternalServerError:
		return true
	}

	if awsErr, ok := err.(interface{ IsRetryable() bool }); ok {
		return awsErr.IsRetryable()
	}

	return false
}
