/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides mock implementations of the Scanner interface for testing
package mock

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/suparena/scanstore/errors"
	"github.com/suparena/scanstore/storagemodels"
)

// Scanner is a mock implementation of datastore.Scanner[T] for testing.
// It holds an in-memory item list, honors limit / segment / exclusiveStartKey
// the way the real executor does, and performs the same boundary validation,
// so caller tests exercise identical error paths.
type Scanner[T any] struct {
	mu           sync.RWMutex
	items        []T
	scanPageFunc func(ctx context.Context, spec *storagemodels.ScanFilterSpec) (*storagemodels.ScanPage[T], error)
	scanError    error
}

// New creates a new mock Scanner
func New[T any]() *Scanner[T] {
	return &Scanner[T]{}
}

// WithItems seeds the scanner's in-memory table
func (m *Scanner[T]) WithItems(items ...T) *Scanner[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, items...)
	return m
}

// WithScanPageFunc overrides ScanPage entirely for testing
func (m *Scanner[T]) WithScanPageFunc(f func(ctx context.Context, spec *storagemodels.ScanFilterSpec) (*storagemodels.ScanPage[T], error)) *Scanner[T] {
	m.scanPageFunc = f
	return m
}

// WithScanError makes every scan operation return an error
func (m *Scanner[T]) WithScanError(err error) *Scanner[T] {
	m.scanError = err
	return m
}

// cursorAttr carries the resume position in mock cursors.
const cursorAttr = "MockIndex"

func validate(spec *storagemodels.ScanFilterSpec) error {
	if spec == nil {
		return nil
	}
	if limit := spec.Limit(); limit != nil && *limit <= 0 {
		return errors.NewSpecValidationError("limit", "must be positive")
	}
	if seg := spec.Segment(); seg != nil {
		total := spec.TotalSegments()
		if total == nil {
			return errors.NewSpecValidationError("segment", "requires totalSegments")
		}
		if *seg < 0 || *seg >= *total {
			return errors.NewSegmentRangeError(*seg, *total)
		}
	}
	return nil
}

// ScanPage scans the in-memory items, honoring the spec's limit, segment
// partitioning (index modulo totalSegments), and resume cursor.
func (m *Scanner[T]) ScanPage(ctx context.Context, spec *storagemodels.ScanFilterSpec) (*storagemodels.ScanPage[T], error) {
	if m.scanError != nil {
		return nil, m.scanError
	}
	if m.scanPageFunc != nil {
		return m.scanPageFunc(ctx, spec)
	}
	if err := validate(spec); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	start := 0
	var limit int
	segment, total := int32(0), int32(1)
	if spec != nil {
		if key := spec.ExclusiveStartKey(); key != nil {
			if n, ok := key[cursorAttr].(*types.AttributeValueMemberN); ok {
				idx, err := strconv.Atoi(n.Value)
				if err != nil {
					return nil, errors.NewSpecValidationError("exclusiveStartKey", "malformed mock cursor")
				}
				start = idx + 1
			}
		}
		if l := spec.Limit(); l != nil {
			limit = int(*l)
		}
		if s := spec.Segment(); s != nil {
			segment = *s
			total = *spec.TotalSegments()
		}
	}

	page := &storagemodels.ScanPage[T]{}
	lastIndex := -1
	for i := start; i < len(m.items); i++ {
		if limit > 0 && int(page.ScannedCount) >= limit {
			break
		}
		if int32(i)%total != segment {
			continue
		}
		page.ScannedCount++
		page.Items = append(page.Items, m.items[i])
		lastIndex = i
	}
	if lastIndex >= 0 && lastIndex < len(m.items)-1 && limit > 0 {
		page.LastEvaluatedKey = map[string]types.AttributeValue{
			cursorAttr: &types.AttributeValueMemberN{Value: strconv.Itoa(lastIndex)},
		}
	}
	return page, nil
}

// Stream emits the spec's share of items on a channel
func (m *Scanner[T]) Stream(ctx context.Context, spec *storagemodels.ScanFilterSpec, opts ...storagemodels.ScanOption) <-chan storagemodels.ScanResult[T] {
	options := storagemodels.DefaultScanOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ch := make(chan storagemodels.ScanResult[T], options.BufferSize)
	go func() {
		defer close(ch)

		if m.scanError != nil {
			ch <- storagemodels.ScanResult[T]{Error: m.scanError, Meta: storagemodels.ScanMeta{Timestamp: time.Now()}}
			return
		}
		if err := validate(spec); err != nil {
			ch <- storagemodels.ScanResult[T]{Error: err, Meta: storagemodels.ScanMeta{Timestamp: time.Now()}}
			return
		}

		segment, total := int32(0), int32(1)
		if spec != nil && spec.Segment() != nil {
			segment = *spec.Segment()
			total = *spec.TotalSegments()
		}

		m.mu.RLock()
		items := make([]T, len(m.items))
		copy(items, m.items)
		m.mu.RUnlock()

		var index int64
		for i, item := range items {
			if int32(i)%total != segment {
				continue
			}
			result := storagemodels.ScanResult[T]{
				Item: item,
				Meta: storagemodels.ScanMeta{
					Index:      index,
					PageNumber: 1,
					Segment:    segment,
					Timestamp:  time.Now(),
				},
			}
			index++
			select {
			case <-ctx.Done():
				return
			case ch <- result:
			}
		}
	}()
	return ch
}

// ParallelScan fans the segments out exactly like the real executor
func (m *Scanner[T]) ParallelScan(ctx context.Context, spec *storagemodels.ScanFilterSpec, opts ...storagemodels.ScanOption) <-chan storagemodels.ScanResult[T] {
	options := storagemodels.DefaultScanOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ch := make(chan storagemodels.ScanResult[T], options.BufferSize)
	go func() {
		defer close(ch)

		if spec == nil || spec.TotalSegments() == nil {
			ch <- storagemodels.ScanResult[T]{
				Error: errors.NewSpecValidationError("totalSegments", "required for parallel scan"),
				Meta:  storagemodels.ScanMeta{Timestamp: time.Now()},
			}
			return
		}

		total := *spec.TotalSegments()
		var wg sync.WaitGroup
		for seg := int32(0); seg < total; seg++ {
			segCh := m.Stream(ctx, spec.Clone().WithSegment(seg), opts...)
			wg.Add(1)
			go func() {
				defer wg.Done()
				for result := range segCh {
					select {
					case <-ctx.Done():
						return
					case ch <- result:
					}
				}
			}()
		}
		wg.Wait()
	}()
	return ch
}

// RecordUpdater is an in-memory mock of the batch record updater
type RecordUpdater struct {
	mu       sync.Mutex
	writerID string
	records  map[string]map[string]storagemodels.Record // dataset -> key -> record
}

// NewRecordUpdater creates a mock RecordUpdater
func NewRecordUpdater(writerID string) *RecordUpdater {
	return &RecordUpdater{
		writerID: writerID,
		records:  make(map[string]map[string]storagemodels.Record),
	}
}

// UpdateRecords applies patches against the in-memory dataset with the same
// sync-count guard as the DynamoDB implementation
func (m *RecordUpdater) UpdateRecords(ctx context.Context, datasetKey string, patches []storagemodels.RecordPatch) (*storagemodels.ResultRecordSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dataset := m.records[datasetKey]
	if dataset == nil {
		dataset = make(map[string]storagemodels.Record)
		m.records[datasetKey] = dataset
	}

	set := &storagemodels.ResultRecordSet{}
	for _, patch := range patches {
		current, exists := dataset[patch.Key]
		switch {
		case !exists && patch.SyncCount != 0:
			return nil, errors.NewSyncConflictError(patch.Key, patch.SyncCount)
		case exists && (current.SyncCount == nil || *current.SyncCount != patch.SyncCount):
			return nil, errors.NewSyncConflictError(patch.Key, patch.SyncCount)
		}

		key := patch.Key
		next := patch.SyncCount + 1
		now := strfmt.DateTime(time.Now().UTC())
		rec := storagemodels.Record{
			Key:              &key,
			Value:            patch.Value,
			SyncCount:        &next,
			LastModifiedDate: &now,
			LastModifiedBy:   &m.writerID,
		}
		if patch.DeviceLastModifiedDate != nil {
			dev := strfmt.DateTime(*patch.DeviceLastModifiedDate)
			rec.DeviceLastModifiedDate = &dev
		}
		dataset[key] = rec
		set.WithRecords(rec)
	}
	return set, nil
}
