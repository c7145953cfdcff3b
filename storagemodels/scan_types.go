/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ScanPage is the result of one scan round-trip.
type ScanPage[T any] struct {
	// Items are the matching items of this page, unmarshaled to T.
	Items []T
	// LastEvaluatedKey resumes the scan when fed back through
	// ScanFilterSpec.WithExclusiveStartKey; nil when the scan is complete.
	LastEvaluatedKey map[string]types.AttributeValue
	// ScannedCount is the number of items examined, which can exceed
	// len(Items) when filter conditions discarded some of them.
	ScannedCount int32
}

// ScanResult represents a single item in a streaming scan with metadata
type ScanResult[T any] struct {
	Item  T                               // The unmarshaled item
	Raw   map[string]types.AttributeValue // Raw DynamoDB attributes
	Error error                           // Item-specific error, if any
	Meta  ScanMeta                        // Metadata about this item
}

// ScanMeta contains metadata about a streamed item
type ScanMeta struct {
	Index      int64     // Item index in stream (0-based)
	PageNumber int       // Scan page number (1-based)
	Segment    int32     // Parallel-scan segment that produced the item
	Timestamp  time.Time // When item was retrieved
}

// ScanOptions configures streaming scan behavior
type ScanOptions struct {
	BufferSize      int                  // Channel buffer size (default: 100)
	MaxRetries      int                  // Retry attempts for transient errors (default: 3)
	RetryBackoff    time.Duration        // Backoff between retries (default: 1s)
	PageSize        int32                // Items examined per scan page when the spec has no limit (default: 100)
	ProgressHandler func(ScanProgress)   // Optional progress callback
	ErrorHandler    func(error) bool     // Return true to continue, false to stop
}

// ScanProgress tracks streaming scan progress
type ScanProgress struct {
	ItemsProcessed int64                           // Total items emitted
	ItemsScanned   int64                           // Total items examined, filtered or not
	PagesProcessed int                             // Total pages processed
	LastKey        map[string]types.AttributeValue // Last evaluated key
	Errors         []error                         // Accumulated non-fatal errors
	StartTime      time.Time                       // When scanning started
	CurrentRate    float64                         // Items per second
}

// ScanOption is a functional option for configuring a streaming scan
type ScanOption func(*ScanOptions)

// DefaultScanOptions returns default streaming scan options
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		BufferSize:   100,
		MaxRetries:   3,
		RetryBackoff: time.Second,
		PageSize:     100,
	}
}

// WithBufferSize sets the channel buffer size
func WithBufferSize(size int) ScanOption {
	return func(opts *ScanOptions) {
		opts.BufferSize = size
	}
}

// WithMaxRetries sets the maximum retry attempts
func WithMaxRetries(retries int) ScanOption {
	return func(opts *ScanOptions) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the retry backoff duration
func WithRetryBackoff(backoff time.Duration) ScanOption {
	return func(opts *ScanOptions) {
		opts.RetryBackoff = backoff
	}
}

// WithPageSize sets the fallback page size used when the spec carries no limit
func WithPageSize(size int32) ScanOption {
	return func(opts *ScanOptions) {
		opts.PageSize = size
	}
}

// WithProgressHandler sets a progress callback
func WithProgressHandler(handler func(ScanProgress)) ScanOption {
	return func(opts *ScanOptions) {
		opts.ProgressHandler = handler
	}
}

// WithErrorHandler sets an error handler that can decide whether to continue
func WithErrorHandler(handler func(error) bool) ScanOption {
	return func(opts *ScanOptions) {
		opts.ErrorHandler = handler
	}
}

// RecordPatch describes one record mutation in a batch update. A nil Value
// deletes the record's payload; SyncCount is the revision the caller last
// saw and guards the write optimistically.
type RecordPatch struct {
	// Key names the record within the dataset.
	Key string
	// Value is the new payload, or nil to delete the record.
	Value *string
	// SyncCount must match the stored revision for the patch to apply.
	SyncCount int64
	// DeviceLastModifiedDate optionally carries the client-side mtime.
	DeviceLastModifiedDate *time.Time
}
