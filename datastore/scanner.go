/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/scanstore/storagemodels"
)

// Scanner executes scan specs against a table holding entities of type T.
//
// Implementations own all spec validation: a ScanFilterSpec arrives
// unchecked, and a spec whose fields are inconsistent (segment without
// totalSegments, segment outside the partition space, non-positive limit)
// is rejected here rather than by the spec itself.
type Scanner[T any] interface {
	// ScanPage performs one scan round-trip. The returned page carries the
	// resume cursor; callers continue by setting it as the spec's exclusive
	// start key.
	ScanPage(ctx context.Context, spec *storagemodels.ScanFilterSpec) (*storagemodels.ScanPage[T], error)

	// Stream walks the scan space page by page and emits items on the
	// returned channel until exhaustion, error, or context cancellation.
	Stream(ctx context.Context, spec *storagemodels.ScanFilterSpec, opts ...storagemodels.ScanOption) <-chan storagemodels.ScanResult[T]

	// ParallelScan partitions the scan space into the spec's totalSegments
	// and streams all segments concurrently into one channel.
	ParallelScan(ctx context.Context, spec *storagemodels.ScanFilterSpec, opts ...storagemodels.ScanOption) <-chan storagemodels.ScanResult[T]
}

// RecordUpdater applies batch record patches and reports the resulting
// records, in patch order, as a ResultRecordSet.
type RecordUpdater interface {
	UpdateRecords(ctx context.Context, datasetKey string, patches []storagemodels.RecordPatch) (*storagemodels.ResultRecordSet, error)
}
