/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"sync"
	"time"

	"github.com/suparena/scanstore/errors"
	"github.com/suparena/scanstore/storagemodels"
)

// ParallelScan partitions the table into the spec's totalSegments and runs
// one streaming worker per segment, merging every segment's items into the
// returned channel. Items from different segments interleave in arbitrary
// order; within a segment, scan order is preserved.
//
// The base spec must carry totalSegments but no segment of its own: each
// worker receives a clone with its segment index filled in. A base spec that
// already names a segment describes a single worker's share, which is what
// Stream is for.
func (d *DynamodbScanStore[T]) ParallelScan(ctx context.Context, spec *storagemodels.ScanFilterSpec, opts ...storagemodels.ScanOption) <-chan storagemodels.ScanResult[T] {
	options := storagemodels.DefaultScanOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.ScanResult[T], options.BufferSize)

	if spec != nil {
		spec = spec.Clone()
	}

	go func() {
		defer close(resultCh)

		fail := func(err error) {
			select {
			case <-ctx.Done():
			case resultCh <- storagemodels.ScanResult[T]{
				Error: err,
				Meta:  storagemodels.ScanMeta{Timestamp: time.Now()},
			}:
			}
		}

		if spec == nil || spec.TotalSegments() == nil {
			fail(errors.NewSpecValidationError("totalSegments", "required for parallel scan"))
			return
		}
		if spec.Segment() != nil {
			fail(errors.NewSpecValidationError("segment", "must be unset for parallel scan; use Stream for a single segment"))
			return
		}
		if err := validateSpec[T](spec); err != nil {
			fail(err)
			return
		}

		total := *spec.TotalSegments()

		var wg sync.WaitGroup
		for seg := int32(0); seg < total; seg++ {
			segSpec := spec.Clone().WithSegment(seg)

			wg.Add(1)
			go func() {
				defer wg.Done()
				segCh := make(chan storagemodels.ScanResult[T], options.BufferSize)
				go d.streamWorker(ctx, segSpec, options, segCh)
				for result := range segCh {
					select {
					case <-ctx.Done():
						return
					case resultCh <- result:
					}
				}
			}()
		}
		wg.Wait()
	}()

	return resultCh
}
