/*
Package ddb provides the DynamoDB implementation of the Scanner interface.

The DynamodbScanStore supports:
  - Single-page scans with explicit resume cursors
  - Streaming scans with retry logic and progress tracking
  - Parallel scans that fan one worker out per segment
  - Legacy scan-filter conditions and modern filter expressions
  - Batch record updates guarded by optimistic sync counts

Spec Validation:
ScanFilterSpec carriers are permissive by design; this package is where their
cross-field consistency is enforced. Before any request is built, the spec is
checked for a positive limit, a segment index inside [0, totalSegments), a
known conditional operator backed by at least one filter condition, and
mutual exclusion of the legacy and modern filter paths. Violations surface as
semantic errors from the errors package:

	page, err := store.ScanPage(ctx, spec)
	if errors.IsSegmentRange(err) {
	    // worker was assigned a partition that does not exist
	}

Streaming:
The streaming API follows LastEvaluatedKey to exhaustion with configurable
options:

	results := store.Stream(ctx, spec,
	    storagemodels.WithBufferSize(100),
	    storagemodels.WithPageSize(25),
	    storagemodels.WithMaxRetries(3),
	    storagemodels.WithProgressHandler(func(p storagemodels.ScanProgress) {
	        log.Printf("Processed %d items", p.ItemsProcessed)
	    }),
	)

Parallel Scans:
ParallelScan derives one spec clone per segment from a base spec carrying
totalSegments, and merges every segment's stream into a single channel.

For usage examples, see the integration tests and documentation.
*/
package ddb
