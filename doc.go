/*
Package scanstore provides typed parallel-scan configuration and record-sync
result handling for DynamoDB-backed Go applications.

The library splits the scan workflow into permissive carriers and a strict
executor:
  - Carriers: ScanFilterSpec and ResultRecordSet (storagemodels) store
    whatever they are given and never fail
  - Executor: the DynamoDB scanner (datastore/ddb) validates a spec once,
    at the boundary, and turns it into wire requests

Key Features:
  - Fluent scan specs with legacy conditions and modern filter expressions
  - Parallel scans with one worker per segment and merged streaming output
  - Batch record updates with optimistic sync-count guards
  - Semantic error types for boundary validation failures
  - YAML scan profiles for operational tooling
  - Thread-safe scanner management
  - Comprehensive mock implementations for testing

Basic Usage:

	// Create a scanner registry
	mts := scanstore.NewMultiTypeScanners()

	// Register a typed scanner
	deviceScanner, _ := ddb.NewDynamodbScanStore[Device](...)
	scanstore.RegisterScanner(mts, "devices", deviceScanner)

	// Build a spec and run a parallel scan
	cond, _ := storagemodels.Equals("ACTIVE")
	spec := new(storagemodels.ScanFilterSpec).
	    WithTotalSegments(4).
	    WithFilterConditionEntry("Status", cond)

	scanner, _ := scanstore.GetScanner[Device](mts, "devices")
	for result := range scanner.ParallelScan(ctx, spec) {
	    ...
	}

For more information, see the documentation at https://github.com/suparena/scanstore
*/
package scanstore
