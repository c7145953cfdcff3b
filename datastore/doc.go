/*
Package datastore defines the core interfaces for ScanStore's execution layer.

The main interface is Scanner[T], which executes scan specs against a table
of entities of type T:

	type Scanner[T any] interface {
	    ScanPage(ctx context.Context, spec *storagemodels.ScanFilterSpec) (*storagemodels.ScanPage[T], error)
	    Stream(ctx context.Context, spec *storagemodels.ScanFilterSpec, opts ...storagemodels.ScanOption) <-chan storagemodels.ScanResult[T]
	    ParallelScan(ctx context.Context, spec *storagemodels.ScanFilterSpec, opts ...storagemodels.ScanOption) <-chan storagemodels.ScanResult[T]
	}

RecordUpdater applies batch record patches and collects the results into a
ResultRecordSet.

Implementations:
  - ddb: DynamoDB implementation; also hosts the spec validator
  - mock: In-memory mock implementation for testing

The package uses Go generics to ensure type safety at compile time while
maintaining flexibility for different scanner backends.
*/
package datastore
