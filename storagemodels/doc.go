/*
Package storagemodels defines the data structures used throughout ScanStore.

Key Types:

ScanFilterSpec:
Mutable configuration for a filtered, paginated, optionally parallel scan:

	cond, _ := storagemodels.Equals("ACTIVE")
	spec := new(storagemodels.ScanFilterSpec).
	    WithLimit(25).
	    WithTotalSegments(2).
	    WithSegment(1).
	    WithFilterConditionEntry("Status", cond)

The spec performs no validation of its own; it stores whatever it is given
and the executor in datastore/ddb checks cross-field consistency (segment
range, operator applicability) when it builds the scan request.

ResultRecordSet:
Ordered record sequence produced by a batch record update:

	set := new(storagemodels.ResultRecordSet).WithRecords(rec1, rec2)
	set.Equal(other)  // structural, order-sensitive
	set.Hash()        // consistent with Equal

ScanResult / ScanOptions:
Results and configuration for streaming scans:

	opts := []ScanOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent interface across different scanner
implementations.
*/
package storagemodels
