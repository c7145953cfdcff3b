/*
Package errors provides semantic error types for the ScanStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrInvalidSpec  = errors.New("invalid scan spec")
	    ErrSegmentRange = errors.New("segment out of range")
	    ErrSyncConflict = errors.New("record sync conflict")
	    ErrThrottled    = errors.New("scan throttled")
	    ErrNoKeySchema  = errors.New("no key schema registered for type")
	)

Usage:

	// Check error type
	page, err := scanner.ScanPage(ctx, spec)
	if err != nil {
	    if errors.IsSegmentRange(err) {
	        // The spec named a segment outside [0, totalSegments)
	        return fmt.Errorf("bad worker assignment: %w", err)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewSpecValidationError("limit", "must be positive")
	err := errors.NewSegmentRangeError(4, 4)
	err := errors.NewSyncConflictError("profile", 12)

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
