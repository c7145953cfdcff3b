/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidSpec is returned when a scan spec fails boundary validation
	ErrInvalidSpec = errors.New("invalid scan spec")

	// ErrSegmentRange is returned when a segment index falls outside [0, totalSegments)
	ErrSegmentRange = errors.New("segment out of range")

	// ErrSyncConflict is returned when a record patch loses an optimistic sync-count check
	ErrSyncConflict = errors.New("record sync conflict")

	// ErrThrottled is returned when the store keeps rejecting requests after retries
	ErrThrottled = errors.New("scan throttled")

	// ErrNoKeySchema is returned when no key schema is registered for a type
	ErrNoKeySchema = errors.New("no key schema registered for type")
)

// SpecValidationError reports a scan spec field that failed validation
type SpecValidationError struct {
	Field   string
	Message string
}

func (e *SpecValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("scan spec invalid: field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("scan spec invalid: %s", e.Message)
}

func (e *SpecValidationError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// SegmentRangeError reports a segment index outside the partition space
type SegmentRangeError struct {
	Segment       int32
	TotalSegments int32
}

func (e *SegmentRangeError) Error() string {
	return fmt.Sprintf("segment %d out of range [0, %d)", e.Segment, e.TotalSegments)
}

func (e *SegmentRangeError) Is(target error) bool {
	return target == ErrSegmentRange || target == ErrInvalidSpec
}

// SyncConflictError reports a record patch rejected by the sync-count guard
type SyncConflictError struct {
	Key       string
	SyncCount int64
}

func (e *SyncConflictError) Error() string {
	return fmt.Sprintf("record %q rejected: sync count %d is stale", e.Key, e.SyncCount)
}

func (e *SyncConflictError) Is(target error) bool {
	return target == ErrSyncConflict
}

// ThrottledError reports an operation abandoned after exhausting retries
type ThrottledError struct {
	Operation string
	Attempts  int
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("%s throttled after %d attempts", e.Operation, e.Attempts)
}

func (e *ThrottledError) Is(target error) bool {
	return target == ErrThrottled
}

// Helper functions for creating errors

// NewSpecValidationError creates a new SpecValidationError
func NewSpecValidationError(field, message string) error {
	return &SpecValidationError{Field: field, Message: message}
}

// NewSegmentRangeError creates a new SegmentRangeError
func NewSegmentRangeError(segment, totalSegments int32) error {
	return &SegmentRangeError{Segment: segment, TotalSegments: totalSegments}
}

// NewSyncConflictError creates a new SyncConflictError
func NewSyncConflictError(key string, syncCount int64) error {
	return &SyncConflictError{Key: key, SyncCount: syncCount}
}

// NewThrottledError creates a new ThrottledError
func NewThrottledError(operation string, attempts int) error {
	return &ThrottledError{Operation: operation, Attempts: attempts}
}

// IsInvalidSpec checks if an error is a scan spec validation error
func IsInvalidSpec(err error) bool {
	return errors.Is(err, ErrInvalidSpec)
}

// IsSegmentRange checks if an error is a segment range error
func IsSegmentRange(err error) bool {
	return errors.Is(err, ErrSegmentRange)
}

// IsSyncConflict checks if an error is a record sync conflict
func IsSyncConflict(err error) bool {
	return errors.Is(err, ErrSyncConflict)
}

// IsThrottled checks if an error is a throttling error
func IsThrottled(err error) bool {
	return errors.Is(err, ErrThrottled)
}
