/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-openapi/strfmt"
)

// Record is one synchronized key/value entry as returned by a record update
// call. Timestamps are pointers so that absent and zero values stay distinct
// when records cross the wire.
type Record struct {
	// Key is the record's name within its dataset.
	Key *string `json:"Key,omitempty"`

	// Value is the record payload; nil for a deleted record.
	Value *string `json:"Value,omitempty"`

	// SyncCount is the server-side revision counter for the record.
	SyncCount *int64 `json:"SyncCount,omitempty"`

	// LastModifiedDate is when the store last accepted a write for the record.
	// Format: date-time
	LastModifiedDate *strfmt.DateTime `json:"LastModifiedDate,omitempty"`

	// LastModifiedBy identifies the writer of the current revision.
	LastModifiedBy *string `json:"LastModifiedBy,omitempty"`

	// DeviceLastModifiedDate is the client-reported modification time.
	// Format: date-time
	DeviceLastModifiedDate *strfmt.DateTime `json:"DeviceLastModifiedDate,omitempty"`
}

// Equal reports whether two records carry the same field values.
func (r Record) Equal(other Record) bool {
	return strPtrEqual(r.Key, other.Key) &&
		strPtrEqual(r.Value, other.Value) &&
		int64PtrEqual(r.SyncCount, other.SyncCount) &&
		timePtrEqual(r.LastModifiedDate, other.LastModifiedDate) &&
		strPtrEqual(r.LastModifiedBy, other.LastModifiedBy) &&
		timePtrEqual(r.DeviceLastModifiedDate, other.DeviceLastModifiedDate)
}

// String renders the record for debugging.
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	if r.Key != nil {
		fmt.Fprintf(&sb, "Key: %s, ", *r.Key)
	}
	if r.Value != nil {
		fmt.Fprintf(&sb, "Value: %s, ", *r.Value)
	}
	if r.SyncCount != nil {
		fmt.Fprintf(&sb, "SyncCount: %d, ", *r.SyncCount)
	}
	if r.LastModifiedDate != nil {
		fmt.Fprintf(&sb, "LastModifiedDate: %s, ", r.LastModifiedDate.String())
	}
	if r.LastModifiedBy != nil {
		fmt.Fprintf(&sb, "LastModifiedBy: %s, ", *r.LastModifiedBy)
	}
	if r.DeviceLastModifiedDate != nil {
		fmt.Fprintf(&sb, "DeviceLastModifiedDate: %s, ", r.DeviceLastModifiedDate.String())
	}
	return strings.TrimSuffix(sb.String(), ", ") + "}"
}

// ResultRecordSet holds the ordered sequence of records returned by a batch
// record update. Order is preserved and duplicates are allowed.
//
// The set distinguishes three states for serialization purposes: never
// touched, auto-constructed empty (a read materialized the empty sequence),
// and explicitly populated. HasRecords reports false for the first two so
// the executor can omit the field on the wire.
//
// Like ScanFilterSpec, a ResultRecordSet is a single-owner value with no
// internal locking.
type ResultRecordSet struct {
	records         []Record
	autoConstructed bool
}

// Records returns the record sequence, materializing an empty one on first
// read if the set was never populated. The materialized slice is retained,
// so repeated reads return the same backing sequence.
func (rs *ResultRecordSet) Records() []Record {
	if rs.records == nil {
		rs.records = []Record{}
		rs.autoConstructed = true
	}
	return rs.records
}

// SetRecords replaces the sequence wholesale. A nil input clears the set
// back to unset, which is distinct from an explicitly empty sequence. A
// non-nil input is copied so later mutation of the argument does not leak in.
func (rs *ResultRecordSet) SetRecords(records []Record) {
	if records == nil {
		rs.records = nil
		rs.autoConstructed = false
		return
	}
	cp := make([]Record, len(records))
	copy(cp, records)
	rs.records = cp
	rs.autoConstructed = false
}

// WithRecords appends the given records to the sequence and returns the
// receiver for chaining.
func (rs *ResultRecordSet) WithRecords(records ...Record) *ResultRecordSet {
	rs.records = append(rs.Records(), records...)
	rs.autoConstructed = false
	return rs
}

// HasRecords reports whether the sequence was explicitly populated. It is
// false both before any access and after a read auto-constructed the empty
// sequence, so wire serialization can omit the field in either case.
func (rs *ResultRecordSet) HasRecords() bool {
	return rs.records != nil && !rs.autoConstructed
}

// Len returns the number of records currently held.
func (rs *ResultRecordSet) Len() int {
	return len(rs.records)
}

// Equal reports whether two sets hold equal record sequences, element by
// element and in order. Two untouched sets compare equal.
func (rs *ResultRecordSet) Equal(other *ResultRecordSet) bool {
	if other == nil {
		return false
	}
	a, b := rs.Records(), other.Records()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Hash returns a digest of the record sequence, consistent with Equal:
// equal sets hash identically.
func (rs *ResultRecordSet) Hash() uint64 {
	d := xxhash.New()
	for _, r := range rs.Records() {
		hashField(d, func() string {
			if r.Key == nil {
				return ""
			}
			return *r.Key
		}())
		hashField(d, func() string {
			if r.Value == nil {
				return ""
			}
			return *r.Value
		}())
		hashField(d, func() string {
			if r.SyncCount == nil {
				return ""
			}
			return strconv.FormatInt(*r.SyncCount, 10)
		}())
		hashField(d, timeField(r.LastModifiedDate))
		hashField(d, func() string {
			if r.LastModifiedBy == nil {
				return ""
			}
			return *r.LastModifiedBy
		}())
		hashField(d, timeField(r.DeviceLastModifiedDate))
	}
	return d.Sum64()
}

// String renders the set for debugging; the format is not stable and must
// not be parsed.
func (rs *ResultRecordSet) String() string {
	parts := make([]string, 0, len(rs.records))
	for _, r := range rs.records {
		parts = append(parts, r.String())
	}
	return "{Records: [" + strings.Join(parts, ", ") + "]}"
}

func hashField(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	_, _ = d.Write([]byte{0})
}

func timeField(t *strfmt.DateTime) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *strfmt.DateTime) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
