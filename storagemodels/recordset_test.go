/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"strings"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func int64Ptr(n int64) *int64   { return &n }

func testRecord(key, value string, syncCount int64) Record {
	return Record{
		Key:       strPtr(key),
		Value:     strPtr(value),
		SyncCount: int64Ptr(syncCount),
	}
}

func TestRecordsLazilyMaterializesEmpty(t *testing.T) {
	set := new(ResultRecordSet)

	first := set.Records()
	require.NotNil(t, first)
	assert.Empty(t, first)

	// Repeated reads return an equivalent empty sequence
	second := set.Records()
	require.NotNil(t, second)
	assert.Empty(t, second)

	// The lazy read does not count as population
	assert.False(t, set.HasRecords())
}

func TestWithRecordsPreservesOrder(t *testing.T) {
	r1 := testRecord("a", "1", 1)
	r2 := testRecord("b", "2", 1)
	r3 := testRecord("a", "1", 1) // duplicates are allowed

	set := new(ResultRecordSet).WithRecords(r1, r2).WithRecords(r3)

	got := set.Records()
	require.Len(t, got, 3)
	assert.True(t, got[0].Equal(r1))
	assert.True(t, got[1].Equal(r2))
	assert.True(t, got[2].Equal(r3))
	assert.True(t, set.HasRecords())
}

func TestSetRecordsReplacesAndCopies(t *testing.T) {
	set := new(ResultRecordSet).WithRecords(testRecord("old", "x", 1))

	input := []Record{testRecord("a", "1", 1), testRecord("b", "2", 2)}
	set.SetRecords(input)

	// Mutating the caller's slice afterwards must not leak in
	input[0] = testRecord("mutated", "z", 9)

	got := set.Records()
	require.Len(t, got, 2)
	assert.Equal(t, "a", *got[0].Key)
}

func TestSetRecordsNilClearsToUnset(t *testing.T) {
	set := new(ResultRecordSet).WithRecords(testRecord("a", "1", 1))
	require.True(t, set.HasRecords())

	set.SetRecords(nil)
	assert.False(t, set.HasRecords())
	assert.Equal(t, 0, set.Len())

	// A clear followed by a read materializes a fresh empty sequence
	assert.Empty(t, set.Records())
}

func TestSetRecordsEmptyIsExplicit(t *testing.T) {
	set := new(ResultRecordSet)
	set.SetRecords([]Record{})

	// Explicitly empty is populated, unlike the auto-constructed empty
	assert.True(t, set.HasRecords())
	assert.Empty(t, set.Records())
}

func TestEqualAndHash(t *testing.T) {
	r1 := testRecord("a", "1", 1)
	r2 := testRecord("b", "2", 2)

	a := new(ResultRecordSet).WithRecords(r1, r2)
	b := new(ResultRecordSet).WithRecords(r1, r2)
	c := new(ResultRecordSet).WithRecords(r2, r1) // same records, different order

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	assert.False(t, a.Equal(c), "equality is order-sensitive")
	assert.False(t, a.Equal(new(ResultRecordSet)))
	assert.False(t, a.Equal(nil))
}

func TestDefaultConstructedSetsAreEqual(t *testing.T) {
	a := new(ResultRecordSet)
	b := new(ResultRecordSet)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashDistinguishesFieldBoundaries(t *testing.T) {
	// "ab"+"c" and "a"+"bc" must not collide through concatenation
	a := new(ResultRecordSet).WithRecords(Record{Key: strPtr("ab"), Value: strPtr("c")})
	b := new(ResultRecordSet).WithRecords(Record{Key: strPtr("a"), Value: strPtr("bc")})

	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestRecordEqualHandlesNilFields(t *testing.T) {
	now := strfmt.DateTime(time.Now().UTC())

	full := Record{
		Key:              strPtr("a"),
		Value:            strPtr("1"),
		SyncCount:        int64Ptr(3),
		LastModifiedDate: &now,
		LastModifiedBy:   strPtr("writer-1"),
	}
	assert.True(t, full.Equal(full))

	partial := Record{Key: strPtr("a")}
	assert.False(t, full.Equal(partial))
	assert.True(t, partial.Equal(Record{Key: strPtr("a")}))
	assert.True(t, Record{}.Equal(Record{}))
}

func TestStringRendering(t *testing.T) {
	set := new(ResultRecordSet).WithRecords(testRecord("a", "1", 7))

	s := set.String()
	assert.True(t, strings.HasPrefix(s, "{Records: ["))
	assert.Contains(t, s, "Key: a")
	assert.Contains(t, s, "SyncCount: 7")

	assert.Equal(t, "{Records: []}", new(ResultRecordSet).String())
}
