/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/suparena/scanstore/errors"
	"github.com/suparena/scanstore/storagemodels"
)

type testItem struct {
	ID     string
	Status string
}

func seededScanner(n int) *Scanner[testItem] {
	s := New[testItem]()
	for i := 0; i < n; i++ {
		s.WithItems(testItem{ID: fmt.Sprintf("item-%03d", i), Status: "ACTIVE"})
	}
	return s
}

func TestScanPagePaging(t *testing.T) {
	scanner := seededScanner(10)
	spec := (&storagemodels.ScanFilterSpec{}).WithLimit(4)

	var collected []testItem
	for {
		page, err := scanner.ScanPage(context.Background(), spec)
		if err != nil {
			t.Fatalf("scan page failed: %v", err)
		}
		if len(page.Items) > 4 {
			t.Errorf("page exceeded limit: %d items", len(page.Items))
		}
		collected = append(collected, page.Items...)
		if page.LastEvaluatedKey == nil {
			break
		}
		spec.SetExclusiveStartKey(page.LastEvaluatedKey)
	}

	if len(collected) != 10 {
		t.Fatalf("expected 10 items across pages, got %d", len(collected))
	}
	for i, item := range collected {
		want := fmt.Sprintf("item-%03d", i)
		if item.ID != want {
			t.Errorf("item %d: expected %s, got %s", i, want, item.ID)
		}
	}
}

func TestScanPageValidation(t *testing.T) {
	scanner := seededScanner(3)

	spec := (&storagemodels.ScanFilterSpec{}).WithTotalSegments(2).WithSegment(5)
	if _, err := scanner.ScanPage(context.Background(), spec); !errors.IsSegmentRange(err) {
		t.Errorf("expected segment range error, got %v", err)
	}

	spec = (&storagemodels.ScanFilterSpec{}).WithLimit(-1)
	if _, err := scanner.ScanPage(context.Background(), spec); !errors.IsInvalidSpec(err) {
		t.Errorf("expected invalid spec error, got %v", err)
	}
}

func TestScanPageSegmentPartitioning(t *testing.T) {
	scanner := seededScanner(10)

	seen := map[string]int{}
	for seg := int32(0); seg < 2; seg++ {
		spec := (&storagemodels.ScanFilterSpec{}).WithTotalSegments(2).WithSegment(seg)
		page, err := scanner.ScanPage(context.Background(), spec)
		if err != nil {
			t.Fatalf("segment %d failed: %v", seg, err)
		}
		if len(page.Items) != 5 {
			t.Errorf("segment %d: expected 5 items, got %d", seg, len(page.Items))
		}
		for _, item := range page.Items {
			seen[item.ID]++
		}
	}

	if len(seen) != 10 {
		t.Errorf("expected segments to cover all 10 items, got %d", len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("item %s seen %d times across segments", id, count)
		}
	}
}

func TestScanPageFuncOverride(t *testing.T) {
	called := false
	scanner := New[testItem]().WithScanPageFunc(
		func(ctx context.Context, spec *storagemodels.ScanFilterSpec) (*storagemodels.ScanPage[testItem], error) {
			called = true
			return &storagemodels.ScanPage[testItem]{}, nil
		})

	if _, err := scanner.ScanPage(context.Background(), nil); err != nil {
		t.Fatalf("override failed: %v", err)
	}
	if !called {
		t.Error("expected override to be invoked")
	}
}

func TestStreamEmitsAllItems(t *testing.T) {
	scanner := seededScanner(7)

	var results []storagemodels.ScanResult[testItem]
	for result := range scanner.Stream(context.Background(), nil) {
		if result.Error != nil {
			t.Fatalf("unexpected stream error: %v", result.Error)
		}
		results = append(results, result)
	}

	if len(results) != 7 {
		t.Fatalf("expected 7 results, got %d", len(results))
	}
	for i, result := range results {
		if result.Meta.Index != int64(i) {
			t.Errorf("result %d: expected index %d, got %d", i, i, result.Meta.Index)
		}
	}
}

func TestStreamReportsScanError(t *testing.T) {
	boom := fmt.Errorf("store unavailable")
	scanner := New[testItem]().WithScanError(boom)

	var got error
	for result := range scanner.Stream(context.Background(), nil) {
		got = result.Error
	}
	if got == nil || got.Error() != boom.Error() {
		t.Errorf("expected scan error on channel, got %v", got)
	}
}

func TestStreamHonorsContextCancellation(t *testing.T) {
	scanner := seededScanner(1000)
	ctx, cancel := context.WithCancel(context.Background())

	ch := scanner.Stream(ctx, nil, storagemodels.WithBufferSize(1))
	<-ch
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream did not terminate after cancellation")
		}
	}
}

func TestParallelScanMergesSegments(t *testing.T) {
	scanner := seededScanner(20)
	spec := (&storagemodels.ScanFilterSpec{}).WithTotalSegments(4)

	seen := map[string]int{}
	for result := range scanner.ParallelScan(context.Background(), spec) {
		if result.Error != nil {
			t.Fatalf("unexpected parallel scan error: %v", result.Error)
		}
		seen[result.Item.ID]++
		if result.Meta.Segment < 0 || result.Meta.Segment >= 4 {
			t.Errorf("result carries out-of-range segment %d", result.Meta.Segment)
		}
	}

	if len(seen) != 20 {
		t.Errorf("expected 20 distinct items, got %d", len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("item %s emitted %d times", id, count)
		}
	}
}

func TestParallelScanRequiresTotalSegments(t *testing.T) {
	scanner := seededScanner(3)

	var got error
	for result := range scanner.ParallelScan(context.Background(), &storagemodels.ScanFilterSpec{}) {
		got = result.Error
	}
	if !errors.IsInvalidSpec(got) {
		t.Errorf("expected invalid spec error, got %v", got)
	}
}

func TestRecordUpdaterCreatesAndIncrements(t *testing.T) {
	updater := NewRecordUpdater("device-1")
	value := "v1"

	set, err := updater.UpdateRecords(context.Background(), "DATASET#alpha", []storagemodels.RecordPatch{
		{Key: "k1", Value: &value, SyncCount: 0},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	records := set.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.SyncCount == nil || *rec.SyncCount != 1 {
		t.Errorf("expected sync count 1, got %v", rec.SyncCount)
	}
	if rec.LastModifiedBy == nil || *rec.LastModifiedBy != "device-1" {
		t.Errorf("expected writer attribution, got %v", rec.LastModifiedBy)
	}
	if rec.LastModifiedDate == nil {
		t.Error("expected last modified date to be stamped")
	}

	value2 := "v2"
	set, err = updater.UpdateRecords(context.Background(), "DATASET#alpha", []storagemodels.RecordPatch{
		{Key: "k1", Value: &value2, SyncCount: 1},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	rec = set.Records()[0]
	if *rec.SyncCount != 2 {
		t.Errorf("expected sync count 2, got %d", *rec.SyncCount)
	}
	if *rec.Value != "v2" {
		t.Errorf("expected v2, got %s", *rec.Value)
	}
}

func TestRecordUpdaterRejectsStaleSyncCount(t *testing.T) {
	updater := NewRecordUpdater("device-1")
	value := "v1"

	if _, err := updater.UpdateRecords(context.Background(), "DATASET#alpha", []storagemodels.RecordPatch{
		{Key: "k1", Value: &value, SyncCount: 0},
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Replaying the create must lose the optimistic check.
	_, err := updater.UpdateRecords(context.Background(), "DATASET#alpha", []storagemodels.RecordPatch{
		{Key: "k1", Value: &value, SyncCount: 0},
	})
	if !errors.IsSyncConflict(err) {
		t.Errorf("expected sync conflict, got %v", err)
	}

	// Updating a record that was never created is a conflict too.
	_, err = updater.UpdateRecords(context.Background(), "DATASET#alpha", []storagemodels.RecordPatch{
		{Key: "missing", Value: &value, SyncCount: 3},
	})
	if !errors.IsSyncConflict(err) {
		t.Errorf("expected sync conflict for missing record, got %v", err)
	}
}

func TestRecordUpdaterPreservesPatchOrder(t *testing.T) {
	updater := NewRecordUpdater("device-1")
	v1, v2, v3 := "a", "b", "c"

	set, err := updater.UpdateRecords(context.Background(), "DATASET#alpha", []storagemodels.RecordPatch{
		{Key: "k1", Value: &v1, SyncCount: 0},
		{Key: "k2", Value: &v2, SyncCount: 0},
		{Key: "k3", Value: &v3, SyncCount: 0},
	})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	records := set.Records()
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"k1", "k2", "k3"} {
		if *records[i].Key != want {
			t.Errorf("record %d: expected key %s, got %s", i, want, *records[i].Key)
		}
	}
	if !set.HasRecords() {
		t.Error("expected populated set to report records")
	}
}
