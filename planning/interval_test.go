package planning_test

import (
	"reflect"
	"testing"

	"github.com/berlines/route-planner/planning"
)

func TestMergeIntervals_OverlapCountedOnce(t *testing.T) {
	// GIVEN: two windows overlapping by 10 minutes (60 min + 60 min)
	// WHEN: merged
	// THEN: one window of 110 minutes, not 120

	merged := planning.MergeIntervals([]planning.Interval{
		{Start: 480, End: 540},
		{Start: 530, End: 590},
	})

	if len(merged) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(merged))
	}
	if total := planning.TotalMinutes(merged); total != 110 {
		t.Errorf("expected 110 minutes, got %d", total)
	}
}

func TestMergeIntervals_TouchingWindowsMerge(t *testing.T) {
	// Touching endpoints (end == next start) count as contiguous work.
	merged := planning.MergeIntervals([]planning.Interval{
		{Start: 480, End: 540},
		{Start: 540, End: 600},
	})

	if len(merged) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(merged))
	}
	if total := planning.TotalMinutes(merged); total != 120 {
		t.Errorf("expected 120 minutes, got %d", total)
	}
}

func TestMergeIntervals_DisjointStayApart(t *testing.T) {
	merged := planning.MergeIntervals([]planning.Interval{
		{Start: 900, End: 960},
		{Start: 480, End: 540},
	})

	want := []planning.Interval{{Start: 480, End: 540}, {Start: 900, End: 960}}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("expected %v, got %v", want, merged)
	}
}

func TestMergeIntervals_ContainedWindowNeverShrinks(t *testing.T) {
	// A window fully inside another must not truncate the outer end.
	merged := planning.MergeIntervals([]planning.Interval{
		{Start: 480, End: 600},
		{Start: 500, End: 520},
	})

	if len(merged) != 1 || merged[0].End != 600 {
		t.Errorf("expected [480,600], got %v", merged)
	}
}

func TestMergeIntervals_OrderIndependent(t *testing.T) {
	a := []planning.Interval{{Start: 100, End: 200}, {Start: 150, End: 300}, {Start: 400, End: 500}}
	b := []planning.Interval{{Start: 400, End: 500}, {Start: 150, End: 300}, {Start: 100, End: 200}}

	if !reflect.DeepEqual(planning.MergeIntervals(a), planning.MergeIntervals(b)) {
		t.Error("merge result depends on input order")
	}
}

func TestMergeIntervals_Idempotent(t *testing.T) {
	once := planning.MergeIntervals([]planning.Interval{
		{Start: 100, End: 200}, {Start: 150, End: 300},
	})
	twice := planning.MergeIntervals(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merging a merged set changed it: %v vs %v", once, twice)
	}
}

func TestMergeIntervals_DoesNotMutateInput(t *testing.T) {
	input := []planning.Interval{{Start: 300, End: 400}, {Start: 100, End: 200}}
	planning.MergeIntervals(input)

	if input[0].Start != 300 {
		t.Error("input slice was reordered")
	}
}

func TestMergeIntervals_Empty(t *testing.T) {
	if got := planning.MergeIntervals(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
