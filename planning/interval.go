/*
interval.go - Minimal disjoint interval merging

PURPOSE:
  Commitments for one employee on one date frequently overlap: an HLP
  buffer runs into the next block, a temporary task sits inside a shift
  window. Summing raw durations would double-count those minutes. The
  merge collapses any collection of intervals into minimal disjoint
  ordered intervals first, so each minute counts exactly once.

ALGORITHM:
  Sort ascending by start, then sweep: whenever the next interval starts
  at or before the accumulator's end, extend the accumulator to the max
  of the two ends. Touching intervals ([540,600] and [600,660]) merge by
  the <= rule. O(n log n), input left untouched.
*/
package planning

import "sort"

// Interval is a [Start, End) window in minutes from midnight. The
// engine never validates Start < End downstream; out-of-range input
// propagates per the CRUD layer's contract.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Duration returns End - Start.
func (iv Interval) Duration() int { return iv.End - iv.Start }

// MergeIntervals collapses overlapping or touching intervals into a
// minimal disjoint set ordered by start. An already-disjoint sorted
// input comes back unchanged.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []Interval{sorted[0]}
	for _, next := range sorted[1:] {
		acc := &merged[len(merged)-1]
		if next.Start <= acc.End {
			// Overlapping or touching: extend, never shrink.
			if next.End > acc.End {
				acc.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}

// TotalMinutes merges the intervals and sums the resulting durations.
func TotalMinutes(intervals []Interval) int {
	total := 0
	for _, iv := range MergeIntervals(intervals) {
		total += iv.Duration()
	}
	return total
}
