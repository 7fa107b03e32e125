// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linerange

import "fmt"

// Unset is the ordinal recorded for a marker that never matched.
const Unset = -1

// Range is the pair of line ordinals that bounds the dropped block.
// Start is the last open marker line and End the last close marker line.
// Lines with Start < i <= End are dropped.
type Range struct {
	Start int
	End   int
}

// NewRange returns a range with both ordinals unset.
func NewRange() Range {
	return Range{Start: Unset, End: Unset}
}

// Keep reports whether the line at index i is written to the output.
// The predicate is applied literally, also when one or both ordinals are unset.
func (r Range) Keep(i int) bool {
	return i <= r.Start || i > r.End
}

// Excludes reports whether the line at index i is dropped.
func (r Range) Excludes(i int) bool {
	return !r.Keep(i)
}

// Empty reports whether no line can be dropped by this range.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("(%d, %d)", r.Start, r.End)
}
