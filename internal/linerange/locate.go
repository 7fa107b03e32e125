// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linerange

import (
	"context"
	"io"
)

// Locate scans r and returns the ordinals of the last open marker line and
// the last close marker line. A marker that never matches stays Unset.
// Both markers are checked on every line independently.
func Locate(ctx context.Context, r io.Reader, m Markers) (Range, error) {
	rng := NewRange()

	err := eachLine(ctx, r, func(i int, line string) error {
		if m.matchOpen(line) {
			rng.Start = i
		}

		if m.matchClose(line) {
			rng.End = i
		}

		return nil
	})
	if err != nil {
		return NewRange(), err
	}

	return rng, nil
}
