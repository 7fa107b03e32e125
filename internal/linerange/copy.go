// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linerange

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// CopyExcluding reads r from the start and writes to w every line that rng keeps.
// Lines are written byte for byte. The returned Stats are valid up to the point
// of failure when an error is returned.
func CopyExcluding(ctx context.Context, r io.Reader, w io.Writer, rng Range) (Stats, error) {
	var stats Stats

	bw := bufio.NewWriter(w)

	err := eachLine(ctx, r, func(i int, line string) error {
		stats.Lines++

		if rng.Excludes(i) {
			stats.Dropped++
			return nil
		}

		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		stats.Kept++

		return nil
	})
	if err != nil {
		// flush what was written so far, matching a plain file handle.
		bw.Flush() //nolint:errcheck
		return stats, err
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return stats, nil
}
