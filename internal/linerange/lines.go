// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linerange

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// lineFunc is called once per line with its zero-based ordinal.
// The line includes its terminating newline, if any.
type lineFunc func(i int, line string) error

// eachLine reads r line by line and calls fn for every line.
// A trailing line without a newline is still passed to fn.
func eachLine(ctx context.Context, r io.Reader, fn lineFunc) error {
	br := bufio.NewReader(r)

	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if fnErr := fn(i, line); fnErr != nil {
				return fnErr
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}
}
