// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linerange

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/trimlog/internal/ctxlog"
	"github.com/spf13/afero"
)

// TrimFile writes the input file to the output file without the marker block.
// The input is opened twice, once to locate the markers and once to copy, and
// each handle is closed when its pass completes. The output is created or
// truncated before the copy pass.
func TrimFile(ctx context.Context, in, out string, m Markers) (Range, Stats, error) {
	fs := FsFactory()
	logger := ctxlog.Logger(ctx).With("input", in, "output", out)

	rng, err := locateFile(ctx, fs, in, m)
	if err != nil {
		return NewRange(), Stats{}, err
	}

	logger.Debug("located marker range", "start", rng.Start, "end", rng.End)

	switch {
	case rng.Start == Unset && rng.End != Unset:
		ctxlog.Info(ctx, "no open marker found, every line up to the close marker is removed",
			"input", in, "range", rng.String())
	case rng.End != Unset && rng.Start > rng.End:
		ctxlog.Info(ctx, "open marker found after close marker, nothing is removed",
			"input", in, "range", rng.String())
	case rng.Empty():
		logger.Debug("marker range is empty, output is a copy of the input", "range", rng.String())
	}

	stats, err := copyFile(ctx, fs, in, out, rng)
	if err != nil {
		return rng, stats, err
	}

	logger.Debug("copied lines", "lines", stats.Lines, "kept", stats.Kept, "dropped", stats.Dropped)

	return rng, stats, nil
}

func locateFile(ctx context.Context, fs afero.Fs, in string, m Markers) (Range, error) {
	f, err := fs.Open(in)
	if err != nil {
		return NewRange(), fmt.Errorf("%w: %w", ErrOpenInput, err)
	}

	defer f.Close() //nolint:errcheck

	return Locate(ctx, f, m)
}

func copyFile(ctx context.Context, fs afero.Fs, in, out string, rng Range) (stats Stats, err error) {
	src, err := fs.Open(in)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}

	defer src.Close() //nolint:errcheck

	dst, err := fs.Create(out)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrCreateOutput, err)
	}

	defer func() {
		if cErr := dst.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteOutput, cErr)
		}
	}()

	return CopyExcluding(ctx, src, dst, rng)
}
