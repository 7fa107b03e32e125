// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linerange

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyExcluding(t *testing.T) {
	t.Parallel()

	withBlock := buildLog(10, map[int]string{2: openLine("0.5"), 5: openLine("0.4"), 7: closeLine()})
	blockLines := linesOf(withBlock)

	closeOnly := buildLog(8, map[int]string{4: closeLine()})

	testCases := []struct {
		name      string
		input     string
		rng       Range
		want      string
		wantStats Stats
	}{
		{
			name:      "unset range is identity",
			input:     buildLog(5, nil),
			rng:       NewRange(),
			want:      buildLog(5, nil),
			wantStats: Stats{Lines: 5, Kept: 5},
		},
		{
			name:      "drops lines after start through end",
			input:     withBlock,
			rng:       Range{Start: 5, End: 7},
			want:      strings.Join(append(append([]string{}, blockLines[:6]...), blockLines[8:]...), ""),
			wantStats: Stats{Lines: 10, Kept: 8, Dropped: 2},
		},
		{
			name:      "unset start drops everything through end",
			input:     closeOnly,
			rng:       Range{Start: Unset, End: 4},
			want:      strings.Join(linesOf(closeOnly)[5:], ""),
			wantStats: Stats{Lines: 8, Kept: 3, Dropped: 5},
		},
		{
			name:      "unset end keeps everything",
			input:     withBlock,
			rng:       Range{Start: 4, End: Unset},
			want:      withBlock,
			wantStats: Stats{Lines: 10, Kept: 10},
		},
		{
			name:      "line endings and missing final newline are preserved",
			input:     "a\r\nb\r\n\r\nc",
			rng:       Range{Start: 0, End: 1},
			want:      "a\r\n\r\nc",
			wantStats: Stats{Lines: 4, Kept: 3, Dropped: 1},
		},
		{
			name:      "empty input",
			input:     "",
			rng:       Range{Start: Unset, End: 3},
			want:      "",
			wantStats: Stats{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			stats, err := CopyExcluding(context.Background(), strings.NewReader(tc.input), &out, tc.rng)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.String())
			assert.Equal(t, tc.wantStats, stats)
		})
	}
}

func TestCopyExcluding_WriteError(t *testing.T) {
	_, err := CopyExcluding(context.Background(), strings.NewReader(buildLog(3, nil)), &failingWriter{}, NewRange())
	require.ErrorIs(t, err, ErrWriteOutput)
}

func TestCopyExcluding_ReadError(t *testing.T) {
	var out bytes.Buffer

	stats, err := CopyExcluding(context.Background(), &errorReader{data: "first\n"}, &out, NewRange())
	require.ErrorIs(t, err, ErrReadInput)
	assert.Equal(t, Stats{Lines: 1, Kept: 1}, stats)
	assert.Equal(t, "first\n", out.String(), "lines read before the failure are flushed")
}

func TestCopyExcluding_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer

	stats, err := CopyExcluding(ctx, strings.NewReader(buildLog(5, nil)), &out, NewRange())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Stats{}, stats)
	assert.Empty(t, out.String())
}

func TestCopyExcluding_CancelledBetweenLines(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input := buildLog(5, nil)
	r := &cancelReader{r: strings.NewReader(input), cancel: cancel}

	var out bytes.Buffer

	stats, err := CopyExcluding(ctx, r, &out, NewRange())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Stats{Lines: 1, Kept: 1}, stats)
	assert.Equal(t, linesOf(input)[0], out.String(), "the line copied before cancellation is flushed")
}

func TestLocateThenCopy_Properties(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "no markers",
			input: buildLog(7, nil),
		},
		{
			name:  "ordered block",
			input: buildLog(10, map[int]string{2: openLine("0.5"), 5: openLine("0.4"), 7: closeLine()}),
		},
		{
			name:  "close only",
			input: buildLog(8, map[int]string{4: closeLine()}),
		},
		{
			name:  "open after close",
			input: buildLog(8, map[int]string{2: closeLine(), 6: openLine("0.2")}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			first := trimString(t, tc.input)
			second := trimString(t, first)
			assert.Equal(t, first, second, "trimming the output again must be a no-op")
		})
	}
}

// trimString runs both passes over s with the default markers.
func trimString(t *testing.T, s string) string {
	t.Helper()

	ctx := context.Background()

	rng, err := Locate(ctx, strings.NewReader(s), DefaultMarkers())
	require.NoError(t, err)

	var out bytes.Buffer

	_, err = CopyExcluding(ctx, strings.NewReader(s), &out, rng)
	require.NoError(t, err)

	return out.String()
}

type failingWriter struct{}

func (w *failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write failed")
}

// cancelReader cancels its context after the first read.
type cancelReader struct {
	r      io.Reader
	cancel context.CancelFunc
}

func (c *cancelReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.cancel()

	return n, err
}
