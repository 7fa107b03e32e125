// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linerange

import "errors"

var (
	// ErrOpenInput is returned when the input file cannot be opened.
	ErrOpenInput = errors.New("failed to open input file")
	// ErrReadInput is returned when reading a line from the input fails.
	ErrReadInput = errors.New("failed to read input")
	// ErrCreateOutput is returned when the output file cannot be created.
	ErrCreateOutput = errors.New("failed to create output file")
	// ErrWriteOutput is returned when writing a line to the output fails.
	ErrWriteOutput = errors.New("failed to write output")
)
