// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linerange removes a block of lines from a text file.
//
// The block is bounded by the last line starting with an open marker and the
// last line starting with a close marker. Lines strictly after the open marker
// line, up to and including the close marker line, are dropped. Every other
// line is copied unchanged.
//
// Finding the block and copying the remainder are two separate passes over the
// input, so the input must be re-readable. TrimFile reopens the input path for
// the second pass; callers working with readers must supply a fresh reader to
// each of Locate and CopyExcluding.
//
// A missing marker is not an error. With no close marker nothing is dropped;
// with no open marker every line up to and including the close marker is dropped.
package linerange
