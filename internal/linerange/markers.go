// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linerange

import "strings"

const (
	// DefaultOpenMarker starts the temperature block written by the Monte Carlo driver.
	DefaultOpenMarker = "# 1:T "
	// DefaultCloseMarker is written when a restart finds a lower energy state.
	DefaultCloseMarker = "# -- restart MC: found lower energy"
)

// Markers holds the line prefixes that bound the block to remove.
type Markers struct {
	Open  string
	Close string
}

// DefaultMarkers returns the markers the tool has always used.
func DefaultMarkers() Markers {
	return Markers{
		Open:  DefaultOpenMarker,
		Close: DefaultCloseMarker,
	}
}

// matchOpen reports whether the line starts with the open marker.
func (m Markers) matchOpen(line string) bool {
	return strings.HasPrefix(line, m.Open)
}

// matchClose reports whether the line starts with the close marker.
func (m Markers) matchClose(line string) bool {
	return strings.HasPrefix(line, m.Close)
}
