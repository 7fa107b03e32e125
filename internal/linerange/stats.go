// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linerange

// Stats counts the lines seen during the copy pass.
type Stats struct {
	Lines   int
	Kept    int
	Dropped int
}
