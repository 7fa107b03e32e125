// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the marker configuration.
//
// A configuration file is YAML, or HCL when its name ends in ".hcl":
//
//	open_marker:  "# 1:T "
//	close_marker: "# -- restart MC: found lower energy"
//
// Keys that are absent keep their default. Quote markers with trailing spaces.
// HCL files can refer to the defaults as default_open_marker and default_close_marker.
package config
